package toml

import "github.com/bnema/lms-cli/internal/domain"

// defaultFeatures seeds a catalogue that does not exist on disk yet. Once the
// file is written, its content is authoritative.
func defaultFeatures() []domain.Feature {
	return []domain.Feature{
		{
			Name:        "schedules.delete",
			Description: "Delete a schedule entry by id",
			Candidates: []domain.Candidate{
				{Method: "DELETE", Path: "/instructor/schedules/{id}"},
				{Method: "DELETE", Path: "/schedules/{id}"},
				{Method: "DELETE", Path: "/api/schedules/{id}"},
			},
		},
		{
			Name:        "income-heads.list",
			Description: "List income heads visible to the signed-in role",
			Candidates: []domain.Candidate{
				{Method: "GET", Path: "/income-heads?role={role}"},
				{Method: "GET", Path: "/{role}/income-heads"},
				{Method: "GET", Path: "/finance/income-heads?role={role}"},
			},
		},
		{
			Name:        "students.list",
			Description: "List students for the signed-in instructor",
			Candidates: []domain.Candidate{
				{Method: "GET", Path: "/instructor/students"},
				{Method: "GET", Path: "/students"},
				{Method: "GET", Path: "/api/students"},
			},
		},
	}
}

func defaultFileSchema() fileSchema {
	features := defaultFeatures()
	file := fileSchema{Version: currentSchemaVersion, Features: make([]featureSchema, 0, len(features))}
	for _, feature := range features {
		file.Features = append(file.Features, toSchema(feature))
	}

	return file
}
