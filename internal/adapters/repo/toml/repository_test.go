package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, path string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(EndpointsPathKey, path)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func featureNames(features []domain.Feature) []domain.FeatureName {
	names := make([]domain.FeatureName, 0, len(features))
	for _, feature := range features {
		names = append(names, feature.Name)
	}
	return names
}

func TestRepositoryMissingFileListsDefaults(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "endpoints.toml"))

	features, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.FeatureName{"schedules.delete", "income-heads.list", "students.list"}, featureNames(features))

	feature, err := repo.GetByName(context.Background(), "schedules.delete")
	require.NoError(t, err)
	require.Len(t, feature.Candidates, 3)
	assert.Equal(t, domain.Candidate{Method: "DELETE", Path: "/instructor/schedules/{id}"}, feature.Candidates[0])
	assert.Equal(t, "/schedules/{id}", feature.Candidates[1].Path)
	assert.Equal(t, "/api/schedules/{id}", feature.Candidates[2].Path)
}

func TestRepositoryDefaultFeaturesAreValid(t *testing.T) {
	t.Parallel()

	for _, feature := range defaultFeatures() {
		assert.NoError(t, feature.Validate(), feature.Name)
	}
}

func TestRepositoryGetByNameUnknownFeature(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "endpoints.toml"))

	_, err := repo.GetByName(context.Background(), "grades.list")
	require.ErrorIs(t, err, domain.ErrFeatureNotFound)
	assert.ErrorContains(t, err, "grades.list")
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "endpoints.toml"))
	resolvedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	feature := domain.Feature{
		Name:        "certificates.list",
		Description: "List issued certificates",
		Candidates: []domain.Candidate{
			{Method: "GET", Path: "/certificates", Header: map[string]string{"X-Scope": "student"}},
			{Method: "GET", Path: "/student/certificates"},
		},
		LastResolved: "/student/certificates",
		ResolvedAt:   resolvedAt,
	}

	require.NoError(t, repo.Save(context.Background(), feature))

	got, err := repo.GetByName(context.Background(), feature.Name)
	require.NoError(t, err)
	assert.Equal(t, feature, got)

	features, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.FeatureName{"schedules.delete", "income-heads.list", "students.list", "certificates.list"}, featureNames(features))
}

func TestRepositorySaveReplacesExistingFeatureInPlace(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "endpoints.toml"))

	feature, err := repo.GetByName(context.Background(), "schedules.delete")
	require.NoError(t, err)
	feature.LastResolved = "/schedules/42"
	feature.ResolvedAt = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Save(context.Background(), feature))

	features, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, domain.FeatureName("schedules.delete"), features[0].Name)
	assert.Equal(t, "/schedules/42", features[0].LastResolved)
	assert.Equal(t, "/instructor/schedules/{id}", features[0].Candidates[0].Path)
}

func TestRepositorySaveRejectsInvalidFeature(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	repo := newTestRepository(t, path)

	err := repo.Save(context.Background(), domain.Feature{Name: "empty"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "at least one candidate is required")

	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestRepositoryReadsHandWrittenCatalogue(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[features]]",
		"name = \"notifications.list\"",
		"",
		"[[features.candidates]]",
		"method = \"GET\"",
		"path = \"/notifications\"",
		"",
		"[[features.candidates]]",
		"method = \"GET\"",
		"path = \"/api/notifications\"",
		"headers = { Accept = \"application/vnd.lms+json\" }",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, path)

	features, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, domain.FeatureName("notifications.list"), features[0].Name)
	require.Len(t, features[0].Candidates, 2)
	assert.Equal(t, map[string]string{"Accept": "application/vnd.lms+json"}, features[0].Candidates[1].Header)
	assert.True(t, features[0].ResolvedAt.IsZero())
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Feature{
		Name:       "quizzes.list",
		Candidates: []domain.Candidate{{Method: "GET", Path: "/quizzes"}},
	}))

	endpointsPath := filepath.Join(homeDir, ".lms", "endpoints.toml")
	assert.Equal(t, endpointsPath, repo.Path())
	info, err := os.Stat(endpointsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	require.NoError(t, os.WriteFile(path, []byte("features = ["), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode endpoints file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "endpoints.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Feature{Name: "x", Candidates: []domain.Candidate{{Method: "GET", Path: "/x"}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllFeatures(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	repoA := newTestRepository(t, path)
	repoB := newTestRepository(t, path)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Feature{
				Name:       domain.FeatureName(prefix + strconv.Itoa(i)),
				Candidates: []domain.Candidate{{Method: "GET", Path: "/" + prefix}},
			})
		}
	}

	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	features, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, features, perRepoWrites*2+len(defaultFeatures()))
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	repo := newTestRepository(t, path)

	require.NoError(t, repo.Save(context.Background(), domain.Feature{
		Name:       "x",
		Candidates: []domain.Candidate{{Method: "get", Path: " /x "}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	feature, err := repo.GetByName(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, domain.Candidate{Method: "GET", Path: "/x"}, feature.Candidates[0])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "endpoints.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 999\n\nfeatures = []\n"), 0o600))

	repo := newTestRepository(t, path)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported endpoints schema version")
}
