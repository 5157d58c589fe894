package domain

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"time"
)

type FeatureName string

// Candidate is one possible route for a feature. Path may hold {name}
// placeholders and may be an absolute URL.
type Candidate struct {
	Method string
	Path   string
	Header map[string]string
}

// Feature is an ordered candidate list for a backend route that is not known
// statically. LastResolved is informational and never reorders candidates.
type Feature struct {
	Name         FeatureName
	Description  string
	Candidates   []Candidate
	LastResolved string
	ResolvedAt   time.Time
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func (f Feature) Validate() error {
	if strings.TrimSpace(string(f.Name)) == "" {
		return fmt.Errorf("name is required")
	}
	if len(f.Candidates) == 0 {
		return fmt.Errorf("feature %s: at least one candidate is required", f.Name)
	}
	for i, candidate := range f.Candidates {
		if strings.TrimSpace(candidate.Method) == "" {
			return fmt.Errorf("feature %s: candidate %d: method is required", f.Name, i+1)
		}
		if strings.TrimSpace(candidate.Path) == "" {
			return fmt.Errorf("feature %s: candidate %d: path is required", f.Name, i+1)
		}
	}

	return nil
}

// Placeholders lists the distinct parameter names referenced by the candidates.
func (f Feature) Placeholders() []string {
	seen := map[string]struct{}{}
	for _, candidate := range f.Candidates {
		for _, match := range placeholderPattern.FindAllStringSubmatch(candidate.Path, -1) {
			seen[match[1]] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Requests expands every candidate into a Request, in order.
func (f Feature) Requests(params map[string]string) ([]Request, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	requests := make([]Request, 0, len(f.Candidates))
	for _, candidate := range f.Candidates {
		path, err := expandPath(candidate.Path, params)
		if err != nil {
			return nil, fmt.Errorf("feature %s: %w", f.Name, err)
		}

		req := NewRequest(candidate.Method, path)
		for key, value := range candidate.Header {
			req.Header.Set(key, value)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func expandPath(path string, params map[string]string) (string, error) {
	var missing []string
	expanded := placeholderPattern.ReplaceAllStringFunc(path, func(token string) string {
		name := token[1 : len(token)-1]
		value, ok := params[name]
		if !ok || strings.TrimSpace(value) == "" {
			missing = append(missing, name)
			return token
		}
		return url.PathEscape(value)
	})

	if len(missing) > 0 {
		return "", fmt.Errorf("missing value for %s in %q", strings.Join(missing, ", "), path)
	}

	return expanded, nil
}
