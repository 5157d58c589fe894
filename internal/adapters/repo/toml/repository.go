package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	EndpointsPathKey    = "endpoints.path"
	endpointsFileMode   = 0o600
	endpointsDirMode    = 0o700
	endpointsConfigDir  = ".lms"
	endpointsConfigFile = "endpoints.toml"
	tempFilePattern     = ".endpoints-*.toml.tmp"
)

// Repository stores the feature catalogue in a TOML file. A missing file reads
// as the built-in defaults.
type Repository struct {
	endpointsPath string
	mu            *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.EndpointRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(EndpointsPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(EndpointsPathKey, filepath.Join(homeDir, endpointsConfigDir, endpointsConfigFile))
	}

	endpointsPath := strings.TrimSpace(cfg.GetString(EndpointsPathKey))
	if endpointsPath == "" {
		return nil, errors.New("endpoints path is empty")
	}
	endpointsPath, err := normalizeEndpointsPath(endpointsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{endpointsPath: endpointsPath, mu: lockForPath(endpointsPath)}, nil
}

func (r *Repository) Path() string {
	return r.endpointsPath
}

func (r *Repository) Save(ctx context.Context, feature domain.Feature) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := feature.Validate(); err != nil {
		return fmt.Errorf("save feature: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(feature)
	updated := false
	for i := range file.Features {
		if file.Features[i].Name == encoded.Name {
			file.Features[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Features = append(file.Features, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name domain.FeatureName) (domain.Feature, error) {
	if err := ctx.Err(); err != nil {
		return domain.Feature{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Feature{}, err
	}

	for _, entry := range file.Features {
		if entry.Name == string(name) {
			return fromSchema(entry), nil
		}
	}

	return domain.Feature{}, fmt.Errorf("%w: %s", domain.ErrFeatureNotFound, name)
}

func (r *Repository) List(ctx context.Context) ([]domain.Feature, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	features := make([]domain.Feature, 0, len(file.Features))
	for _, entry := range file.Features {
		features = append(features, fromSchema(entry))
	}

	return features, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.endpointsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultFileSchema(), nil
		}
		return fileSchema{}, fmt.Errorf("read endpoints file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode endpoints file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeEndpointsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve endpoints path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.endpointsPath), endpointsDirMode); err != nil {
		return fmt.Errorf("create endpoints directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode endpoints file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.endpointsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp endpoints file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp endpoints file: %w", err)
	}

	if err := tempFile.Chmod(endpointsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp endpoints file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp endpoints file: %w", err)
	}

	if err := os.Rename(tempName, r.endpointsPath); err != nil {
		return fmt.Errorf("replace endpoints file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(feature domain.Feature) featureSchema {
	candidates := make([]candidateSchema, 0, len(feature.Candidates))
	for _, candidate := range feature.Candidates {
		var headers map[string]string
		if len(candidate.Header) > 0 {
			headers = make(map[string]string, len(candidate.Header))
			for key, value := range candidate.Header {
				headers[key] = value
			}
		}
		candidates = append(candidates, candidateSchema{
			Method:  strings.ToUpper(strings.TrimSpace(candidate.Method)),
			Path:    strings.TrimSpace(candidate.Path),
			Headers: headers,
		})
	}

	return featureSchema{
		Name:         string(feature.Name),
		Description:  feature.Description,
		LastResolved: feature.LastResolved,
		ResolvedAt:   formatTime(feature.ResolvedAt),
		Candidates:   candidates,
	}
}

func fromSchema(entry featureSchema) domain.Feature {
	candidates := make([]domain.Candidate, 0, len(entry.Candidates))
	for _, candidate := range entry.Candidates {
		candidates = append(candidates, domain.Candidate{
			Method: candidate.Method,
			Path:   candidate.Path,
			Header: candidate.Headers,
		})
	}

	return domain.Feature{
		Name:         domain.FeatureName(entry.Name),
		Description:  entry.Description,
		Candidates:   candidates,
		LastResolved: entry.LastResolved,
		ResolvedAt:   parseTime(entry.ResolvedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
