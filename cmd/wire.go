package cmd

import (
	"fmt"
	"log/slog"
	"time"

	authadapter "github.com/bnema/lms-cli/internal/adapters/auth"
	"github.com/bnema/lms-cli/internal/adapters/httpapi"
	statusadapter "github.com/bnema/lms-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/lms-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/lms-cli/internal/adapters/secrets/chain"
	sessionstore "github.com/bnema/lms-cli/internal/adapters/session"
	"github.com/bnema/lms-cli/internal/application"
	"github.com/bnema/lms-cli/internal/config"
	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
	"github.com/spf13/cobra"
)

const skipWireAnnotation = "lms/skip-wire"

type app struct {
	service         *application.Service
	logger          *slog.Logger
	outcomeRenderer func(domain.Outcome, statusadapter.RenderOptions) (string, error)
	sessionRenderer func(application.SessionStatus, statusadapter.RenderOptions) (string, error)
	featureRenderer func([]domain.Feature, statusadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func (a *app) wire(cmd *cobra.Command, opts rootOptions) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		EnvFile:    opts.envFile,
	})
	if err != nil {
		return err
	}
	if opts.baseURL != "" {
		cfg.API.BaseURL = opts.baseURL
	}

	logger := config.NewLogger(cmd.ErrOrStderr(), cfg.Log, opts.verbose)

	dispatcher, err := httpapi.NewDispatcher(httpapi.Config{
		BaseURL:           cfg.API.BaseURL,
		MaxRetries:        cfg.API.MaxRetries,
		BackoffBase:       cfg.API.BackoffBase,
		AttemptTimeout:    cfg.API.AttemptTimeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		UserAgent:         cfg.API.UserAgent,
		Logger:            logger,
	})
	if err != nil {
		return fmt.Errorf("wire dispatcher: %w", err)
	}

	secretStore, err := chainstore.NewForBackend(cfg.Secrets.Backend, cfg.Secrets.Dir)
	if err != nil {
		return fmt.Errorf("wire secret store: %w", err)
	}

	endpoints, err := tomlrepo.NewRepository(cfg.Viper())
	if err != nil {
		return fmt.Errorf("wire endpoint repository: %w", err)
	}

	a.logger = logger
	a.service = application.NewService(application.Dependencies{
		Dispatcher: dispatcher,
		Sessions:   sessionstore.NewStore(secretStore),
		Guard:      authadapter.NewTokenGuard(),
		Navigator:  newLoginNavigator(cmd.ErrOrStderr()),
		Endpoints:  endpoints,
		Clock:      ports.SystemClock{},
		Logger:     logger,
		LoginPath:  cfg.Auth.LoginPath,
	})
	a.outcomeRenderer = statusadapter.RenderOutcome
	a.sessionRenderer = statusadapter.RenderSession
	a.featureRenderer = statusadapter.RenderFeatures
	a.now = time.Now

	return nil
}

func (a *app) renderOptions() statusadapter.RenderOptions {
	return statusadapter.RenderOptions{Now: a.now()}
}
