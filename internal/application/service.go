package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bnema/lms-cli/internal/domain"
	"github.com/bnema/lms-cli/internal/ports"
)

const DefaultLoginPath = "/auth/login"

type Dependencies struct {
	Dispatcher ports.Dispatcher
	Sessions   ports.SessionStore
	Guard      ports.TokenValidator
	Navigator  ports.Navigator
	Endpoints  ports.EndpointRepository
	Clock      ports.Clock
	Logger     *slog.Logger
	LoginPath  string
}

// Service is the single entry point for authenticated API calls. Every call
// reads the cached session, checks the token against the cached user and only
// then reaches the dispatcher.
type Service struct {
	dispatcher ports.Dispatcher
	sessions   ports.SessionStore
	guard      ports.TokenValidator
	navigator  ports.Navigator
	endpoints  ports.EndpointRepository
	clock      ports.Clock
	logger     *slog.Logger
	loginPath  string
}

func NewService(deps Dependencies) *Service {
	s := &Service{
		dispatcher: deps.Dispatcher,
		sessions:   deps.Sessions,
		guard:      deps.Guard,
		navigator:  deps.Navigator,
		endpoints:  deps.Endpoints,
		clock:      deps.Clock,
		logger:     deps.Logger,
		loginPath:  deps.LoginPath,
	}
	if s.clock == nil {
		s.clock = ports.SystemClock{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.loginPath == "" {
		s.loginPath = DefaultLoginPath
	}

	return s
}

func (s *Service) BaseURL() string {
	return s.dispatcher.BaseURL()
}

func (s *Service) Send(ctx context.Context, req domain.Request) (domain.Outcome, error) {
	return s.SendAttempts(ctx, req, 0)
}

// SendAttempts is Send with an explicit attempt bound. A bound below 1 uses
// the dispatcher's configured retries.
func (s *Service) SendAttempts(ctx context.Context, req domain.Request, maxAttempts int) (domain.Outcome, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return domain.Outcome{}, err
	}

	authed, err := s.authorize(ctx, session, req)
	if err != nil {
		return domain.Outcome{}, err
	}

	if maxAttempts < 1 {
		return s.dispatcher.Send(ctx, authed)
	}
	return s.dispatcher.SendAttempts(ctx, authed, maxAttempts)
}

// Probe tries candidates in order with a single attempt each and returns the
// first response that is not a 404. A 5xx winner is reissued once with the
// full retry policy.
func (s *Service) Probe(ctx context.Context, candidates []domain.Request) (domain.Outcome, error) {
	session, err := s.loadSession(ctx)
	if err != nil {
		return domain.Outcome{}, err
	}

	outcome, _, err := s.probe(ctx, session, candidates)
	return outcome, err
}

func (s *Service) ProbeFeature(ctx context.Context, cmd ProbeFeatureCommand) (ProbeResult, error) {
	feature, err := s.endpoints.GetByName(ctx, cmd.Name)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("load feature %s: %w", cmd.Name, err)
	}

	session, err := s.loadSession(ctx)
	if err != nil {
		return ProbeResult{}, err
	}

	requests, err := feature.Requests(sessionParams(session, cmd.Params))
	if err != nil {
		return ProbeResult{}, err
	}

	outcome, index, err := s.probe(ctx, session, requests)
	if err != nil {
		return ProbeResult{Feature: feature}, err
	}

	feature.LastResolved = feature.Candidates[index].Path
	feature.ResolvedAt = s.clock.Now().UTC()
	if err := s.endpoints.Save(ctx, feature); err != nil {
		s.logger.WarnContext(ctx, "record resolved endpoint", "feature", feature.Name, "error", err)
	}

	return ProbeResult{Outcome: outcome, Feature: feature, Resolved: feature.LastResolved}, nil
}

func (s *Service) ListFeatures(ctx context.Context) ([]domain.Feature, error) {
	features, err := s.endpoints.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list features: %w", err)
	}

	return features, nil
}

func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (s *Service) CurrentSession(ctx context.Context) (SessionStatus, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		return SessionStatus{}, err
	}

	claims, ok := s.guard.Claims(session.AccessToken)
	status := SessionStatus{
		Session:  session,
		Claims:   claims,
		ClaimsOK: ok,
		Check:    s.guard.Validate(session.AccessToken, session.User),
	}
	if ok {
		status.Expired = claims.Expired(s.clock.Now())
	}

	return status, nil
}

func (s *Service) probe(ctx context.Context, session domain.Session, candidates []domain.Request) (domain.Outcome, int, error) {
	if len(candidates) == 0 {
		return domain.Outcome{}, -1, &domain.NoEndpointError{}
	}

	token, err := s.bearerToken(ctx, session)
	if err != nil {
		return domain.Outcome{}, -1, err
	}

	tried := make([]string, 0, len(candidates))
	for i, candidate := range candidates {
		req := withBearer(candidate, token)

		outcome, err := s.dispatcher.SendAttempts(ctx, req, 1)
		if err != nil {
			if !errors.Is(err, domain.ErrNetwork) {
				return domain.Outcome{}, -1, err
			}
			s.logger.DebugContext(ctx, "probe candidate unreachable", "candidate", candidate.String(), "error", err)
			tried = append(tried, candidate.String())
			continue
		}

		if outcome.Status == http.StatusNotFound {
			s.logger.DebugContext(ctx, "probe candidate not found", "candidate", candidate.String())
			tried = append(tried, candidate.String())
			continue
		}

		if outcome.Kind == domain.OutcomeServerError {
			s.logger.DebugContext(ctx, "probe winner returned server error, retrying", "candidate", candidate.String(), "status", outcome.Status)
			outcome, err = s.dispatcher.Send(ctx, req)
			if err != nil {
				return domain.Outcome{}, -1, err
			}
		}

		return outcome, i, nil
	}

	return domain.Outcome{}, -1, &domain.NoEndpointError{Tried: tried}
}

func (s *Service) loadSession(ctx context.Context) (domain.Session, error) {
	session, err := s.sessions.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.Session{}, nil
		}
		return domain.Session{}, fmt.Errorf("load session: %w", err)
	}

	return session, nil
}

func (s *Service) authorize(ctx context.Context, session domain.Session, req domain.Request) (domain.Request, error) {
	token, err := s.bearerToken(ctx, session)
	if err != nil {
		return domain.Request{}, err
	}

	return withBearer(req, token), nil
}

// bearerToken returns the session token after the guard accepts it. A
// mismatch purges the session and redirects to login.
func (s *Service) bearerToken(ctx context.Context, session domain.Session) (string, error) {
	if !session.HasToken() {
		return "", nil
	}

	check := s.guard.Validate(session.AccessToken, session.User)
	if check.OK() {
		return session.AccessToken, nil
	}

	return "", s.forceLogout(ctx, check)
}

func (s *Service) forceLogout(ctx context.Context, check domain.TokenCheck) error {
	s.logger.WarnContext(ctx, "token does not belong to cached user, clearing session", "detail", check.Detail)

	mismatch := fmt.Errorf("%w: %s", domain.ErrTokenMismatch, check.Detail)
	clearErr := s.sessions.Clear(ctx)
	if s.navigator != nil {
		s.navigator.RedirectToLogin(ctx, check.Detail)
	}
	if clearErr != nil {
		return errors.Join(mismatch, fmt.Errorf("clear session: %w", clearErr))
	}

	return mismatch
}

func withBearer(req domain.Request, token string) domain.Request {
	if token == "" || req.Header.Get("Authorization") != "" {
		return req.Clone()
	}

	return req.WithHeader("Authorization", "Bearer "+token)
}

func sessionParams(session domain.Session, params map[string]string) map[string]string {
	merged := make(map[string]string, len(params)+3)
	for key, value := range params {
		merged[key] = value
	}

	fill := func(key, value string) {
		if _, ok := merged[key]; !ok && value != "" {
			merged[key] = value
		}
	}
	fill(ParamRole, string(session.User.Role))
	fill(ParamUserID, session.User.ID)
	fill(ParamEmail, session.User.Email)

	return merged
}
