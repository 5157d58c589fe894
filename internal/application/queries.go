package application

import "github.com/bnema/lms-cli/internal/domain"

type SessionStatus struct {
	Session  domain.Session
	Claims   domain.TokenClaims
	ClaimsOK bool
	Check    domain.TokenCheck
	Expired  bool
}

type ProbeResult struct {
	Outcome domain.Outcome
	Feature domain.Feature
	// Resolved is the candidate path template that answered.
	Resolved string
}
