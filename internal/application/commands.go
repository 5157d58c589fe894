package application

import "github.com/bnema/lms-cli/internal/domain"

type LoginCommand struct {
	Email    string
	Password string
}

type ProbeFeatureCommand struct {
	Name   domain.FeatureName
	Params map[string]string
}

// Session-derived values fill these placeholders when the caller leaves them out.
const (
	ParamRole   = "role"
	ParamUserID = "user_id"
	ParamEmail  = "email"
)
