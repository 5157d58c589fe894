package ports

import "github.com/bnema/lms-cli/internal/domain"

type TokenValidator interface {
	Validate(token string, user domain.User) domain.TokenCheck
	Claims(token string) (domain.TokenClaims, bool)
}
