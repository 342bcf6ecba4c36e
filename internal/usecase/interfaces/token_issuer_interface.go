package interfaces

import "quotation_service/internal/domain/entities"

// ITokenIssuer signs and verifies the bearer tokens handed out at login.
type ITokenIssuer interface {
	Issue(u entities.User) (string, error)
	Verify(token string) (entities.Caller, error)
}
