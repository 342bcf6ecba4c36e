package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSalesAgent Role = "sales-agent"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSalesAgent
}

// User is an account able to authenticate against the API.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (email-index): email
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserSummary is the public projection of a user embedded in other resources.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Caller identifies the authenticated user an operation runs on behalf of.
type Caller struct {
	UserID string
	Role   Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}
