package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens de acesso da API
const (
	RoleAdmin    = 1
	RoleOperator = 2
	RoleViewer   = 3
)

type Claims struct {
	UserID     int    `json:"user_id"`
	UserName   string `json:"user_name"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.UserRoleID == RoleAdmin
}
