// File: internal/model/user.go
package model

import "time"

// Role 帳號角色
type Role string

const (
	RoleCustomer Role = "customer"
	RoleSeller   Role = "seller"
)

// Valid 回報角色是否為已知值
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleSeller
}

type User struct {
	ID           int       `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password" json:"-"`
	Role         Role      `db:"role" json:"role"`
	BusinessName *string   `db:"business_name" json:"business_name,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
