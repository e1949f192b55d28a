// AngelaMos | 2026
// entity.go

package auth

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	UserType     string    `db:"user_type"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsOwner() bool {
	return u.UserType == UserTypeOwner
}

func (u *User) IsTenant() bool {
	return u.UserType == UserTypeTenant
}

const (
	UserTypeOwner  = "owner"
	UserTypeTenant = "tenant"
	UserTypeAdmin  = "admin"
)
