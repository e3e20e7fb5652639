package domain

import (
	"slices"
	"time"
)

const (
	PermViewUser  = "auth.view_user"
	PermAddStatus = "shop.add_status"
)

// User описывает учётную запись покупателя или администратора
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsSuperuser  bool
	Permissions  []string
	CreatedAt    time.Time
}

func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// Principal — аутентифицированный пользователь текущего запроса.
// nil означает анонимный запрос.
type Principal struct {
	UserID      int64
	Username    string
	IsSuperuser bool
	Permissions []string
}

func NewPrincipal(u *User) *Principal {
	return &Principal{
		UserID:      u.ID,
		Username:    u.Username,
		IsSuperuser: u.IsSuperuser,
		Permissions: u.Permissions,
	}
}

func (p *Principal) IsAuthenticated() bool {
	return p != nil
}

// HasPermission: суперпользователю разрешено всё.
func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	if p.IsSuperuser {
		return true
	}

	return slices.Contains(p.Permissions, perm)
}
