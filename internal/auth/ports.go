package auth

import "bdm-tracker-api/internal/logs"

type AuthServicePort interface {
	CreateUser(user User) (*User, error)
	GetUser(email string) (*User, error)
	GetUserByID(id int) (*User, error)
	GetAllUsers() ([]User, error)
	ApproveUser(id int) (*User, error)
	RejectUser(id int) (*User, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload interface{}) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
