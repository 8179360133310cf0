package auth

import "time"

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type User struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName    string    `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName     string    `gorm:"size:100;not null;column:lastname" json:"lastname"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Municipality string    `gorm:"size:100" json:"municipality"`
	Password     string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20" json:"role"`
	Status       string    `gorm:"size:20" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type LoginResponse struct {
	ID           int    `json:"id"`
	FirstName    string `json:"firstname"`
	LastName     string `json:"lastname"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Municipality string `json:"municipality"`
}

type VerifyPasswordRequest struct {
	Password string `json:"password"`
}

type VerifyPasswordResponse struct {
	Match bool `json:"match"`
}
