package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bdm-tracker-api/config"
)

type AuthService struct {
	DB  *gorm.DB
	CFG *config.Config
}

func (s *AuthService) CreateUser(user User) (*User, error) {
	if user.Role == "" {
		user.Role = RoleStaff
	}
	if user.Status == "" {
		user.Status = StatusPending
	}

	if err := s.DB.Create(&user).Error; err != nil {
		// check if it's a unique constraint violation
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "UNIQUE constraint") || strings.Contains(err.Error(), "unique constraint") {
			return nil, errors.New("An account with this email already exists. Please log in or use a different email.")
		}
		return nil, err
	}

	return &user, nil
}

func (s *AuthService) GetUser(email string) (*User, error) {
	var user User
	result := s.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetUserByID(id int) (*User, error) {
	var user User
	result := s.DB.Where("id = ?", id).First(&user)
	if result.Error != nil {
		return nil, result.Error
	}
	return &user, nil
}

func (s *AuthService) GetAllUsers() ([]User, error) {
	var users []User
	result := s.DB.Order("created_at").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}

// ApproveUser clears a pending signup for login.
func (s *AuthService) ApproveUser(id int) (*User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	user.Status = StatusApproved
	if err := s.DB.Model(user).Update("status", StatusApproved).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// RejectUser removes a signup. Used for pending accounts an admin declines.
func (s *AuthService) RejectUser(id int) (*User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Delete(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
