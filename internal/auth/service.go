package auth

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

type AuthService struct {
	DB *gorm.DB
}

func (s *AuthService) CreateAccount(account Account) (*Account, error) {
	if account.Role == "" {
		account.Role = "Worker"
	}

	if err := s.DB.Create(&account).Error; err != nil {
		// check if it's a unique constraint violation
		if strings.Contains(err.Error(), "duplicate key") ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint") {
			return nil, errors.New("An account with this email already exists. Please log in or use a different email.")
		}
		return nil, err
	}

	return &account, nil
}

func (s *AuthService) GetAccount(email string) (*Account, error) {
	var account Account
	result := s.DB.Where("email = ?", email).First(&account)
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

func (s *AuthService) GetAccountByID(id int) (*Account, error) {
	var account Account
	result := s.DB.Where("id = ?", id).First(&account)
	if result.Error != nil {
		return nil, result.Error
	}
	return &account, nil
}

// AdminLogin reproduces the inherited admin_portal check: an exact
// match on username AND password, no hashing.
func (s *AuthService) AdminLogin(username, password string) (*AdminCredential, error) {
	var cred AdminCredential
	result := s.DB.Where("username = ? AND password = ?", username, password).First(&cred)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cred, nil
}

func (s *AuthService) GetAdminByID(id int) (*AdminCredential, error) {
	var cred AdminCredential
	result := s.DB.Where("id = ?", id).First(&cred)
	if result.Error != nil {
		return nil, result.Error
	}
	return &cred, nil
}
