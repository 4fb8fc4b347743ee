package auth

import "healthpulse-api/internal/logs"

type AuthServicePort interface {
	CreateAccount(account Account) (*Account, error)
	GetAccount(email string) (*Account, error)
	GetAccountByID(id int) (*Account, error)
	AdminLogin(username, password string) (*AdminCredential, error)
	GetAdminByID(id int) (*AdminCredential, error)
}

type LogServicePort interface {
	Log(entry logs.SystemLog, payload any) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*logs.LogService)(nil)
