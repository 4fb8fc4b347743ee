package auth

import (
	"time"

	"github.com/lib/pq"
)

type Account struct {
	ID        int            `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string         `gorm:"size:100;not null;column:firstname" json:"firstname"`
	LastName  string         `gorm:"size:100;not null;column:lastname" json:"lastname"`
	Email     string         `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Villages  pq.StringArray `gorm:"type:text[];column:villages" json:"villages"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (Account) TableName() string {
	return "users"
}

// AdminCredential rows are matched verbatim, password included. The
// table predates this service and stores plaintext passwords; see
// DESIGN.md before changing the comparison.
type AdminCredential struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (AdminCredential) TableName() string {
	return "admin_portal"
}

type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID        int            `json:"id"`
	FirstName string         `json:"firstname"`
	LastName  string         `json:"lastname"`
	Email     string         `json:"email"`
	Role      string         `json:"role"`
	Villages  pq.StringArray `json:"villages"`
}
