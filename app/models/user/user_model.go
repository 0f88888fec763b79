// Package user holds back-office identities and their roles.
package user

import (
	"golang.org/x/crypto/bcrypt"

	"casamento/app/models"
)

// Role is a flat capability label, not a hierarchy.
type Role string

const (
	RoleAdmin   Role = "admin"
	RolePlanner Role = "planner"
	RoleGuest   Role = "guest"
)

// IsValidRole reports whether r names a known role.
func IsValidRole(r string) bool {
	switch Role(r) {
	case RoleAdmin, RolePlanner, RoleGuest:
		return true
	}
	return false
}

// User is an authenticated identity. Credential users carry a bcrypt hash;
// OAuth users carry the provider identity instead. Access removal flips
// Active off, rows are never hard-deleted.
type User struct {
	ID    string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name  string `gorm:"type:varchar(100)" json:"name"`
	Email string `gorm:"type:varchar(255);uniqueIndex" json:"email"`

	PasswordHash string `gorm:"type:varchar(255)" json:"-"`
	Provider     string `gorm:"type:varchar(50)" json:"provider,omitempty"`
	ProviderID   string `gorm:"type:varchar(255);index" json:"-"`
	AvatarURL    string `gorm:"type:text" json:"avatar_url,omitempty"`

	Role   Role `gorm:"type:varchar(20);default:guest;index" json:"role"`
	Active bool `gorm:"default:true" json:"active"`

	models.CommonTimestampsField
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// SetPassword stores a bcrypt hash of the plain password.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares a plain password against the stored hash.
func (u *User) CheckPassword(plain string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsAdminOrPlanner reports whether the user can manage the guest list.
func (u *User) IsAdminOrPlanner() bool {
	return u.Role == RoleAdmin || u.Role == RolePlanner
}
