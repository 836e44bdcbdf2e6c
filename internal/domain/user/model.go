package user

import "time"

const (
	RoleUserAdmin       = "user_admin"
	RoleCSR             = "csr"
	RolePIN             = "pin"
	RolePlatformManager = "platform_manager"
)

// User is a platform account. Authentication resolves one of the four
// roles; authorization elsewhere only ever compares ids and roles.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Role      string    `gorm:"size:50;not null;index" json:"role"`
	Username  string    `gorm:"size:80;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
}

// Profile carries the contact details shown in admin listings.
type Profile struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"index;not null" json:"user_id"`
	FullName string `gorm:"size:120" json:"full_name"`
	Email    string `gorm:"size:120" json:"email"`
	Phone    string `gorm:"size:30" json:"phone"`
}

func ValidRole(r string) bool {
	switch r {
	case RoleUserAdmin, RoleCSR, RolePIN, RolePlatformManager:
		return true
	}
	return false
}
