package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "User"
	UserRoleAdmin UserRole = "Admin"
)

// User accounts are never hard-deleted, only flagged via IsDeleted.
type User struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Email       string    `gorm:"size:100;not null;unique" json:"email"`
	Password    string    `gorm:"size:255;not null" json:"-"`
	Name        string    `gorm:"size:50" json:"name"`
	Surname     string    `gorm:"size:50" json:"surname"`
	CompanyName string    `gorm:"size:100" json:"company_name"`
	Phone       string    `gorm:"size:30" json:"phone"`
	Role        UserRole  `gorm:"type:user_role;default:'User';not null" json:"role"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	IsDeleted   bool      `gorm:"default:false;not null" json:"is_deleted"`
}
