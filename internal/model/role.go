package model

import "time"

// Role is a named grant assigned to users, e.g. "Admin" or "User".
// Roles are created lazily the first time they are referenced.
type Role struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Users []User `json:"-" gorm:"many2many:user_roles;"`
}
