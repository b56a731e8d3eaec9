package models

import (
	"time"
)

// User is an account that owns entries.
type User struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id" bson:"_id"`
	Username     string    `gorm:"type:varchar(100)" json:"username" bson:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex" json:"email" bson:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-" bson:"password_hash"`
	IsAdmin      bool      `gorm:"default:false" json:"isAdmin" bson:"is_admin"`
	CreatedAt    time.Time `json:"createdAt" bson:"created_at"`
}

func (User) TableName() string {
	return "users"
}

const (
	FieldEmail        = "email"
	FieldUsername     = "username"
	FieldPasswordHash = "password_hash"
	FieldIsAdmin      = "is_admin"
)

func (u *User) GetDisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
