package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint             `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Email        string           `gorm:"uniqueIndex;not null;size:200" json:"email"`
	PasswordHash string           `gorm:"not null" json:"-"`
	Records      []OvertimeRecord `gorm:"foreignKey:UserID" json:"-"`
}

// CanManageRecord reports whether the user may delete the given record.
// Every record belongs to exactly one user and only the owner touches it.
func (u *User) CanManageRecord(r *OvertimeRecord) bool {
	return r.UserID == u.ID
}
