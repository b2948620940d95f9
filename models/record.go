package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	HourTypeDaytime = "daytime"
	HourTypeNight   = "night"
)

// OvertimeRecord is one logged entry of extra hours worked on a calendar
// date. Records are immutable once created; the only mutations are create
// and (soft) delete.
type OvertimeRecord struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	User        User           `gorm:"foreignKey:UserID" json:"-"`
	Date        DateOnly       `gorm:"not null;type:date" json:"date"`
	Hours       *float64       `json:"hours"`
	BaseSalary  *float64       `json:"base_salary"`
	HourlyRate  *float64       `json:"hourly_rate"`
	TotalPay    *float64       `json:"total_pay"`
	HourType    string         `gorm:"not null;size:20;default:daytime" json:"hour_type"`
	NightBonus  bool           `gorm:"not null;default:false" json:"night_bonus"`
	BonusAmount *float64       `json:"bonus_amount"`
	BonusDetail string         `gorm:"size:500" json:"bonus_detail"`
}
