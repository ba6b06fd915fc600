package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username      string `gorm:"uniqueIndex;size:80;not null"`
	Password      string `gorm:"not null"`
	WeightKg      float64
	AvatarURL     string
	SetupComplete bool `gorm:"default:false"`
}
