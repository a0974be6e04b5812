package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleSuperAdmin  = "super_admin"
	RoleMarketAdmin = "market_admin"
)

// User is a portal administrator. Super admins get USR-prefixed codes;
// market admins get codes prefixed with their market's code.
type User struct {
	gorm.Model
	UserCode     string  `gorm:"uniqueIndex;not null"`
	Email        string  `gorm:"uniqueIndex;not null"`
	Password     string  `gorm:"not null"`
	Name         string  `gorm:"not null"`
	Phone        string
	Role         string  `gorm:"not null;default:'market_admin'"`
	MarketCode   *string `gorm:"index"`
	Status       string  `gorm:"not null;default:'active'"`
	LastLoginAt  time.Time
	TokenVersion int `gorm:"default:1"`
}
