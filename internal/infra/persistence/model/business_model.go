// Package model contains the GORM-specific structs mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessModel mirrors the 'businesses' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type BusinessModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             string    `gorm:"type:varchar(255);unique;not null"`
	Name              string    `gorm:"type:varchar(100);not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	VisitGoal         int       `gorm:"not null;default:5"`
	RewardTitle       string    `gorm:"type:varchar(255)"`
	RewardDescription string    `gorm:"type:text"`
	Plan              string    `gorm:"type:varchar(50);not null;default:'free'"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`

	Customers     []CustomerModel     `gorm:"foreignKey:BusinessID"`
	Rewards       []RewardModel       `gorm:"foreignKey:BusinessID"`
	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
