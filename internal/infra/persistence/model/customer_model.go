package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerModel mirrors the 'customers' table. Email and phone are nullable so
// the composite unique index on (business_id, email) only applies to customers
// that actually carry an email address.
type CustomerModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_customers_business_email"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Email      *string   `gorm:"type:varchar(255);uniqueIndex:uniq_customers_business_email"`
	Phone      *string   `gorm:"type:varchar(50)"`
	Visits     int       `gorm:"not null;default:0"`
	LastVisit  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`

	VisitRecords []VisitModel  `gorm:"foreignKey:CustomerID"`
	Rewards      []RewardModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
