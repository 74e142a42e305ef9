package model

import (
	"time"

	"github.com/google/uuid"
)

// VisitModel mirrors the 'visits' table. Visit rows are append-only history
// and carry no updated_at or soft-delete column.
type VisitModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PointsEarned int       `gorm:"not null;default:1"`
	VisitedAt    time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
