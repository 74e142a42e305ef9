// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Visit is an append-only record of a single check-in event. Visits are never
// mutated or deleted; the customer's counter is derived state kept alongside.
type Visit struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"business_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	PointsEarned int       `json:"points_earned"`
	VisitedAt    time.Time `json:"visited_at"`
}
