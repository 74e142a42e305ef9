// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a loyalty-program member. Each customer belongs to exactly one
// business and carries a running visit counter that is reset when a reward is
// redeemed.
type Customer struct {
	ID         uuid.UUID  `json:"id"`
	BusinessID uuid.UUID  `json:"business_id"`
	Name       string     `json:"name"`
	Email      string     `json:"email,omitempty"` // Optional, used for reward emails.
	Phone      string     `json:"phone,omitempty"` // Optional, used for WhatsApp messages.
	Visits     int        `json:"visits"`          // Running visit counter within the current cycle.
	LastVisit  *time.Time `json:"last_visit,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
