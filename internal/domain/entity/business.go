// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is the tenant of the loyalty system: a shop that tracks customer
// visits and hands out rewards once the configured visit goal is reached.
type Business struct {
	ID                uuid.UUID  `json:"id"`
	Email             string     `json:"email"`    // Login identifier, unique across businesses.
	Name              string     `json:"name"`     // Display name shown to customers.
	PasswordHash      string     `json:"-"`        // bcrypt hash, never serialized.
	VisitGoal         int        `json:"visit_goal"`         // Visits required per reward cycle, always >= 1.
	RewardTitle       string     `json:"reward_title"`       // Display title of the reward, e.g. "Free coffee".
	RewardDescription string     `json:"reward_description"` // Longer display text shown on the claim page.
	Plan              string     `json:"plan"`               // Subscription plan identifier.
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ReachedGoal reports whether the updated visit count lands exactly on a goal
// boundary. A non-positive goal never reaches a reward; goals are validated at
// registration and settings time, so this guard only protects against stale rows.
func ReachedGoal(visits, visitGoal int) bool {
	if visitGoal <= 0 || visits <= 0 {
		return false
	}

	return visits%visitGoal == 0
}

// RewardNumber returns which reward cycle the visit count corresponds to
// (1 for the first completed cycle). Returns 0 for a non-positive goal.
func RewardNumber(visits, visitGoal int) int {
	if visitGoal <= 0 {
		return 0
	}

	return visits / visitGoal
}
