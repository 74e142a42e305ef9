package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachedGoal(t *testing.T) {
	tests := []struct {
		name      string
		visits    int
		visitGoal int
		want      bool
	}{
		{name: "exact goal", visits: 5, visitGoal: 5, want: true},
		{name: "one short", visits: 4, visitGoal: 5, want: false},
		{name: "second cycle boundary", visits: 10, visitGoal: 5, want: true},
		{name: "mid second cycle", visits: 7, visitGoal: 5, want: false},
		{name: "zero visits", visits: 0, visitGoal: 5, want: false},
		{name: "goal of one", visits: 3, visitGoal: 1, want: true},
		{name: "zero goal never reaches", visits: 10, visitGoal: 0, want: false},
		{name: "negative goal never reaches", visits: 10, visitGoal: -3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReachedGoal(tt.visits, tt.visitGoal))
		})
	}
}

func TestRewardNumber(t *testing.T) {
	assert.Equal(t, 1, RewardNumber(5, 5))
	assert.Equal(t, 2, RewardNumber(10, 5))
	assert.Equal(t, 0, RewardNumber(4, 5))
	assert.Equal(t, 0, RewardNumber(10, 0))
}
