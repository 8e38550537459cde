package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateTransitions(t *testing.T) {
	cases := []struct {
		from    State
		to      State
		allowed bool
	}{
		{StateLoading, StateReady, true},
		{StateLoading, StateSubmitting, false},
		{StateReady, StateSubmitting, true},
		{StateReady, StateSucceeded, false},
		{StateSubmitting, StateSucceeded, true},
		{StateSubmitting, StateFailed, true},
		{StateSubmitting, StateReady, false},
		{StateFailed, StateSubmitting, true},
		{StateFailed, StateReady, false},
		{StateSucceeded, StateSubmitting, false},
		{StateSucceeded, StateFailed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestSucceededIsTerminal(t *testing.T) {
	assert.True(t, StateSucceeded.IsTerminal())
	assert.False(t, StateFailed.IsTerminal())
	assert.False(t, StateReady.IsTerminal())
}
