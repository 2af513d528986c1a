package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionApplication(t *testing.T) {
	assert.True(t, CanTransitionApplication(ApplicationStatusReceived, ApplicationStatusUnderReview))
	assert.True(t, CanTransitionApplication(ApplicationStatusUnderReview, ApplicationStatusInterview))
	assert.True(t, CanTransitionApplication(ApplicationStatusInterview, ApplicationStatusOffered))

	// Rejection is allowed from any non-terminal stage.
	assert.True(t, CanTransitionApplication(ApplicationStatusReceived, ApplicationStatusRejected))
	assert.True(t, CanTransitionApplication(ApplicationStatusUnderReview, ApplicationStatusRejected))
	assert.True(t, CanTransitionApplication(ApplicationStatusInterview, ApplicationStatusRejected))

	// No skipping stages.
	assert.False(t, CanTransitionApplication(ApplicationStatusReceived, ApplicationStatusInterview))
	assert.False(t, CanTransitionApplication(ApplicationStatusReceived, ApplicationStatusOffered))

	// Terminal statuses stay terminal.
	assert.False(t, CanTransitionApplication(ApplicationStatusOffered, ApplicationStatusRejected))
	assert.False(t, CanTransitionApplication(ApplicationStatusRejected, ApplicationStatusUnderReview))

	// No backwards moves.
	assert.False(t, CanTransitionApplication(ApplicationStatusInterview, ApplicationStatusReceived))
}
