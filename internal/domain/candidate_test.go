package domain_test

import (
	"testing"

	"go-ats-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	for _, s := range domain.Statuses() {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}

	assert.False(t, domain.Status("hired").Valid())
	assert.False(t, domain.Status("").Valid())
	assert.False(t, domain.Status("Applied").Valid(), "statuses are lowercase")
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "Applied", domain.StatusApplied.Display())
	assert.Equal(t, "Interview", domain.StatusInterview.Display())
	assert.Equal(t, "Offer", domain.StatusOffer.Display())
	assert.Equal(t, "Rejected", domain.StatusRejected.Display())
	assert.Equal(t, "unknown", domain.Status("unknown").Display())
}

func TestStatusList(t *testing.T) {
	assert.Equal(t, "applied, interview, offer, rejected", domain.StatusList())
}
