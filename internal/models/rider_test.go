package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRiderValidation(t *testing.T) {
	_, err := NewRider("r1", NewLocation(0, 0), NewLocation(1, 1), 0)
	require.Error(t, err, "zero patience is rejected")

	_, err = NewRider("", NewLocation(0, 0), NewLocation(1, 1), 5)
	require.Error(t, err, "empty id is rejected")

	rider, err := NewRider("r1", NewLocation(0, 0), NewLocation(1, 1), 5)
	require.NoError(t, err)
	assert.Equal(t, RiderWaiting, rider.Status)
	assert.Equal(t, "r1", rider.String())
}
