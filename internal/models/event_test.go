package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDispatcher hands out a preconfigured driver or rider exactly once.
type stubDispatcher struct {
	driver    *Driver
	rider     *Rider
	cancelled []string
}

func (s *stubDispatcher) RequestDriver(rider *Rider) *Driver {
	driver := s.driver
	s.driver = nil
	return driver
}

func (s *stubDispatcher) RequestRider(driver *Driver) *Rider {
	rider := s.rider
	s.rider = nil
	return rider
}

func (s *stubDispatcher) CancelRide(rider *Rider) {
	s.cancelled = append(s.cancelled, rider.ID)
}

type recordingMonitor struct {
	records []ActivityRecord
}

func (m *recordingMonitor) Notify(timestamp int64, category, action, id string, location Location) {
	m.records = append(m.records, ActivityRecord{
		Timestamp: timestamp,
		Category:  category,
		Action:    action,
		ID:        id,
		Row:       int64(location.Row),
		Col:       int64(location.Col),
	})
}

func mustDriver(t *testing.T, id string, loc Location, speed int) *Driver {
	t.Helper()
	driver, err := NewDriver(id, loc, speed)
	require.NoError(t, err)
	return driver
}

func mustRider(t *testing.T, id string, origin, dest Location, patience int64) *Rider {
	t.Helper()
	rider, err := NewRider(id, origin, dest, patience)
	require.NoError(t, err)
	return rider
}

func TestRiderRequestWithMatch(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(0, 3), 1)
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(5, 0), 20)
	dispatcher := &stubDispatcher{driver: driver}
	mon := &recordingMonitor{}

	produced := NewRiderRequest(10, rider).Apply(dispatcher, mon)

	require.Len(t, produced, 2)
	pickup, ok := produced[0].(*Pickup)
	require.True(t, ok)
	assert.Equal(t, int64(13), pickup.Timestamp(), "pickup fires after the approach drive")
	assert.Same(t, driver, pickup.Driver)

	cancellation, ok := produced[1].(*Cancellation)
	require.True(t, ok)
	assert.Equal(t, int64(30), cancellation.Timestamp(), "cancellation fires at the patience limit")

	assert.Equal(t, DriverBusy, driver.Status)
	require.NotNil(t, driver.Destination)
	assert.Equal(t, rider.Origin, *driver.Destination)

	require.Len(t, mon.records, 1)
	assert.Equal(t, CategoryRider, mon.records[0].Category)
	assert.Equal(t, ActionRequest, mon.records[0].Action)
}

func TestRiderRequestWithoutMatchStillSchedulesCancellation(t *testing.T) {
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(5, 0), 7)
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewRiderRequest(3, rider).Apply(dispatcher, mon)

	require.Len(t, produced, 1)
	cancellation, ok := produced[0].(*Cancellation)
	require.True(t, ok)
	assert.Equal(t, int64(10), cancellation.Timestamp())
}

func TestDriverRequestWithMatch(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(2, 0), 2)
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(5, 5), 20)
	rider.Status = RiderCancelled // stale status from a previous round is reset
	dispatcher := &stubDispatcher{rider: rider}
	mon := &recordingMonitor{}

	produced := NewDriverRequest(0, driver).Apply(dispatcher, mon)

	require.Len(t, produced, 1)
	pickup, ok := produced[0].(*Pickup)
	require.True(t, ok)
	assert.Equal(t, int64(1), pickup.Timestamp())
	assert.Equal(t, RiderWaiting, rider.Status)
	assert.Equal(t, DriverBusy, driver.Status)
}

func TestDriverRequestWithoutMatchProducesNothing(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(2, 0), 2)
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewDriverRequest(5, driver).Apply(dispatcher, mon)

	assert.Empty(t, produced)
	assert.True(t, driver.IsIdle())
	require.Len(t, mon.records, 1)
	assert.Equal(t, CategoryDriver, mon.records[0].Category)
}

func TestCancellationMarksRiderCancelled(t *testing.T) {
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(1, 1), 5)
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewCancellation(5, rider).Apply(dispatcher, mon)

	assert.Empty(t, produced)
	assert.Equal(t, RiderCancelled, rider.Status)
	assert.Equal(t, []string{"r1"}, dispatcher.cancelled)
	require.Len(t, mon.records, 1)
	assert.Equal(t, ActionCancel, mon.records[0].Action)
}

func TestCancellationIsNoOpForSatisfiedRider(t *testing.T) {
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(1, 1), 5)
	rider.Status = RiderSatisfied
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewCancellation(5, rider).Apply(dispatcher, mon)

	assert.Empty(t, produced)
	assert.Equal(t, RiderSatisfied, rider.Status, "satisfied is terminal")
	assert.Empty(t, dispatcher.cancelled)
	assert.Empty(t, mon.records)
}

func TestPickupStartsRide(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(0, 3), 1)
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(0, 4), 20)
	driver.StartDrive(rider.Origin)
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewPickup(3, rider, driver).Apply(dispatcher, mon)

	require.Len(t, produced, 1)
	dropoff, ok := produced[0].(*Dropoff)
	require.True(t, ok)
	assert.Equal(t, int64(7), dropoff.Timestamp(), "dropoff fires after the ride")

	assert.Equal(t, RiderSatisfied, rider.Status)
	assert.Equal(t, DriverBusy, driver.Status)
	require.NotNil(t, driver.Destination)
	assert.Equal(t, rider.Destination, *driver.Destination)

	require.Len(t, mon.records, 2)
	assert.Equal(t, CategoryDriver, mon.records[0].Category)
	assert.Equal(t, ActionPickup, mon.records[0].Action)
	assert.Equal(t, CategoryRider, mon.records[1].Category)
}

func TestPickupOfCancelledRiderReleasesDriver(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(0, 9), 1)
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(0, 4), 5)
	driver.StartDrive(rider.Origin)
	rider.Status = RiderCancelled
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewPickup(9, rider, driver).Apply(dispatcher, mon)

	require.Len(t, produced, 1)
	request, ok := produced[0].(*DriverRequest)
	require.True(t, ok)
	assert.Equal(t, int64(9), request.Timestamp(), "driver re-requests at the same timestamp")
	assert.Same(t, driver, request.Driver)

	assert.Equal(t, rider.Origin, driver.Location, "driver stays where the rider was")
	assert.True(t, driver.IsIdle())
	assert.Empty(t, mon.records, "no pickup is observed for a cancelled rider")
}

func TestDropoffSendsDriverBackIntoThePool(t *testing.T) {
	driver := mustDriver(t, "d1", NewLocation(0, 0), 1)
	rider := mustRider(t, "r1", NewLocation(0, 0), NewLocation(0, 4), 20)
	driver.StartRide(rider)
	rider.Status = RiderSatisfied
	dispatcher := &stubDispatcher{}
	mon := &recordingMonitor{}

	produced := NewDropoff(4, rider, driver).Apply(dispatcher, mon)

	require.Len(t, produced, 1)
	request, ok := produced[0].(*DriverRequest)
	require.True(t, ok)
	assert.Equal(t, int64(4), request.Timestamp())

	assert.Equal(t, rider.Destination, driver.Location)
	assert.True(t, driver.IsIdle())
	assert.Equal(t, RiderSatisfied, rider.Status)

	require.Len(t, mon.records, 2)
	assert.Equal(t, ActionDropoff, mon.records[0].Action)
	assert.Equal(t, ActionDropoff, mon.records[1].Action)
}
