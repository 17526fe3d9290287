package models

// Dispatcher is the matching policy that pairs waiting riders with idle
// drivers. The policy itself is pluggable; events only rely on this contract.
type Dispatcher interface {
	// RequestDriver returns an idle driver for the rider, or nil if none is
	// available. A returned driver is no longer offered to other riders.
	RequestDriver(rider *Rider) *Driver
	// RequestRider returns a waiting rider for the driver, or nil if none is
	// available. A driver with no match is registered as idle.
	RequestRider(driver *Driver) *Rider
	// CancelRide removes the rider from any waiting pool. Idempotent.
	CancelRide(rider *Rider)
}

// Monitor receives activity notifications as events are applied. It is an
// append-only observer: implementations must not fail and must not alter
// simulation state.
type Monitor interface {
	Notify(timestamp int64, category, action, id string, location Location)
}
