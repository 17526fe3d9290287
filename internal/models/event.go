package models

import "fmt"

// Event is a simulation event. Applying an event mutates the entities it
// carries and returns the follow-on events it causes; every produced event
// has a timestamp greater than or equal to its cause.
type Event interface {
	Timestamp() int64
	Type() string
	Apply(dispatcher Dispatcher, monitor Monitor) []Event
	String() string
}

type baseEvent struct {
	timestamp int64
}

func (e baseEvent) Timestamp() int64 {
	return e.timestamp
}

// RiderRequest is a rider asking to be matched with a driver.
type RiderRequest struct {
	baseEvent
	Rider *Rider
}

func NewRiderRequest(timestamp int64, rider *Rider) *RiderRequest {
	return &RiderRequest{baseEvent: baseEvent{timestamp: timestamp}, Rider: rider}
}

func (e *RiderRequest) Type() string {
	return EventRiderRequest
}

// Apply asks the dispatcher for an idle driver. If one is found the driver
// starts driving to the rider's origin and a Pickup is scheduled for its
// arrival. A Cancellation is scheduled at the rider's patience limit either
// way, so a matched rider can still give up before the driver arrives.
func (e *RiderRequest) Apply(dispatcher Dispatcher, monitor Monitor) []Event {
	monitor.Notify(e.timestamp, CategoryRider, ActionRequest, e.Rider.ID, e.Rider.Origin)

	var events []Event
	if driver := dispatcher.RequestDriver(e.Rider); driver != nil {
		travelTime := driver.StartDrive(e.Rider.Origin)
		events = append(events, NewPickup(e.timestamp+travelTime, e.Rider, driver))
	}
	events = append(events, NewCancellation(e.timestamp+e.Rider.Patience, e.Rider))
	return events
}

func (e *RiderRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a driver", e.timestamp, e.Rider)
}

// DriverRequest is a driver asking to be matched with a rider.
type DriverRequest struct {
	baseEvent
	Driver *Driver
}

func NewDriverRequest(timestamp int64, driver *Driver) *DriverRequest {
	return &DriverRequest{baseEvent: baseEvent{timestamp: timestamp}, Driver: driver}
}

func (e *DriverRequest) Type() string {
	return EventDriverRequest
}

// Apply asks the dispatcher for a waiting rider. With a match the driver
// starts driving to the rider's origin and a Pickup is scheduled; without
// one the dispatcher keeps the driver registered as idle and no events are
// produced.
func (e *DriverRequest) Apply(dispatcher Dispatcher, monitor Monitor) []Event {
	monitor.Notify(e.timestamp, CategoryDriver, ActionRequest, e.Driver.ID, e.Driver.Location)

	rider := dispatcher.RequestRider(e.Driver)
	if rider == nil {
		return nil
	}
	rider.Status = RiderWaiting
	travelTime := e.Driver.StartDrive(rider.Origin)
	return []Event{NewPickup(e.timestamp+travelTime, rider, e.Driver)}
}

func (e *DriverRequest) String() string {
	return fmt.Sprintf("%d -- %s: request a rider", e.timestamp, e.Driver)
}

// Cancellation is a rider running out of patience.
type Cancellation struct {
	baseEvent
	Rider *Rider
}

func NewCancellation(timestamp int64, rider *Rider) *Cancellation {
	return &Cancellation{baseEvent: baseEvent{timestamp: timestamp}, Rider: rider}
}

func (e *Cancellation) Type() string {
	return EventCancellation
}

// Apply cancels the rider's request unless the ride already completed. A
// Satisfied rider stays Satisfied and nothing else happens.
func (e *Cancellation) Apply(dispatcher Dispatcher, monitor Monitor) []Event {
	if e.Rider.Status == RiderSatisfied {
		return nil
	}
	e.Rider.Status = RiderCancelled
	monitor.Notify(e.timestamp, CategoryRider, ActionCancel, e.Rider.ID, e.Rider.Origin)
	dispatcher.CancelRide(e.Rider)
	return nil
}

func (e *Cancellation) String() string {
	return fmt.Sprintf("%d -- %s: cancel", e.timestamp, e.Rider)
}

// Pickup is a driver arriving at a rider's origin.
type Pickup struct {
	baseEvent
	Rider  *Rider
	Driver *Driver
}

func NewPickup(timestamp int64, rider *Rider, driver *Driver) *Pickup {
	return &Pickup{baseEvent: baseEvent{timestamp: timestamp}, Rider: rider, Driver: driver}
}

func (e *Pickup) Type() string {
	return EventPickup
}

// Apply ends the driver's approach drive. If the rider cancelled while the
// driver was en route, the driver is released where it stands (the rider's
// former origin) and immediately requests a new rider at the same timestamp.
// Otherwise the ride starts, the rider becomes Satisfied and a Dropoff is
// scheduled for the ride's end.
func (e *Pickup) Apply(dispatcher Dispatcher, monitor Monitor) []Event {
	e.Driver.EndDrive()

	if e.Rider.Status == RiderCancelled {
		return []Event{NewDriverRequest(e.timestamp, e.Driver)}
	}

	monitor.Notify(e.timestamp, CategoryDriver, ActionPickup, e.Driver.ID, e.Rider.Origin)
	monitor.Notify(e.timestamp, CategoryRider, ActionPickup, e.Rider.ID, e.Rider.Origin)

	rideTime := e.Driver.StartRide(e.Rider)
	e.Rider.Status = RiderSatisfied
	return []Event{NewDropoff(e.timestamp+rideTime, e.Rider, e.Driver)}
}

func (e *Pickup) String() string {
	return fmt.Sprintf("%d -- %s: pickup %s", e.timestamp, e.Driver, e.Rider)
}

// Dropoff is a driver arriving at a rider's destination.
type Dropoff struct {
	baseEvent
	Rider  *Rider
	Driver *Driver
}

func NewDropoff(timestamp int64, rider *Rider, driver *Driver) *Dropoff {
	return &Dropoff{baseEvent: baseEvent{timestamp: timestamp}, Rider: rider, Driver: driver}
}

func (e *Dropoff) Type() string {
	return EventDropoff
}

// Apply completes the ride and sends the driver straight back into the pool
// with a DriverRequest at the same timestamp. The rider stays Satisfied.
func (e *Dropoff) Apply(dispatcher Dispatcher, monitor Monitor) []Event {
	monitor.Notify(e.timestamp, CategoryRider, ActionDropoff, e.Rider.ID, e.Rider.Destination)
	monitor.Notify(e.timestamp, CategoryDriver, ActionDropoff, e.Driver.ID, e.Rider.Destination)

	e.Driver.EndRide()
	return []Event{NewDriverRequest(e.timestamp, e.Driver)}
}

func (e *Dropoff) String() string {
	return fmt.Sprintf("%d -- %s: dropoff %s", e.timestamp, e.Driver, e.Rider)
}
