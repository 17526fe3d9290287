package models

import (
	"fmt"
	"math"
)

// Driver is a driver registered with the service. A driver is Busy exactly
// while it has a destination set, either approaching a rider or carrying one.
type Driver struct {
	ID          string    `json:"id"`
	Location    Location  `json:"location"`
	Speed       int       `json:"speed"`
	Destination *Location `json:"destination,omitempty"`
	Status      string    `json:"status"`
}

func NewDriver(id string, location Location, speed int) (*Driver, error) {
	if id == "" {
		return nil, fmt.Errorf("driver id must not be empty")
	}
	if speed <= 0 {
		return nil, fmt.Errorf("driver %s: speed must be positive, got %d", id, speed)
	}
	return &Driver{
		ID:       id,
		Location: location,
		Speed:    speed,
		Status:   DriverIdle,
	}, nil
}

func (d *Driver) IsIdle() bool {
	return d.Status == DriverIdle
}

// TravelTime returns the time to reach destination at the driver's speed,
// rounded to the nearest integer.
func (d *Driver) TravelTime(destination Location) int64 {
	return int64(math.Round(float64(Distance(d.Location, destination)) / float64(d.Speed)))
}

// StartDrive starts driving towards location and returns the travel time.
func (d *Driver) StartDrive(location Location) int64 {
	dest := location
	d.Status = DriverBusy
	d.Destination = &dest
	return d.TravelTime(location)
}

// StartRide starts carrying rider towards the rider's destination and
// returns the ride time.
func (d *Driver) StartRide(rider *Rider) int64 {
	dest := rider.Destination
	d.Status = DriverBusy
	d.Destination = &dest
	return d.TravelTime(rider.Destination)
}

// EndDrive arrives at the destination and returns the driver to Idle.
// Calling EndDrive with no destination set means the event logic is broken,
// so it panics rather than returning an error.
func (d *Driver) EndDrive() {
	if d.Destination == nil {
		panic(fmt.Sprintf("driver %s: EndDrive with no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Status = DriverIdle
}

// EndRide arrives at the rider's destination and returns the driver to Idle.
func (d *Driver) EndRide() {
	if d.Destination == nil {
		panic(fmt.Sprintf("driver %s: EndRide with no destination", d.ID))
	}
	d.Location = *d.Destination
	d.Destination = nil
	d.Status = DriverIdle
}

func (d *Driver) String() string {
	return d.ID
}
