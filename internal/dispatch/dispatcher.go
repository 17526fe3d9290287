// Package dispatch provides the matching policy that pairs waiting riders
// with idle drivers.
package dispatch

import (
	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/sirupsen/logrus"
)

// FIFODispatcher matches both sides first-come-first-served: the rider who
// has waited longest gets the driver who has been idle longest. The policy
// uses no randomness, so runs over the same script are reproducible.
type FIFODispatcher struct {
	waiting []*models.Rider
	idle    []*models.Driver
	drivers map[string]*models.Driver
	log     *logrus.Entry
}

func NewFIFODispatcher() *FIFODispatcher {
	return &FIFODispatcher{
		drivers: make(map[string]*models.Driver),
		log:     logrus.WithField("component", "dispatcher"),
	}
}

// RequestDriver returns the longest-idle driver for the rider, removing it
// from the idle pool. With no idle driver the rider joins the waiting list
// and nil is returned.
func (d *FIFODispatcher) RequestDriver(rider *models.Rider) *models.Driver {
	if len(d.idle) > 0 {
		driver := d.idle[0]
		d.idle = d.idle[1:]
		d.log.WithFields(logrus.Fields{
			"rider":  rider.ID,
			"driver": driver.ID,
		}).Debug("matched rider with idle driver")
		return driver
	}

	for _, waiting := range d.waiting {
		if waiting.ID == rider.ID {
			return nil
		}
	}
	d.waiting = append(d.waiting, rider)
	return nil
}

// RequestRider returns the longest-waiting rider for the driver, removing
// it from the waiting list. With no waiting rider the driver is registered
// as idle and nil is returned.
func (d *FIFODispatcher) RequestRider(driver *models.Driver) *models.Rider {
	d.drivers[driver.ID] = driver

	if len(d.waiting) > 0 {
		rider := d.waiting[0]
		d.waiting = d.waiting[1:]
		d.log.WithFields(logrus.Fields{
			"rider":  rider.ID,
			"driver": driver.ID,
		}).Debug("matched driver with waiting rider")
		return rider
	}

	for _, idle := range d.idle {
		if idle.ID == driver.ID {
			return nil
		}
	}
	d.idle = append(d.idle, driver)
	return nil
}

// CancelRide removes the rider from the waiting list. Cancelling a rider
// that is not waiting is a no-op.
func (d *FIFODispatcher) CancelRide(rider *models.Rider) {
	for i, waiting := range d.waiting {
		if waiting.ID == rider.ID {
			d.waiting = append(d.waiting[:i], d.waiting[i+1:]...)
			return
		}
	}
}

// WaitingRiders returns the number of riders currently waiting for a match.
func (d *FIFODispatcher) WaitingRiders() int {
	return len(d.waiting)
}

// IdleDrivers returns the number of drivers currently available for a match.
func (d *FIFODispatcher) IdleDrivers() int {
	return len(d.idle)
}
