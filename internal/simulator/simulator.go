// Package simulator drives the discrete-event loop: a single thread drains
// the event queue in timestamp order, applying each event against the
// dispatcher and monitor and scheduling the events it produces.
package simulator

import (
	"fmt"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

type Simulator struct {
	Config     *models.Config
	Dispatcher models.Dispatcher
	Monitor    models.Monitor
	Queue      *models.EventQueue

	// Clock is the timestamp of the last applied event. It only moves
	// forward; virtual time has no relation to the wall clock.
	Clock         int64
	EventsApplied int
	EventsDropped int

	log *logrus.Entry
}

func NewSimulator(config *models.Config, dispatcher models.Dispatcher, monitor models.Monitor) *Simulator {
	return &Simulator{
		Config:     config,
		Dispatcher: dispatcher,
		Monitor:    monitor,
		Queue:      models.NewEventQueue(),
		log:        logrus.WithField("component", "simulator"),
	}
}

// Schedule pushes seed events into the queue.
func (s *Simulator) Schedule(events ...models.Event) {
	for _, event := range events {
		s.Queue.Enqueue(event)
	}
}

// Run drains the queue until it is empty or, in halt mode, until an event
// past the horizon is reached. It returns an error only on a causality
// violation, which indicates broken event logic rather than bad input.
func (s *Simulator) Run() error {
	var bar *progressbar.ProgressBar
	if s.Config.Horizon > 0 {
		bar = progressbar.Default(s.Config.Horizon, "virtual time")
	}

	for {
		event := s.Queue.Dequeue()
		if event == nil {
			break
		}

		if s.Config.Horizon > 0 && event.Timestamp() > s.Config.Horizon {
			if s.Config.HorizonMode == models.HorizonModeHalt {
				s.log.WithField("timestamp", event.Timestamp()).
					Info("event past horizon, halting run")
				break
			}
			s.EventsDropped++
			continue
		}

		if event.Timestamp() < s.Clock {
			return fmt.Errorf("event %q is scheduled before current time %d", event, s.Clock)
		}
		s.Clock = event.Timestamp()
		if bar != nil {
			_ = bar.Set64(minInt64(s.Clock, s.Config.Horizon))
		}

		for _, produced := range event.Apply(s.Dispatcher, s.Monitor) {
			if produced.Timestamp() < event.Timestamp() {
				return fmt.Errorf("event %q produced %q in its past", event, produced)
			}
			s.Queue.Enqueue(produced)
		}

		s.EventsApplied++
		s.showProgress()
	}

	if bar != nil {
		_ = bar.Finish()
	}
	s.log.WithFields(logrus.Fields{
		"clock":   s.Clock,
		"applied": s.EventsApplied,
		"dropped": s.EventsDropped,
	}).Info("simulation completed")
	return nil
}

func (s *Simulator) showProgress() {
	if s.EventsApplied%1000 == 0 {
		s.log.WithFields(logrus.Fields{
			"clock":   s.Clock,
			"applied": s.EventsApplied,
		}).Debug("simulation progress")
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
