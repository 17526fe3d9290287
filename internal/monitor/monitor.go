// Package monitor records the activity notifications produced while events
// are applied, streams them to an output sink and aggregates them into a
// report once the simulation has drained.
package monitor

import (
	"encoding/json"

	"github.com/chrisdamba/ridehailsim/internal/models"
	"github.com/chrisdamba/ridehailsim/internal/output"
	"github.com/sirupsen/logrus"
)

const (
	TopicRiderActivity  = "rider_activity_events"
	TopicDriverActivity = "driver_activity_events"
)

// ActivityMonitor is an append-only observation log. Notify never fails:
// sink errors are logged and the in-memory record is kept regardless, so a
// broken sink cannot alter the simulation.
type ActivityMonitor struct {
	records []models.ActivityRecord
	out     output.Destination
	log     *logrus.Entry
}

// NewActivityMonitor creates a monitor streaming to out. A nil destination
// keeps records in memory only.
func NewActivityMonitor(out output.Destination) *ActivityMonitor {
	return &ActivityMonitor{
		out: out,
		log: logrus.WithField("component", "monitor"),
	}
}

func (m *ActivityMonitor) Notify(timestamp int64, category, action, id string, location models.Location) {
	record := models.ActivityRecord{
		Timestamp: timestamp,
		Category:  category,
		Action:    action,
		ID:        id,
		Row:       int64(location.Row),
		Col:       int64(location.Col),
	}
	m.records = append(m.records, record)

	if m.out == nil {
		return
	}
	msg, err := json.Marshal(record)
	if err != nil {
		m.log.WithError(err).Warn("failed to serialize activity record")
		return
	}
	topic := TopicDriverActivity
	if category == models.CategoryRider {
		topic = TopicRiderActivity
	}
	if err := m.out.WriteMessage(topic, msg); err != nil {
		m.log.WithError(err).WithField("topic", topic).Warn("failed to write activity record")
	}
}

// Records returns a copy of the observation log in notification order.
func (m *ActivityMonitor) Records() []models.ActivityRecord {
	records := make([]models.ActivityRecord, len(m.records))
	copy(records, m.records)
	return records
}

// Len returns the number of recorded notifications.
func (m *ActivityMonitor) Len() int {
	return len(m.records)
}
