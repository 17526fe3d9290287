package models

import "fmt"

// Rider is a customer waiting for a trip from Origin to Destination.
// Patience is the number of time units the rider waits before giving up.
// Satisfied is terminal: a completed ride can never be cancelled afterwards.
type Rider struct {
	ID          string   `json:"id"`
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	Patience    int64    `json:"patience"`
	Status      string   `json:"status"`
}

func NewRider(id string, origin, destination Location, patience int64) (*Rider, error) {
	if id == "" {
		return nil, fmt.Errorf("rider id must not be empty")
	}
	if patience <= 0 {
		return nil, fmt.Errorf("rider %s: patience must be positive, got %d", id, patience)
	}
	return &Rider{
		ID:          id,
		Origin:      origin,
		Destination: destination,
		Patience:    patience,
		Status:      RiderWaiting,
	}, nil
}

func (r *Rider) String() string {
	return r.ID
}
