package monitor

import "github.com/chrisdamba/ridehailsim/internal/models"

// Report aggregates the activity log once a run has drained.
type Report struct {
	// RiderWaitTimeAvg is the mean time between a rider's first request and
	// their pickup, over riders who were picked up.
	RiderWaitTimeAvg float64 `json:"rider_wait_time_avg"`
	// DriverTotalDistanceAvg is the mean distance covered per driver,
	// summed over the consecutive locations the driver was observed at.
	DriverTotalDistanceAvg float64 `json:"driver_total_distance_avg"`
	// RideDistanceAvg is the mean pickup-to-dropoff distance over completed
	// rides.
	RideDistanceAvg float64 `json:"ride_distance_avg"`
	Riders          int     `json:"riders"`
	Drivers         int     `json:"drivers"`
	Rides           int     `json:"rides"`
}

// Report computes aggregate statistics from the recorded notifications.
func (m *ActivityMonitor) Report() Report {
	requestAt := make(map[string]int64)
	waitTimes := make([]int64, 0)
	driverTrail := make(map[string][]models.ActivityRecord)
	riders := make(map[string]struct{})

	for _, rec := range m.records {
		switch rec.Category {
		case models.CategoryRider:
			riders[rec.ID] = struct{}{}
			switch rec.Action {
			case models.ActionRequest:
				if _, ok := requestAt[rec.ID]; !ok {
					requestAt[rec.ID] = rec.Timestamp
				}
			case models.ActionPickup:
				if start, ok := requestAt[rec.ID]; ok {
					waitTimes = append(waitTimes, rec.Timestamp-start)
					delete(requestAt, rec.ID)
				}
			}
		case models.CategoryDriver:
			driverTrail[rec.ID] = append(driverTrail[rec.ID], rec)
		}
	}

	var report Report
	report.Riders = len(riders)
	report.Drivers = len(driverTrail)

	var waitTotal int64
	for _, w := range waitTimes {
		waitTotal += w
	}
	if len(waitTimes) > 0 {
		report.RiderWaitTimeAvg = float64(waitTotal) / float64(len(waitTimes))
	}

	var distanceTotal, rideTotal, rides int
	for _, trail := range driverTrail {
		for i := 1; i < len(trail); i++ {
			distanceTotal += models.Distance(trail[i-1].Location(), trail[i].Location())
			if trail[i-1].Action == models.ActionPickup && trail[i].Action == models.ActionDropoff {
				rideTotal += models.Distance(trail[i-1].Location(), trail[i].Location())
				rides++
			}
		}
	}
	if len(driverTrail) > 0 {
		report.DriverTotalDistanceAvg = float64(distanceTotal) / float64(len(driverTrail))
	}
	if rides > 0 {
		report.RideDistanceAvg = float64(rideTotal) / float64(rides)
	}
	report.Rides = rides

	return report
}
