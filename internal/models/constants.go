package models

const (
	RiderWaiting   = "waiting"
	RiderSatisfied = "satisfied"
	RiderCancelled = "cancelled"

	DriverIdle = "idle"
	DriverBusy = "busy"

	CategoryRider  = "rider"
	CategoryDriver = "driver"

	ActionRequest = "request"
	ActionCancel  = "cancel"
	ActionPickup  = "pickup"
	ActionDropoff = "dropoff"

	EventRiderRequest  = "RiderRequest"
	EventDriverRequest = "DriverRequest"
	EventCancellation  = "Cancellation"
	EventPickup        = "Pickup"
	EventDropoff       = "Dropoff"
)
