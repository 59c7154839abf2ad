package domain

// UnknownCourierCode is used when the upstream shipment carries no supplier.
const UnknownCourierCode = "UNKNOWN"

// Order is the slice of an upstream order this service needs: its identity
// and the shipment join keys. Values are never mutated after construction.
type Order struct {
	ID             string
	TrackingNumber string
	CourierCode    string
}
