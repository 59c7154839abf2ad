package provider

import (
	"context"
)

// OrderClient is the outbound port of the order-management service.
type OrderClient interface {
	GetOne(ctx context.Context, orderID, customerID string) (OrderResponse, error)
}

// NotificationClient is the outbound port of the notification service.
type NotificationClient interface {
	GetEmailNotificationHistory(ctx context.Context, trackingNumber, courierCode string) ([]NotificationRecord, error)
}

// OrderResponse is one of *ExternalOrder, *ErrorResponse or *UnknownResponse.
type OrderResponse interface {
	orderResponse()
}

// ExternalOrder is a successfully decoded order payload.
type ExternalOrder struct {
	ID       string         `json:"id"`
	Shipment *OrderShipment `json:"order_shipment"`
}

// OrderShipment is the shipment block of an order. Supplier is nil when the
// upstream sent null or omitted it.
type OrderShipment struct {
	ForeignShipmentID string  `json:"foreign_shipment_id"`
	Supplier          *string `json:"supplier"`
}

// ErrorResponse is a client-side rejection reported by the upstream.
type ErrorResponse struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

// UnknownResponse is a successful reply whose payload shape is not recognised.
type UnknownResponse struct {
	StatusCode int
	Body       string
}

func (*ExternalOrder) orderResponse()   {}
func (*ErrorResponse) orderResponse()   {}
func (*UnknownResponse) orderResponse() {}

// NotificationRecord is one history entry as sent by the notification service.
type NotificationRecord struct {
	TemplateName     string `json:"templateName"`
	NotificationDate string `json:"notificationDate"`
	OrderStatus      string `json:"orderStatus"`
	Count            int    `json:"count"`
}
