package domain

// NotificationEvent is one email notification sent for an order.
type NotificationEvent struct {
	TemplateName string
	SentAt       string
	OrderStatus  string
	Count        int
}

// NotificationSummary aggregates the notification history of an order.
// TotalNotifications always equals the sum of History[i].Count.
type NotificationSummary struct {
	TotalNotifications int
	History            []NotificationEvent
}

// NewNotificationSummary keeps the events in the given order and sums
// their counts. Negative counts are clamped to zero.
func NewNotificationSummary(events []NotificationEvent) NotificationSummary {
	history := make([]NotificationEvent, 0, len(events))
	total := 0
	for _, event := range events {
		if event.Count < 0 {
			event.Count = 0
		}
		history = append(history, event)
		total += event.Count
	}

	return NotificationSummary{
		TotalNotifications: total,
		History:            history,
	}
}

func EmptyNotificationSummary() NotificationSummary {
	return NewNotificationSummary(nil)
}
