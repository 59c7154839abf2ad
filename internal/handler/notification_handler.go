package handler

import (
	"context"
	"fmt"
	"regexp"

	"github.com/gofiber/fiber/v2"
	"github.com/kursadbilgin/notification-info/internal/domain"
)

var orderIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

type NotificationInfoService interface {
	GetByOrder(ctx context.Context, orderID string) (domain.NotificationSummary, error)
}

type NotificationHandler struct {
	service NotificationInfoService
}

func NewNotificationHandler(service NotificationInfoService) (*NotificationHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("notification info service is required")
	}
	return &NotificationHandler{service: service}, nil
}

func RegisterNotificationRoutes(router fiber.Router, service NotificationInfoService) error {
	h, err := NewNotificationHandler(service)
	if err != nil {
		return err
	}

	api := router.Group("/api")
	api.Get("/orders/:orderId/notifications-info", h.GetNotificationsInfo)

	return nil
}

type notificationInfoResponse struct {
	TotalNotifications int                           `json:"totalNotifications"`
	History            []notificationHistoryResponse `json:"history"`
}

type notificationHistoryResponse struct {
	Template   string `json:"template"`
	SentDate   string `json:"sentDate"`
	StatusName string `json:"statusName"`
	Count      int    `json:"count"`
}

func (h *NotificationHandler) GetNotificationsInfo(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	if !orderIDPattern.MatchString(orderID) {
		return fiber.ErrNotFound
	}

	summary, err := h.service.GetByOrder(c.UserContext(), orderID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(toNotificationInfoResponse(summary))
}

func toNotificationInfoResponse(summary domain.NotificationSummary) notificationInfoResponse {
	history := make([]notificationHistoryResponse, 0, len(summary.History))
	for _, event := range summary.History {
		history = append(history, notificationHistoryResponse{
			Template:   event.TemplateName,
			SentDate:   event.SentAt,
			StatusName: event.OrderStatus,
			Count:      event.Count,
		})
	}

	return notificationInfoResponse{
		TotalNotifications: summary.TotalNotifications,
		History:            history,
	}
}
