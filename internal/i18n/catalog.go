package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

type entry struct {
	key     string
	english string
	polish  string
}

var entries = []entry{
	{
		key:     "notification.user.not_authenticated",
		english: "User is not authenticated.",
		polish:  "Użytkownik nie jest uwierzytelniony.",
	},
	{
		key:     "notification.order.error.access_denied",
		english: "Access to this order is denied.",
		polish:  "Brak dostępu do tego zamówienia.",
	},
	{
		key:     "notification.order.error.not_found",
		english: "Order not found.",
		polish:  "Nie znaleziono zamówienia.",
	},
	{
		key:     "notification.order.error.provider",
		english: "Order service is temporarily unavailable.",
		polish:  "Serwis zamówień jest chwilowo niedostępny.",
	},
	{
		key:     "notification.order.error.invalid_data",
		english: "Order data received from the order service is invalid.",
		polish:  "Dane zamówienia otrzymane z serwisu zamówień są nieprawidłowe.",
	},
	{
		key:     "notification.order.error.invalid_shipment",
		english: "Order has no valid shipment.",
		polish:  "Zamówienie nie ma prawidłowej przesyłki.",
	},
	{
		key:     "notification.auth.error.session_store",
		english: "Authentication service is temporarily unavailable.",
		polish:  "Serwis uwierzytelniania jest chwilowo niedostępny.",
	},
	{
		key:     "notification.error.internal",
		english: "An unexpected error occurred.",
		polish:  "Wystąpił nieoczekiwany błąd.",
	},
	{
		key:     "notification.error.route_not_found",
		english: "Resource not found.",
		polish:  "Nie znaleziono zasobu.",
	},
	{
		key:     "notification.error.bad_request",
		english: "The request could not be processed.",
		polish:  "Nie można przetworzyć żądania.",
	},
}

// newCatalog registers every entry in English and Polish.
func newCatalog() (*catalog.Builder, error) {
	builder := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, e := range entries {
		if err := builder.SetString(language.English, e.key, e.english); err != nil {
			return nil, fmt.Errorf("register %s (en): %w", e.key, err)
		}
		if err := builder.SetString(language.Polish, e.key, e.polish); err != nil {
			return nil, fmt.Errorf("register %s (pl): %w", e.key, err)
		}
	}
	return builder, nil
}
