package http

import (
	"net/http"

	"github.com/katsuchip/functions/internal/model"
)

const (
	methodNotAllowedMessage = "Method not allowed"
	invalidPayloadMessage   = "Invalid JSON payload"
)

// PaymentWebhook принимает уведомления Midtrans. После поиска заказа ответ всегда 200,
// иначе шлюз будет повторять доставку.
func (c *Controller) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w, r)

	// preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(w, model.WebhookResponse{Message: methodNotAllowedMessage}, http.StatusMethodNotAllowed)
		return
	}

	notification, err := readBody[model.PaymentNotification](r)
	if err != nil {
		c.lg.Warnf("invalid webhook payload: %v", err)
		writeJSON(w, model.WebhookResponse{Message: invalidPayloadMessage, Error: err.Error()}, http.StatusBadRequest)
		return
	}

	result, apiErr := c.service.HandlePaymentNotification(r.Context(), notification)
	if apiErr != nil {
		writeJSON(w, model.WebhookResponse{Message: apiErr.Message, OrderID: notification.OrderID}, apiErr.Code)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func setCORSHeaders(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
	} else {
		w.Header().Set("Access-Control-Allow-Origin", "*")
	}
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
}
