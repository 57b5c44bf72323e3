package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katsuchip/functions/internal/model"
)

const settlementBody = `{"order_id":"A1","status_code":"200","gross_amount":"10000","transaction_status":"settlement"}`

func TestController_PaymentWebhook_Settlement(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		HandlePaymentNotification(gomock.Any(), model.PaymentNotification{
			OrderID:           "A1",
			StatusCode:        "200",
			GrossAmount:       "10000",
			TransactionStatus: "settlement",
		}).
		Return(&model.WebhookResponse{
			Success:       true,
			Message:       model.WebhookProcessedMessage,
			OrderID:       "A1",
			OrderStatus:   model.OrderStatusWaiting,
			PaymentStatus: model.PaymentStatusPaid,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/midtrans/webhook", strings.NewReader(settlementBody))
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, true, got["success"])
	assert.Equal(t, "menunggu", got["order_status"])
	assert.Equal(t, "paid", got["payment_status"])
}

func TestController_PaymentWebhook_NotFoundAcknowledged(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		HandlePaymentNotification(gomock.Any(), gomock.Any()).
		Return(&model.WebhookResponse{Message: model.WebhookNotFoundMessage, OrderID: "ZZ"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/midtrans/webhook",
		strings.NewReader(`{"order_id":"ZZ","status_code":"200","gross_amount":"1"}`))
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found but acknowledged")
}

func TestController_PaymentWebhook_Options(t *testing.T) {
	controller, mockSvc := newTestController(t)
	mockSvc.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodOptions, "/midtrans/webhook", nil)
	req.Header.Set("Origin", "https://app.midtrans.com")
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.midtrans.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestController_PaymentWebhook_MethodNotAllowed(t *testing.T) {
	controller, mockSvc := newTestController(t)
	mockSvc.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).Times(0)

	w := httptest.NewRecorder()
	controller.PaymentWebhook(w, httptest.NewRequest(http.MethodGet, "/midtrans/webhook", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestController_PaymentWebhook_MalformedJSON(t *testing.T) {
	controller, mockSvc := newTestController(t)
	mockSvc.EXPECT().HandlePaymentNotification(gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/midtrans/webhook", strings.NewReader(`{"order_id":`))
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON payload")
}

func TestController_PaymentWebhook_MissingFields(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		HandlePaymentNotification(gomock.Any(), gomock.Any()).
		Return(nil, model.NewInvalidArgument(model.ErrNotificationFieldsMessage))

	req := httptest.NewRequest(http.MethodPost, "/midtrans/webhook", strings.NewReader(`{"order_id":"A1"}`))
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var got model.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(t, got.Success)
	assert.Equal(t, model.ErrNotificationFieldsMessage, got.Message)
	assert.Equal(t, "A1", got.OrderID)
}

func TestController_PaymentWebhook_StrictSignatureRejected(t *testing.T) {
	controller, mockSvc := newTestController(t)

	mockSvc.EXPECT().
		HandlePaymentNotification(gomock.Any(), gomock.Any()).
		Return(nil, model.NewPermissionDenied(model.ErrInvalidSignatureMessage))

	req := httptest.NewRequest(http.MethodPost, "/midtrans/webhook", strings.NewReader(settlementBody))
	w := httptest.NewRecorder()

	controller.PaymentWebhook(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
