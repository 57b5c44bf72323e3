package service

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/katsuchip/functions/internal/model"
)

// mapTransactionStatus переводит статус транзакции Midtrans в статусы заказа.
// Неизвестный статус трактуется как pending.
func mapTransactionStatus(transactionStatus, fraudStatus string) (model.OrderStatus, model.PaymentStatus) {
	switch transactionStatus {
	case model.TransactionCapture:
		if fraudStatus == model.FraudAccept {
			return model.OrderStatusWaiting, model.PaymentStatusPaid
		}
		return model.OrderStatusPending, model.PaymentStatusUnpaid
	case model.TransactionSettlement:
		return model.OrderStatusWaiting, model.PaymentStatusPaid
	case model.TransactionDeny, model.TransactionCancel, model.TransactionExpire:
		return model.OrderStatusCancelled, model.PaymentStatusFailed
	default:
		return model.OrderStatusPending, model.PaymentStatusUnpaid
	}
}

// signatureKey - hex(SHA-512(order_id + status_code + gross_amount + server_key))
func signatureKey(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func (s *Service) verifySignature(n model.PaymentNotification) bool {
	expected := signatureKey(n.OrderID, n.StatusCode, n.GrossAmount, s.opts.ServerKey)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) == 1
}

// HandlePaymentNotification обрабатывает уведомление Midtrans.
// Ошибку возвращает только для невалидного тела и, в strict режиме, неверной подписи.
// Всё остальное подтверждается ответом с success=false, чтобы шлюз не повторял доставку.
func (s *Service) HandlePaymentNotification(ctx context.Context, n model.PaymentNotification) (*model.WebhookResponse, *model.APIError) {
	if apiErr := validateNotification(n); apiErr != nil {
		return nil, apiErr
	}

	if !s.verifySignature(n) {
		if s.opts.StrictSignature {
			s.lg.Warnw("invalid signature, notification rejected", "order_id", n.OrderID)
			return nil, model.NewPermissionDenied(model.ErrInvalidSignatureMessage)
		}
		s.lg.Warnw("invalid signature, processing anyway", "order_id", n.OrderID)
	}

	status, payment := mapTransactionStatus(n.TransactionStatus, n.FraudStatus)

	s.lg.Infow("payment notification",
		"order_id", n.OrderID,
		"transaction_status", n.TransactionStatus,
		"fraud_status", n.FraudStatus,
		"order_status", status,
		"payment_status", payment,
	)

	if s.isRecorded(ctx, n) {
		return duplicateResponse(n.OrderID, status, payment), nil
	}

	order, err := s.storage.FindOrder(ctx, n.OrderID)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			s.lg.Warnw("order not found", "order_id", n.OrderID)
			return &model.WebhookResponse{
				Success: false,
				Message: model.WebhookNotFoundMessage,
				OrderID: n.OrderID,
			}, nil
		}
		s.lg.Errorw("order lookup failed", "order_id", n.OrderID, "error", err)
		return errorResponse(err), nil
	}

	if sameNotification(order.Notification, n) {
		return duplicateResponse(n.OrderID, status, payment), nil
	}

	// paid не откатывается в unpaid, уведомление при этом сохраняется
	if order.PaymentStatus == model.PaymentStatusPaid && payment == model.PaymentStatusUnpaid {
		s.lg.Warnw("payment downgrade ignored",
			"order_id", n.OrderID,
			"transaction_status", n.TransactionStatus,
		)
		status, payment = order.Status, order.PaymentStatus
	}

	update := model.PaymentUpdate{
		Status:        status,
		PaymentStatus: payment,
		MarkPaid:      payment == model.PaymentStatusPaid && order.PaymentStatus != model.PaymentStatusPaid,
		Notification:  n.Stored(),
	}

	if err := s.storage.UpdateOrderPayment(ctx, order, update); err != nil {
		s.lg.Errorw("order update failed", "order_id", n.OrderID, "error", err)
		return errorResponse(err), nil
	}

	if n.TransactionID != "" {
		if err := s.ledger.RecordNotification(ctx, n); err != nil {
			s.lg.Errorw("ledger record failed", "order_id", n.OrderID, "error", err)
		}
	}

	event := model.PaymentEvent{
		ID:            uuid.NewString(),
		OrderID:       n.OrderID,
		OrderStatus:   status,
		PaymentStatus: payment,
		TransactionID: n.TransactionID,
		GrossAmount:   normalizeAmount(n.GrossAmount),
		OccurredAt:    s.now().UTC(),
	}
	if err := s.events.PublishPaymentUpdated(ctx, event); err != nil {
		s.lg.Errorw("publish payment event failed", "order_id", n.OrderID, "error", err)
	}

	s.lg.Infow("order payment updated",
		"order_id", n.OrderID,
		"collection", order.Collection,
		"order_status", status,
		"payment_status", payment,
	)

	return &model.WebhookResponse{
		Success:       true,
		Message:       model.WebhookProcessedMessage,
		OrderID:       n.OrderID,
		OrderStatus:   status,
		PaymentStatus: payment,
	}, nil
}

// isRecorded сверяется с журналом. Ошибка журнала не мешает обработке.
func (s *Service) isRecorded(ctx context.Context, n model.PaymentNotification) bool {
	if n.TransactionID == "" {
		return false
	}

	processed, err := s.ledger.IsNotificationProcessed(ctx, n.TransactionID, n.TransactionStatus)
	if err != nil {
		s.lg.Errorw("ledger lookup failed", "order_id", n.OrderID, "error", err)
		return false
	}

	return processed
}

func sameNotification(stored *model.StoredNotification, n model.PaymentNotification) bool {
	return stored != nil &&
		n.TransactionID != "" &&
		stored.TransactionID == n.TransactionID &&
		stored.TransactionStatus == n.TransactionStatus
}

func normalizeAmount(amount string) string {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return amount
	}

	return d.StringFixed(2)
}

func duplicateResponse(orderID string, status model.OrderStatus, payment model.PaymentStatus) *model.WebhookResponse {
	return &model.WebhookResponse{
		Success:       true,
		Message:       model.WebhookDuplicateMessage,
		OrderID:       orderID,
		OrderStatus:   status,
		PaymentStatus: payment,
	}
}

func errorResponse(err error) *model.WebhookResponse {
	return &model.WebhookResponse{
		Success: false,
		Message: model.WebhookErrorMessage,
		Error:   err.Error(),
	}
}
