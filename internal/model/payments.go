package model

import "time"

// Статусы транзакции Midtrans
const (
	TransactionCapture    = "capture"
	TransactionSettlement = "settlement"
	TransactionPending    = "pending"
	TransactionDeny       = "deny"
	TransactionCancel     = "cancel"
	TransactionExpire     = "expire"

	FraudAccept = "accept"
)

// PaymentNotification - тело уведомления платёжного шлюза
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	TransactionID     string `json:"transaction_id"`
}

// StoredNotification - последнее уведомление, сохранённое в документе заказа
type StoredNotification struct {
	TransactionStatus string `bson:"transaction_status"`
	FraudStatus       string `bson:"fraud_status"`
	PaymentType       string `bson:"payment_type"`
	TransactionTime   string `bson:"transaction_time"`
	TransactionID     string `bson:"transaction_id"`
	GrossAmount       string `bson:"gross_amount"`
	StatusCode        string `bson:"status_code"`
	SignatureKey      string `bson:"signature_key"`
}

func (n PaymentNotification) Stored() StoredNotification {
	return StoredNotification{
		TransactionStatus: n.TransactionStatus,
		FraudStatus:       n.FraudStatus,
		PaymentType:       n.PaymentType,
		TransactionTime:   n.TransactionTime,
		TransactionID:     n.TransactionID,
		GrossAmount:       n.GrossAmount,
		StatusCode:        n.StatusCode,
		SignatureKey:      n.SignatureKey,
	}
}

// PaymentUpdate - изменения, применяемые к заказу по уведомлению.
// paidAt и updatedAt проставляет сервер БД.
type PaymentUpdate struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	MarkPaid      bool
	Notification  StoredNotification
}

type WebhookResponse struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message"`
	OrderID       string        `json:"order_id,omitempty"`
	OrderStatus   OrderStatus   `json:"order_status,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
	Error         string        `json:"error,omitempty"`
}

const (
	WebhookProcessedMessage = "Webhook processed successfully"
	WebhookDuplicateMessage = "Duplicate notification ignored"
	WebhookNotFoundMessage  = "Order not found but acknowledged"
	WebhookErrorMessage     = "Error processing webhook but acknowledged"
)

// PaymentEvent - событие об изменении оплаты заказа
type PaymentEvent struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"order_id"`
	OrderStatus   OrderStatus   `json:"order_status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	TransactionID string        `json:"transaction_id"`
	GrossAmount   string        `json:"gross_amount"`
	OccurredAt    time.Time     `json:"occurred_at"`
}
