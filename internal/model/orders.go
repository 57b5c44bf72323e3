package model

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusWaiting   OrderStatus = "menunggu"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusCompleted OrderStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusFailed PaymentStatus = "failed"
)

const (
	DefaultCleanupDays    = 60
	DeleteAllConfirmToken = "DELETE_ALL_ORDERS_CONFIRM"

	cutoffDateLayout = time.RFC3339
)

type Order struct {
	ID             string              `bson:"_id" json:"id"`
	Status         OrderStatus         `bson:"status,omitempty" json:"status"`
	DeliveryStatus OrderStatus         `bson:"deliveryStatus,omitempty" json:"deliveryStatus"`
	PaymentStatus  PaymentStatus       `bson:"paymentStatus,omitempty" json:"paymentStatus"`
	CompletedAt    *time.Time          `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	PaidAt         *time.Time          `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	UpdatedAt      *time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
	Notification   *StoredNotification `bson:"midtransNotification,omitempty" json:"midtransNotification,omitempty"`

	// Collection - коллекция, в которой найден заказ (основная или legacy)
	Collection string `bson:"-" json:"-"`
}

type CleanupDTO struct {
	Days int `json:"days"`
}

type CleanupResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
	CutoffDate   string `json:"cutoffDate"`
}

type DeleteAllDTO struct {
	ConfirmToken string `json:"confirmToken"`
}

type DeleteAllResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

func FormatCutoffDate(t time.Time) string {
	return t.UTC().Format(cutoffDateLayout)
}
