package model

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorStatus - машинно-читаемый статус ошибки для вызывающей стороны
type ErrorStatus string

const (
	StatusUnauthenticated  ErrorStatus = "unauthenticated"
	StatusPermissionDenied ErrorStatus = "permission-denied"
	StatusInvalidArgument  ErrorStatus = "invalid-argument"
	StatusInternal         ErrorStatus = "internal"
)

type APIError struct {
	Code    int         `json:"code"`
	Status  ErrorStatus `json:"status"`
	Message string      `json:"message"`
}

func (e *APIError) Error() string {
	return string(e.Status) + ": " + e.Message
}

const (
	ErrInternalServerMessage      = "internal server error"
	ErrUnauthenticatedFormat      = "User must be authenticated to %s."
	ErrAdminOnlyFormat            = "Only admins can %s."
	ErrInvitationFieldsMessage    = "Missing required fields: email, name, or invitationToken."
	ErrInvalidConfirmTokenMessage = "Invalid confirmation token."
	ErrInvalidDaysMessage         = "days must be a positive number."
	ErrNotificationFieldsMessage  = "Missing required fields: order_id, status_code, gross_amount."
	ErrInvalidSignatureMessage    = "Invalid signature."
)

// Действия, которые требуют роли admin
const (
	ActionSendInvitation = "send invitation emails"
	ActionCleanupOrders  = "cleanup orders"
	ActionDeleteOrders   = "delete all orders"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")
)

func NewUnauthenticated(message string) *APIError {
	return &APIError{Code: http.StatusUnauthorized, Status: StatusUnauthenticated, Message: message}
}

func NewUnauthenticatedAction(action string) *APIError {
	return NewUnauthenticated(fmt.Sprintf(ErrUnauthenticatedFormat, action))
}

func NewAdminOnly(action string) *APIError {
	return NewPermissionDenied(fmt.Sprintf(ErrAdminOnlyFormat, action))
}

func NewPermissionDenied(message string) *APIError {
	return &APIError{Code: http.StatusForbidden, Status: StatusPermissionDenied, Message: message}
}

func NewInvalidArgument(message string) *APIError {
	return &APIError{Code: http.StatusBadRequest, Status: StatusInvalidArgument, Message: message}
}

func NewInternal(message string) *APIError {
	return &APIError{Code: http.StatusInternalServerError, Status: StatusInternal, Message: message}
}
