package service

import (
	"strings"

	"github.com/katsuchip/functions/internal/model"
)

func validateInvitationDTO(input model.InvitationDTO) *model.APIError {
	if isBlank(input.Email) || isBlank(input.Name) || isBlank(input.InvitationToken) {
		return model.NewInvalidArgument(model.ErrInvitationFieldsMessage)
	}

	return nil
}

func validateCleanupDays(days int) *model.APIError {
	if days < 0 {
		return model.NewInvalidArgument(model.ErrInvalidDaysMessage)
	}

	return nil
}

func validateConfirmToken(token string) *model.APIError {
	if token != model.DeleteAllConfirmToken {
		return model.NewInvalidArgument(model.ErrInvalidConfirmTokenMessage)
	}

	return nil
}

// validateNotification проверяет поля, без которых нельзя посчитать подпись.
func validateNotification(n model.PaymentNotification) *model.APIError {
	if n.OrderID == "" || n.StatusCode == "" || n.GrossAmount == "" {
		return model.NewInvalidArgument(model.ErrNotificationFieldsMessage)
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
