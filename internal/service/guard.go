package service

import (
	"context"
	"errors"

	"github.com/katsuchip/functions/internal/model"
)

// requireAdmin пропускает только аутентифицированного пользователя с ролью admin.
// Роль всегда читается из хранилища, а не из токена.
func (s *Service) requireAdmin(ctx context.Context, caller *model.TokenInfo, action string) *model.APIError {
	if caller == nil || caller.UID == "" {
		return model.NewUnauthenticatedAction(action)
	}

	user, err := s.storage.GetUser(ctx, caller.UID)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			s.lg.Errorf("role lookup for %s failed: %v", caller.UID, err)
		}
		return model.NewAdminOnly(action)
	}

	if user.Role != model.RoleAdmin {
		return model.NewAdminOnly(action)
	}

	return nil
}
