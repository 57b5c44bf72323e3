package service

import (
	"context"
	"fmt"

	"github.com/katsuchip/functions/internal/model"
)

const (
	noOldOrdersMessage  = "No old orders to delete"
	noOrdersMessage     = "No orders to delete"
	cleanupDoneFormat   = "Successfully deleted %d orders older than %d days"
	deleteAllDoneFormat = "Successfully deleted %d orders"
)

func (s *Service) CleanupOrders(ctx context.Context, caller *model.TokenInfo, input model.CleanupDTO) (*model.CleanupResult, *model.APIError) {
	if apiErr := s.requireAdmin(ctx, caller, model.ActionCleanupOrders); apiErr != nil {
		return nil, apiErr
	}

	if apiErr := validateCleanupDays(input.Days); apiErr != nil {
		return nil, apiErr
	}

	days := input.Days
	if days == 0 {
		days = s.opts.CleanupDays
	}

	result, err := s.cleanupCompletedOrders(ctx, days)
	if err != nil {
		s.lg.Errorf("error cleaning up orders: %v", err)
		return nil, model.NewInternal(model.ErrInternalServerMessage)
	}

	return result, nil
}

// RunScheduledCleanup вызывается планировщиком, проверки роли нет.
func (s *Service) RunScheduledCleanup(ctx context.Context) (*model.CleanupResult, error) {
	result, err := s.cleanupCompletedOrders(ctx, s.opts.CleanupDays)
	if err != nil {
		return nil, err
	}

	s.lg.Infow("scheduled cleanup finished",
		"deleted", result.DeletedCount,
		"cutoff", result.CutoffDate,
	)

	return result, nil
}

func (s *Service) cleanupCompletedOrders(ctx context.Context, days int) (*model.CleanupResult, error) {
	cutoff := s.now().AddDate(0, 0, -days)
	cutoffDate := model.FormatCutoffDate(cutoff)

	ids, err := s.storage.FindCompletedOrdersBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("find completed orders: %w", err)
	}

	if len(ids) == 0 {
		return &model.CleanupResult{
			Success:    true,
			Message:    noOldOrdersMessage,
			CutoffDate: cutoffDate,
		}, nil
	}

	deleted, err := s.storage.DeleteOrders(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("deleted %d of %d orders: %w", deleted, len(ids), err)
	}

	return &model.CleanupResult{
		Success:      true,
		Message:      fmt.Sprintf(cleanupDoneFormat, deleted, days),
		DeletedCount: deleted,
		CutoffDate:   cutoffDate,
	}, nil
}

func (s *Service) DeleteAllOrders(ctx context.Context, caller *model.TokenInfo, input model.DeleteAllDTO) (*model.DeleteAllResult, *model.APIError) {
	if apiErr := s.requireAdmin(ctx, caller, model.ActionDeleteOrders); apiErr != nil {
		return nil, apiErr
	}

	if apiErr := validateConfirmToken(input.ConfirmToken); apiErr != nil {
		return nil, apiErr
	}

	ids, err := s.storage.FindAllOrderIDs(ctx)
	if err != nil {
		s.lg.Errorf("error listing orders: %v", err)
		return nil, model.NewInternal(model.ErrInternalServerMessage)
	}

	if len(ids) == 0 {
		return &model.DeleteAllResult{Success: true, Message: noOrdersMessage}, nil
	}

	deleted, err := s.storage.DeleteOrders(ctx, ids)
	if err != nil {
		s.lg.Errorf("error deleting orders, deleted %d of %d: %v", deleted, len(ids), err)
		return nil, model.NewInternal(model.ErrInternalServerMessage)
	}

	s.lg.Warnf("all orders deleted by %s, count %d", caller.UID, deleted)

	return &model.DeleteAllResult{
		Success:      true,
		Message:      fmt.Sprintf(deleteAllDoneFormat, deleted),
		DeletedCount: deleted,
	}, nil
}
