package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/katsuchip/functions/internal/model"
	"github.com/shopspring/decimal"
)

// IsNotificationProcessed - было ли уже применено уведомление с этой парой transaction_id/статус
func (r *Repository) IsNotificationProcessed(ctx context.Context, transactionID, transactionStatus string) (bool, error) {
	var exists bool

	err := r.executeWithRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM payment_notifications WHERE transaction_id = $1 AND transaction_status = $2)`,
			transactionID,
			transactionStatus,
		).Scan(&exists)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}

	return exists, nil
}

// RecordNotification - сохраняет уведомление; повторная запись той же пары не ошибка
func (r *Repository) RecordNotification(ctx context.Context, n model.PaymentNotification) error {
	var amount decimal.NullDecimal
	if d, err := decimal.NewFromString(n.GrossAmount); err == nil {
		amount = decimal.NewNullDecimal(d)
	}

	err := r.executeWithRetry(ctx, func(ctx context.Context) error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO payment_notifications (transaction_id, transaction_status, order_id, status_code, gross_amount) VALUES ($1, $2, $3, $4, $5)`,
			n.TransactionID,
			n.TransactionStatus,
			n.OrderID,
			n.StatusCode,
			amount,
		)
		return err
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("failed to record notification: %w", err)
	}

	return nil
}

func (r *Repository) executeWithRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn(ctx)
		if err == nil || r.classifier.Classify(err) != Retriable {
			return err
		}

		r.lg.Warnf("retriable postgres error (attempt %d/%d): %v", attempt+1, maxAttempts, err)

		if attempt == maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(getAttemptDelay(attempt)):
		}
	}

	return err
}

// getAttemptDelay - 1s, 3s, затем 5s
func getAttemptDelay(attempt int) time.Duration {
	switch attempt {
	case 0:
		return 1 * time.Second
	case 1:
		return 3 * time.Second
	default:
		return 5 * time.Second
	}
}
