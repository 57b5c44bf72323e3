package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/katsuchip/functions/internal/model"
)

type StorageRepo interface {
	GetUser(ctx context.Context, uid string) (*model.User, error)
	FindOrder(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrderPayment(ctx context.Context, order *model.Order, update model.PaymentUpdate) error
	FindCompletedOrdersBefore(ctx context.Context, cutoff time.Time) ([]string, error)
	FindAllOrderIDs(ctx context.Context) ([]string, error)
	DeleteOrders(ctx context.Context, ids []string) (int64, error)
	Ping(ctx context.Context) error
}

type MailerRepo interface {
	SendInvitation(ctx context.Context, invitation model.Invitation) error
}

// LedgerRepo хранит уже обработанные уведомления Midtrans.
type LedgerRepo interface {
	IsNotificationProcessed(ctx context.Context, transactionID, transactionStatus string) (bool, error)
	RecordNotification(ctx context.Context, notification model.PaymentNotification) error
}

type EventsRepo interface {
	PublishPaymentUpdated(ctx context.Context, event model.PaymentEvent) error
}

type Options struct {
	InvitationBaseURL string
	ServerKey         string
	StrictSignature   bool
	CleanupDays       int
}

type Service struct {
	storage StorageRepo
	mailer  MailerRepo
	ledger  LedgerRepo
	events  EventsRepo

	opts Options
	now  func() time.Time
	lg   *zap.SugaredLogger
}

func New(s StorageRepo, m MailerRepo, l LedgerRepo, e EventsRepo, opts Options, lg *zap.SugaredLogger) *Service {
	if opts.CleanupDays <= 0 {
		opts.CleanupDays = model.DefaultCleanupDays
	}

	return &Service{
		storage: s,
		mailer:  m,
		ledger:  l,
		events:  e,

		opts: opts,
		now:  time.Now,
		lg:   lg,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.storage.Ping(ctx)
}
