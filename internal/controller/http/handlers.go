package http

//go:generate mockgen -source=handlers.go -destination=mocks/handlers.go -package=mocks

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/katsuchip/functions/internal/model"
	"github.com/katsuchip/functions/pgk/auth"
)

type Service interface {
	SendInvitation(ctx context.Context, caller *model.TokenInfo, input model.InvitationDTO) (*model.InvitationResult, *model.APIError)
	CleanupOrders(ctx context.Context, caller *model.TokenInfo, input model.CleanupDTO) (*model.CleanupResult, *model.APIError)
	DeleteAllOrders(ctx context.Context, caller *model.TokenInfo, input model.DeleteAllDTO) (*model.DeleteAllResult, *model.APIError)
	HandlePaymentNotification(ctx context.Context, n model.PaymentNotification) (*model.WebhookResponse, *model.APIError)
	Ping(ctx context.Context) error
}

type Controller struct {
	service Service
	lg      *zap.SugaredLogger
}

func New(s Service, lg *zap.SugaredLogger) *Controller {
	return &Controller{
		lg:      lg,
		service: s,
	}
}

func (c *Controller) SendInvitation(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, model.ActionSendInvitation)
	if !ok {
		return
	}

	body, err := readBody[model.InvitationDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeAPIError(w, model.NewInvalidArgument(model.ErrInvitationFieldsMessage))
		return
	}

	result, apiErr := c.service.SendInvitation(r.Context(), caller, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func (c *Controller) CleanupOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, model.ActionCleanupOrders)
	if !ok {
		return
	}

	body, err := readBody[model.CleanupDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeAPIError(w, model.NewInvalidArgument(model.ErrInvalidDaysMessage))
		return
	}

	result, apiErr := c.service.CleanupOrders(r.Context(), caller, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

func (c *Controller) DeleteAllOrders(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, model.ActionDeleteOrders)
	if !ok {
		return
	}

	body, err := readBody[model.DeleteAllDTO](r)
	if err != nil {
		c.lg.Errorf("failed to parse request body: %v", err)
		writeAPIError(w, model.NewInvalidArgument(model.ErrInvalidConfirmTokenMessage))
		return
	}

	result, apiErr := c.service.DeleteAllOrders(r.Context(), caller, body)
	if apiErr != nil {
		writeAPIError(w, apiErr)
		return
	}

	writeJSON(w, result, http.StatusOK)
}

// requireCaller отклоняет запрос без идентификатора вызывающего, тело ещё не прочитано.
func requireCaller(w http.ResponseWriter, r *http.Request, action string) (*model.TokenInfo, bool) {
	caller := auth.GetTokenInfo[model.TokenInfo](r)
	if caller == nil || caller.UID == "" {
		writeAPIError(w, model.NewUnauthenticatedAction(action))
		return nil, false
	}

	return caller, true
}

func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	if err := c.service.Ping(r.Context()); err != nil {
		c.lg.Errorf("ping failed: %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
