package service

import (
	"context"
	"net/url"
	"strings"

	"github.com/katsuchip/functions/internal/model"
)

const (
	invitationPath          = "/register-kurir"
	invitationSentMessage   = "Email invitation berhasil dikirim"
	invitationFailedMessage = "Failed to send invitation email: "
)

func (s *Service) SendInvitation(ctx context.Context, caller *model.TokenInfo, input model.InvitationDTO) (*model.InvitationResult, *model.APIError) {
	if apiErr := s.requireAdmin(ctx, caller, model.ActionSendInvitation); apiErr != nil {
		return nil, apiErr
	}

	if apiErr := validateInvitationDTO(input); apiErr != nil {
		return nil, apiErr
	}

	invitation := model.Invitation{
		Email: input.Email,
		Name:  input.Name,
		Link:  s.invitationLink(input.InvitationToken),
	}

	if err := s.mailer.SendInvitation(ctx, invitation); err != nil {
		s.lg.Errorf("error sending invitation to %s: %v", input.Email, err)
		return nil, model.NewInternal(invitationFailedMessage + err.Error())
	}

	return &model.InvitationResult{
		Success:   true,
		Message:   invitationSentMessage,
		Recipient: input.Email,
	}, nil
}

func (s *Service) invitationLink(token string) string {
	return strings.TrimRight(s.opts.InvitationBaseURL, "/") + invitationPath + "?token=" + url.QueryEscape(token)
}
