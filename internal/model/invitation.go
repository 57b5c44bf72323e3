package model

type InvitationDTO struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	InvitationToken string `json:"invitationToken"`
}

// Invitation - письмо-приглашение курьеру, готовое к отправке
type Invitation struct {
	Email string
	Name  string
	Link  string
}

type InvitationResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
}
