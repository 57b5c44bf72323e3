package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/katsuchip/functions/internal/model"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

const invitationSubject = "🎉 Undangan Bergabung sebagai Kurir KatsuChip"

//go:embed templates/*.tmpl
var templatesFS embed.FS

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	FromName string
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type Repository struct {
	sender   sender
	from     string
	fromName string
	html     *htmltemplate.Template
	text     *texttemplate.Template
	lg       *zap.SugaredLogger
}

func New(cfg Config, lg *zap.SugaredLogger) (*Repository, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return newRepository(client, cfg, lg)
}

func newRepository(s sender, cfg Config, lg *zap.SugaredLogger) (*Repository, error) {
	html, err := htmltemplate.ParseFS(templatesFS, "templates/invitation.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}

	text, err := texttemplate.ParseFS(templatesFS, "templates/invitation.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	return &Repository{
		sender:   s,
		from:     cfg.Username,
		fromName: cfg.FromName,
		html:     html,
		text:     text,
		lg:       lg,
	}, nil
}

// SendInvitation - отправляет приглашение курьеру через SMTP-релей
func (r *Repository) SendInvitation(ctx context.Context, inv model.Invitation) error {
	msg, err := r.buildInvitation(inv)
	if err != nil {
		return err
	}

	if err := r.sender.DialAndSendWithContext(ctx, msg); err != nil {
		return err
	}

	r.lg.Infof("invitation email sent successfully to %s", inv.Email)

	return nil
}

func (r *Repository) buildInvitation(inv model.Invitation) (*mail.Msg, error) {
	htmlBody, textBody, err := r.render(inv)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(r.fromName, r.from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(inv.Email); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(invitationSubject)
	msg.SetBodyString(mail.TypeTextPlain, textBody)
	msg.AddAlternativeString(mail.TypeTextHTML, htmlBody)

	return msg, nil
}

func (r *Repository) render(inv model.Invitation) (string, string, error) {
	var html, text bytes.Buffer

	if err := r.html.Execute(&html, inv); err != nil {
		return "", "", fmt.Errorf("failed to render html template: %w", err)
	}
	if err := r.text.Execute(&text, inv); err != nil {
		return "", "", fmt.Errorf("failed to render text template: %w", err)
	}

	return html.String(), text.String(), nil
}
