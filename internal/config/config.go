package config

import (
	"errors"
	"flag"
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	DefaultRunAddress        = ":8080"
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabase     = "katsuchip"
	DefaultDatabaseURI       = ""
	DefaultNatsURL           = ""
	DefaultSecretKey         = "secret"
	DefaultSMTPHost          = "smtp.gmail.com"
	DefaultSMTPPort          = 587
	DefaultMailFromName      = "KatsuChip Team"
	DefaultInvitationBaseURL = "https://katsuchip.com"
	DefaultSignatureMode     = SignatureModePermissive
	DefaultCleanupDays       = 60
	DefaultCleanupSchedule   = "0 2 * * *"
	DefaultCleanupTimezone   = "Asia/Jakarta"
	DefaultLegacyOrderLookup = true
	DefaultRequestTimeout    = 30 * time.Second

	SignatureModePermissive = "permissive"
	SignatureModeStrict     = "strict"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DB"`
	DatabaseURI   string `env:"DATABASE_URI"`
	NatsURL       string `env:"NATS_URL"`
	SecretKey     string `env:"SECRET_KEY"`

	SMTPHost          string `env:"SMTP_HOST"`
	SMTPPort          int    `env:"SMTP_PORT"`
	SMTPUsername      string `env:"SMTP_USERNAME"`
	SMTPPassword      string `env:"SMTP_PASSWORD"`
	MailFromName      string `env:"MAIL_FROM_NAME"`
	InvitationBaseURL string `env:"INVITATION_BASE_URL"`

	MidtransServerKey string `env:"MIDTRANS_SERVER_KEY"`
	SignatureMode     string `env:"SIGNATURE_MODE"`
	LegacyOrderLookup bool   `env:"LEGACY_ORDER_LOOKUP"`

	CleanupDays     int           `env:"CLEANUP_RETENTION_DAYS"`
	CleanupSchedule string        `env:"CLEANUP_SCHEDULE"`
	CleanupTimezone string        `env:"CLEANUP_TIMEZONE"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT"`
}

func Read() (Config, error) {
	config := Config{}

	// .env необязателен, переменные окружения могут быть заданы снаружи
	_ = godotenv.Load()

	flag.StringVar(&config.RunAddress, "a", DefaultRunAddress, "Server run address")
	flag.StringVar(&config.MongoURI, "m", DefaultMongoURI, "MongoDB connect string")
	flag.StringVar(&config.MongoDatabase, "n", DefaultMongoDatabase, "MongoDB database name")
	flag.StringVar(&config.DatabaseURI, "d", DefaultDatabaseURI, "Postgres connect string for the notification ledger (optional)")
	flag.StringVar(&config.NatsURL, "q", DefaultNatsURL, "NATS server url for order events (optional)")
	flag.StringVar(&config.SecretKey, "s", DefaultSecretKey, "Secret key for bearer tokens")

	flag.StringVar(&config.SMTPHost, "smtp-host", DefaultSMTPHost, "SMTP relay host")
	flag.IntVar(&config.SMTPPort, "smtp-port", DefaultSMTPPort, "SMTP relay port")
	flag.StringVar(&config.SMTPUsername, "smtp-user", "", "SMTP username, also used as sender address")
	flag.StringVar(&config.SMTPPassword, "smtp-pass", "", "SMTP password (app password)")
	flag.StringVar(&config.MailFromName, "mail-from", DefaultMailFromName, "Sender display name")
	flag.StringVar(&config.InvitationBaseURL, "invite-url", DefaultInvitationBaseURL, "Base url of courier registration page")

	flag.StringVar(&config.MidtransServerKey, "k", "", "Midtrans server key")
	flag.StringVar(&config.SignatureMode, "signature-mode", DefaultSignatureMode, "Webhook signature mode: permissive or strict")
	flag.BoolVar(&config.LegacyOrderLookup, "legacy-lookup", DefaultLegacyOrderLookup, "Scan per-user order collections when an order is missing")

	flag.IntVar(&config.CleanupDays, "cleanup-days", DefaultCleanupDays, "Retention of completed orders in days")
	flag.StringVar(&config.CleanupSchedule, "cleanup-schedule", DefaultCleanupSchedule, "Cron schedule of the order cleanup")
	flag.StringVar(&config.CleanupTimezone, "cleanup-tz", DefaultCleanupTimezone, "Timezone of the cleanup schedule")
	flag.DurationVar(&config.RequestTimeout, "t", DefaultRequestTimeout, "Request timeout (e.g. 30s, 1m)")

	flag.Parse()

	err := env.Parse(&config)
	if err != nil {
		return config, err
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("MONGO_URI is required")
	}
	if c.MongoDatabase == "" {
		return errors.New("MONGO_DB is required")
	}
	if c.SignatureMode != SignatureModePermissive && c.SignatureMode != SignatureModeStrict {
		return fmt.Errorf("unknown SIGNATURE_MODE %q", c.SignatureMode)
	}
	if c.SignatureMode == SignatureModeStrict && c.MidtransServerKey == "" {
		return errors.New("MIDTRANS_SERVER_KEY is required in strict SIGNATURE_MODE")
	}
	if c.CleanupDays <= 0 {
		return errors.New("CLEANUP_RETENTION_DAYS must be positive")
	}
	if _, err := time.LoadLocation(c.CleanupTimezone); err != nil {
		return fmt.Errorf("invalid CLEANUP_TIMEZONE: %w", err)
	}

	return nil
}

// Warnings - допустимые, но небезопасные настройки, о которых стоит сообщить при старте.
func (c Config) Warnings() []string {
	var warnings []string

	if c.SecretKey == DefaultSecretKey {
		warnings = append(warnings, "SECRET_KEY is the built-in default, bearer tokens can be forged")
	}
	if c.SignatureMode == SignatureModePermissive && c.MidtransServerKey == "" {
		warnings = append(warnings, "MIDTRANS_SERVER_KEY is empty, every webhook signature will fail and be accepted in permissive mode")
	}

	return warnings
}
