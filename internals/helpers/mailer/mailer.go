// file: internals/helpers/mailer/mailer.go
package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"lmsku_backend/internals/configs"
)

// Mailer mengirim email transaksional. Kegagalan kirim TIDAK boleh
// menggagalkan response ke caller — semua pemanggilan bersifat
// fire-and-forget dan hanya dicatat di log.
type Mailer interface {
	SendPasswordResetOTP(toEmail, otp string)
}

// New memilih implementasi: sendgrid kalau API key ada, console kalau tidak.
func New(cfg *configs.Config) Mailer {
	if cfg.SendgridAPIKey == "" {
		return &consoleMailer{}
	}
	return &sendgridMailer{
		client:   sendgrid.NewSendClient(cfg.SendgridAPIKey),
		from:     cfg.EmailFrom,
		fromName: cfg.EmailFromName,
	}
}

/* ===============================
   Sendgrid
=================================*/

type sendgridMailer struct {
	client   *sendgrid.Client
	from     string
	fromName string
}

func (m *sendgridMailer) SendPasswordResetOTP(toEmail, otp string) {
	go func() {
		subject := "Password Reset Request"
		plain := fmt.Sprintf(
			"You have requested to reset your password. Use the following OTP code to verify your identity:\n\n%s\n\nThis code will expire in 15 minutes.\nIf you did not request a password reset, please ignore this email.",
			otp,
		)
		html := fmt.Sprintf(
			"<h1>Password Reset Request</h1><p>You have requested to reset your password. Use the following OTP code to verify your identity:</p><h2 style=\"background-color:#f0f0f0;padding:10px;text-align:center;font-size:24px;\">%s</h2><p>This code will expire in 15 minutes.</p><p>If you did not request a password reset, please ignore this email.</p>",
			otp,
		)

		msg := mail.NewSingleEmail(
			mail.NewEmail(m.fromName, m.from),
			subject,
			mail.NewEmail("", toEmail),
			plain,
			html,
		)
		if resp, err := m.client.Send(msg); err != nil {
			log.Printf("[ERROR] kirim email reset ke %s gagal: %v", toEmail, err)
		} else if resp.StatusCode >= 300 {
			log.Printf("[ERROR] kirim email reset ke %s status=%d body=%s", toEmail, resp.StatusCode, resp.Body)
		}
	}()
}

/* ===============================
   Console (dev / tanpa API key)
=================================*/

type consoleMailer struct{}

func (m *consoleMailer) SendPasswordResetOTP(toEmail, otp string) {
	log.Printf("📧 [console-mailer] reset OTP untuk %s: %s", toEmail, otp)
}
