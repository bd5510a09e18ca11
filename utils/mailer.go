package utils

import (
	"errors"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer adalah Notification Gateway: pengirim email transaksional via SMTP.
// Pemakaiannya selalu best-effort, pemanggil yang memutuskan untuk
// menjalankan di goroutine dan menelan error-nya (cukup di-log).
type Mailer interface {
	Send(to, subject, textBody, htmlBody string) error
}

// smtpMailer implementasi Mailer di atas gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv membaca konfigurasi SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASSWORD, SMTP_FROM dari environment. Kalau SMTP_HOST kosong,
// mengembalikan nil Mailer, aplikasi tetap jalan tanpa email.
func NewMailerFromEnv() (Mailer, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, nil
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		return nil, errors.New("SMTP_PORT is not a valid number")
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASSWORD")),
		from:   from,
	}, nil
}

// Send mengirim satu email (plain text + alternatif HTML).
func (m *smtpMailer) Send(to, subject, textBody, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", textBody)
	if htmlBody != "" {
		msg.AddAlternative("text/html", htmlBody)
	}

	return m.dialer.DialAndSend(msg)
}
