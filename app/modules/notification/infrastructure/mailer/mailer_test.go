package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	notificationdomain "github.com/Black-And-White-Club/anleague/app/modules/notification/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMessage(t *testing.T) {
	msg := notificationdomain.Message{
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Match result: Kenya 1 - 0 Uganda",
		Body:    "Final score: Kenya 1 - 0 Uganda\n\nScorers:\nKenya: Kofi Moyo (9')\n",
	}

	got := string(FormatMessage("league@example.com", msg))

	assert.True(t, strings.HasPrefix(got, "From: league@example.com\r\nTo: a@example.com, b@example.com\r\nSubject: Match result: Kenya 1 - 0 Uganda\r\n"))
	assert.Contains(t, got, "Content-Type: text/plain; charset=UTF-8\r\n\r\nFinal score: Kenya 1 - 0 Uganda\r\n\r\nScorers:\r\n")
	assert.NotContains(t, strings.ReplaceAll(got, "\r\n", ""), "\n", "bare line feeds remain")
}

func TestNewSMTPMailerDefaultsFrom(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, User: "mailer@example.com", Pass: "pw"})
	assert.Equal(t, "mailer@example.com", m.cfg.From)
	assert.Equal(t, "smtp.example.com", m.tlsConfig.ServerName)
}

func TestSMTPMailerDialFailure(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "127.0.0.1", Port: 1, User: "u", Pass: "p"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, notificationdomain.Message{To: []string{"a@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dial")
}

func TestLogMailer(t *testing.T) {
	var buf bytes.Buffer
	m := NewLogMailer(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, m.Send(context.Background(), notificationdomain.Message{
		To:      []string{"rep@example.com"},
		Subject: "Tournament completed: Winner - TBD",
		Body:    "Winner: TBD",
	}))
	assert.Contains(t, buf.String(), "rep@example.com")
	assert.Contains(t, buf.String(), "Tournament completed: Winner - TBD")
}
