package email

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	body, err := Render(TemplateContactAcknowledgment, map[string]any{
		"Name":    "Ana",
		"Subject": "Pricing <question>",
		"ID":      "c-1",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "Hi Ana")
	// html/template escapes user input
	assert.Contains(t, body, "Pricing &lt;question&gt;")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render("missing", nil)
	assert.Error(t, err)
}

func TestSMTPProvider_SendTemplate(t *testing.T) {
	p := NewSMTP(Config{Host: "smtp.local", Port: 2525, From: "noreply@workcurb.io"})

	var gotAddr string
	var gotTo []string
	var gotMsg string
	p.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		return nil
	}

	err := p.SendTemplate(context.Background(), []string{"ana@example.com"}, "Welcome", TemplateOnboardingCredentials, map[string]any{
		"FullName": "Ana",
		"Email":    "ana@example.com",
		"Password": "Temp#1234",
	})

	assert.NoError(t, err)
	assert.Equal(t, "smtp.local:2525", gotAddr)
	assert.Equal(t, []string{"ana@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: Welcome\r\n")
	assert.Contains(t, gotMsg, "Temp#1234")
}

func TestSMTPProvider_SendFailure(t *testing.T) {
	p := NewSMTP(Config{Host: "smtp.local", Port: 25})
	p.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := p.Send(context.Background(), []string{"a@example.com"}, "s", "<p>x</p>")
	assert.EqualError(t, err, "connection refused")
}

func TestNewFromConfig(t *testing.T) {
	assert.IsType(t, &NoOpProvider{}, NewFromConfig(Config{}))
	assert.IsType(t, &SMTPProvider{}, NewFromConfig(Config{Host: "smtp.local", Port: 25}))
}
