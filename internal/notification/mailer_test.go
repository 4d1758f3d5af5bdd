package notification

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMIME(t *testing.T) {
	raw := string(BuildMIME("hr@corp.test", Message{
		To:      []string{"a@corp.test", "b@corp.test"},
		Cc:      []string{"c@corp.test"},
		Subject: "Hello",
		HTML:    "<p>hi</p>",
	}))

	assert.True(t, strings.HasPrefix(raw, "From: HRMS <hr@corp.test>\r\n"))
	assert.Contains(t, raw, "To: a@corp.test, b@corp.test\r\n")
	assert.Contains(t, raw, "Cc: c@corp.test\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(raw, "\r\n\r\n<p>hi</p>"))
}

func TestSMTPMailer_Send(t *testing.T) {
	t.Run("success sends to every recipient", func(t *testing.T) {
		m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: 587, User: "hr@corp.test", Password: "pw"})
		var gotAddr, gotFrom string
		var gotTo []string
		m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo = addr, from, to
			assert.NotNil(t, a)
			return nil
		}

		err := m.Send(context.Background(), Message{To: []string{"a@corp.test"}, Cc: []string{"c@corp.test"}, Subject: "s"})
		assert.NoError(t, err)
		assert.Equal(t, "smtp.test:587", gotAddr)
		assert.Equal(t, "hr@corp.test", gotFrom)
		assert.Equal(t, []string{"a@corp.test", "c@corp.test"}, gotTo)
	})

	t.Run("negative relay error is wrapped", func(t *testing.T) {
		m := NewSMTPMailer(SMTPConfig{Host: "smtp.test", Port: 25})
		m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			assert.Nil(t, a)
			return errors.New("421 busy")
		}

		err := m.Send(context.Background(), Message{To: []string{"a@corp.test"}})
		assert.ErrorContains(t, err, "421 busy")
	})

	t.Run("negative no recipient", func(t *testing.T) {
		m := NewSMTPMailer(SMTPConfig{})
		assert.Error(t, m.Send(context.Background(), Message{}))
	})
}
