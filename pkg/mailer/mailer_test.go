package mailer

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Config{From: "a@b.com"})
	assert.Error(t, err)

	_, err = New(Config{Host: "smtp.example.com"})
	assert.Error(t, err)

	m, err := New(Config{Host: "smtp.example.com", From: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "2525", m.cfg.Port)
}

func TestSend(t *testing.T) {
	m, err := New(Config{Host: "smtp.example.com", Port: "587", User: "u", Pass: "p", From: "site@example.com"})
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	var gotAuth smtp.Auth
	m.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, msg
		return nil
	}

	require.NoError(t, m.Send([]string{"owner@example.com"}, "New inquiry", "hello"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "site@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: New inquiry\r\n")
}

func TestSendWithoutAuth(t *testing.T) {
	m, err := New(Config{Host: "localhost", From: "site@example.com"})
	require.NoError(t, err)

	m.sendMail = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		assert.Nil(t, a)
		return nil
	}
	assert.NoError(t, m.Send([]string{"owner@example.com"}, "s", "b"))
}

func TestSendErrors(t *testing.T) {
	m, err := New(Config{Host: "localhost", From: "site@example.com"})
	require.NoError(t, err)
	m.sendMail = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("connection refused") }

	assert.Error(t, m.Send(nil, "s", "b"))
	assert.Error(t, m.Send([]string{""}, "s", "b"))
	assert.Error(t, m.Send([]string{"owner@example.com"}, "", "b"))

	err = m.Send([]string{"owner@example.com"}, "s", "b")
	assert.ErrorContains(t, err, "connection refused")
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@example.com", []string{"a@example.com", "b@example.com"}, "Hi\r\nBcc: x@evil", "plain body"))

	assert.Contains(t, msg, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hi  Bcc: x@evil\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.Contains(t, msg, "\r\n\r\nplain body\r\n")
}

func TestSendKeepsMarkupAsPlainText(t *testing.T) {
	m, err := New(Config{Host: "smtp.example.com", From: "site@example.com"})
	require.NoError(t, err)

	var gotMsg []byte
	m.sendMail = func(_ string, _ smtp.Auth, _ string, _ []string, msg []byte) error {
		gotMsg = msg
		return nil
	}

	body := "Message:\n<html><p>Click <a href=\"https://evil.example\">here</a></p></html>"
	require.NoError(t, m.Send([]string{"owner@example.com"}, "New inquiry", body))

	msg := string(gotMsg)
	assert.Contains(t, msg, "Content-Type: text/plain; charset=UTF-8\r\n")
	assert.NotContains(t, msg, "text/html")
}
