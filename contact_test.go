package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendContactEmailRequiresCredentials(t *testing.T) {
	t.Setenv("SMTP_USER", "")
	t.Setenv("SMTP_PASS", "")

	err := sendContactEmail(ContactRequest{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "Hi",
	})
	assert.Error(t, err)
}
