// contact.go - Contact form submission and lead tracking
package main

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

// ContactRequest is the contact form payload. gin's binding tags give us
// validation for free.
type ContactRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Subject string `form:"subject" binding:"required"`
	Message string `form:"message" binding:"required"`
}

func sendContactEmail(req ContactRequest) error {
	// Email configuration - use environment variables for security
	smtpHost := envOrDefault("SMTP_HOST", "smtp.gmail.com")
	smtpPort := envOrDefault("SMTP_PORT", "587")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	toEmail := envOrDefault("TO_EMAIL", "ghassen.bouaziz.dev@gmail.com")

	if smtpUser == "" || smtpPass == "" {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", req.Subject)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, req.Name, req.Email, req.Subject, req.Message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + smtpUser + "\r\n" +
		"Reply-To: " + req.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, smtpUser, []string{toEmail}, msg)
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}

	log.Printf("Email sent successfully from %s (%s)", req.Name, req.Email)
	return nil
}

// trackLead records the lead conversion across the configured sinks:
// the submitting visitor gets a lead profile and a conversion event.
func trackLead(sink EventSink, visitorID, sessionID string, req ContactRequest) {
	sink.Identify(visitorID, map[string]any{
		"User Type":    "lead",
		"Lead Email":   req.Email,
		"Lead Name":    req.Name,
		"Lead Subject": req.Subject,
	})
	sink.Track("lead_conversion", map[string]any{
		"visitor_id":   visitorID,
		"session_id":   sessionID,
		"lead_email":   req.Email,
		"lead_name":    req.Name,
		"lead_subject": req.Subject,
	})
}
