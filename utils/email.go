package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"
)

// SendRSVPNotification mails the couple when guests confirm through the
// public endpoint. Best effort: without SMTP settings it is a no-op, and a
// send failure is logged but never surfaced to the guest.
func SendRSVPNotification(names []string) {
	host := os.Getenv("SMTP_HOST")
	to := os.Getenv("RSVP_NOTIFY_TO")
	if host == "" || to == "" || len(names) == 0 {
		return
	}

	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	body := fmt.Sprintf("%d guest(s) just confirmed attendance:\n\n%s\n",
		len(names), strings.Join(names, "\n"))

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New RSVP confirmations")
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("failed to send RSVP notification: %v", err)
	}
}
