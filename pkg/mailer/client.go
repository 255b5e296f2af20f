package mailer

import (
	"bytes"
	"fmt"
	"mime"
	"net/smtp"
)

// Client sends HTML mail through a single SMTP account. A connection is
// opened per message; bakery order volume does not justify pooling.
type Client struct {
	host     string
	port     int
	user     string
	password string
}

func NewClient(host string, port int, user, password string) *Client {
	return &Client{
		host:     host,
		port:     port,
		user:     user,
		password: password,
	}
}

func (c *Client) Send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", c.host, c.port)
	auth := smtp.PlainAuth("", c.user, c.password, c.host)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", c.user)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(addr, auth, c.user, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
