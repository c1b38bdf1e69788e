package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"simpleeval/config"

	"go.uber.org/zap"
)

// Mailer 寄送純文字通知信；關閉時注入 noop 實作
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

type noopMailer struct{}

func (noopMailer) Send(ctx context.Context, to string, subject string, body string) error {
	return nil
}

type smtpMailer struct {
	config *config.Configuration
	logger *zap.Logger
}

func NewMailer(logger *zap.Logger, configuration *config.Configuration) Mailer {
	if !configuration.Mail.Enabled || configuration.Mail.Host == "" {
		logger.Info("mailer disabled, using noop implementation")
		return noopMailer{}
	}
	return &smtpMailer{config: configuration, logger: logger}
}

func (mailer *smtpMailer) Send(ctx context.Context, to string, subject string, body string) error {
	if strings.TrimSpace(to) == "" {
		return nil
	}
	mailConfig := mailer.config.Mail
	address := fmt.Sprintf("%s:%d", mailConfig.Host, mailConfig.Port)
	message := buildMessage(mailConfig.From, to, subject, body)

	dialer := net.Dialer{Timeout: 10 * time.Second}
	connection, dialError := dialer.DialContext(ctx, "tcp", address)
	if dialError != nil {
		return dialError
	}
	defer connection.Close()

	smtpClient, clientError := smtp.NewClient(connection, mailConfig.Host)
	if clientError != nil {
		return clientError
	}
	defer smtpClient.Close()

	if mailConfig.UseTLS {
		tlsConfig := &tls.Config{ServerName: mailConfig.Host}
		if startTLSError := smtpClient.StartTLS(tlsConfig); startTLSError != nil {
			return startTLSError
		}
	}

	if mailConfig.Username != "" {
		auth := smtp.PlainAuth("", mailConfig.Username, mailConfig.Password, mailConfig.Host)
		if authError := smtpClient.Auth(auth); authError != nil {
			return authError
		}
	}

	if mailError := smtpClient.Mail(mailConfig.From); mailError != nil {
		return mailError
	}
	if rcptError := smtpClient.Rcpt(to); rcptError != nil {
		return rcptError
	}
	writer, dataError := smtpClient.Data()
	if dataError != nil {
		return dataError
	}
	if _, writeError := writer.Write(message); writeError != nil {
		_ = writer.Close()
		return writeError
	}
	if closeError := writer.Close(); closeError != nil {
		return closeError
	}
	return smtpClient.Quit()
}

func buildMessage(from string, to string, subject string, body string) []byte {
	headers := []string{
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
	}
	return []byte(strings.Join(headers, "\r\n") + "\r\n" + body)
}
