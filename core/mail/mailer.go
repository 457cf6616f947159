// Package mail delivers exported playlists over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"MeloList/config"
)

// SMTPMailer 通过SMTP发送导出结果
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

// NewSMTPMailer 从配置创建SMTP投递器
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
		sender:   cfg.SMTPSender,
	}
}

// Send 把导出文档作为JSON附件正文发送到目标邮箱
func (m *SMTPMailer) Send(targetEmail, body string) error {
	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", m.sender),
		fmt.Sprintf("To: %s", targetEmail),
		"Subject: Playlist export",
		"MIME-Version: 1.0",
		`Content-Type: application/json; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.sender, []string{targetEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send export email: %w", err)
	}
	return nil
}
