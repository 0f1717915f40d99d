package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
)

// Config holds SMTP configuration
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

// Sender delivers rendered emails. The reminder job swaps in a fake for
// tests.
type Sender interface {
	SendMaintenanceDigest(toEmail, userName string, devices []DigestDevice) error
}

// DigestDevice is one line of the maintenance reminder digest
type DigestDevice struct {
	ClientName   string
	DeviceType   string
	SerialNumber string
	DueDate      string
	Overdue      bool
}

// Mailer handles sending emails
type Mailer struct {
	config Config
}

// New creates a new Mailer instance
func New(cfg Config) *Mailer {
	return &Mailer{config: cfg}
}

// SendMaintenanceDigest sends a digest of devices whose maintenance is due
func (m *Mailer) SendMaintenanceDigest(toEmail, userName string, devices []DigestDevice) error {
	subject := fmt.Sprintf("Heating CMS - %d devices due for maintenance", len(devices))

	body, err := m.renderDigestTemplate(userName, devices)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return m.send(toEmail, subject, body)
}

// send delivers an email via SMTP
func (m *Mailer) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%s", m.config.Host, m.config.Port)

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", m.config.FromName, m.config.From),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/html; charset=\"utf-8\"",
	}

	var msg bytes.Buffer
	for k, v := range headers {
		msg.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	var auth smtp.Auth
	if m.config.Username != "" && m.config.Password != "" {
		auth = smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	}

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, msg.Bytes()); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s: %s", to, subject)
	return nil
}

// renderDigestTemplate returns the HTML body for the maintenance digest
func (m *Mailer) renderDigestTemplate(userName string, devices []DigestDevice) (string, error) {
	tmpl := `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin:0;padding:0;background-color:#f4f6f8;font-family:'Segoe UI',Tahoma,Geneva,Verdana,sans-serif;">
    <div style="max-width:560px;margin:40px auto;background:#ffffff;border-radius:8px;overflow:hidden;border:1px solid #e0e4e8;">
        <div style="background:#1565c0;padding:24px;text-align:center;">
            <h1 style="color:#fff;margin:0;font-size:22px;font-weight:700;">Heating CMS</h1>
            <p style="color:rgba(255,255,255,0.85);margin:8px 0 0;font-size:14px;">Maintenance reminders</p>
        </div>

        <div style="padding:24px;">
            <p style="color:#263238;font-size:15px;line-height:1.6;margin:0 0 16px;">
                Hi <strong>{{.UserName}}</strong>,
            </p>
            <p style="color:#546e7a;font-size:14px;line-height:1.6;margin:0 0 16px;">
                The following devices are due for maintenance:
            </p>

            <table style="width:100%;border-collapse:collapse;font-size:13px;">
                <tr style="background:#eceff1;color:#37474f;text-align:left;">
                    <th style="padding:8px;">Client</th>
                    <th style="padding:8px;">Device</th>
                    <th style="padding:8px;">Serial</th>
                    <th style="padding:8px;">Due</th>
                </tr>
                {{range .Devices}}
                <tr style="border-bottom:1px solid #eceff1;">
                    <td style="padding:8px;color:#263238;">{{.ClientName}}</td>
                    <td style="padding:8px;color:#263238;">{{.DeviceType}}</td>
                    <td style="padding:8px;color:#546e7a;">{{.SerialNumber}}</td>
                    <td style="padding:8px;{{if .Overdue}}color:#c62828;font-weight:700;{{else}}color:#263238;{{end}}">{{.DueDate}}{{if .Overdue}} (overdue){{end}}</td>
                </tr>
                {{end}}
            </table>
        </div>

        <div style="padding:16px 24px;border-top:1px solid #eceff1;text-align:center;">
            <p style="color:#90a4ae;font-size:12px;margin:0;">You receive this because email reminders are enabled in your notification settings.</p>
        </div>
    </div>
</body>
</html>`

	t, err := template.New("digest").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = t.Execute(&buf, map[string]interface{}{
		"UserName": userName,
		"Devices":  devices,
	})
	return buf.String(), err
}
