package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/redmonkez12/glp1-companion/internal/config"
	"github.com/redmonkez12/glp1-companion/internal/logging"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body {
            font-family: Arial, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
        }
        .header {
            background-color: #0F766E;
            color: white;
            padding: 20px;
            text-align: center;
            border-radius: 5px 5px 0 0;
        }
        .content {
            background-color: #f9f9f9;
            padding: 30px;
            border-radius: 0 0 5px 5px;
        }
        .button {
            display: inline-block;
            background-color: #0F766E;
            color: white !important;
            padding: 12px 30px;
            text-decoration: none;
            border-radius: 5px;
            margin: 20px 0;
        }
        .footer {
            margin-top: 30px;
            font-size: 12px;
            color: #666;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Welcome, {{.FirstName}}!</h1>
    </div>
    <div class="content">
        <h2>Your GLP-1 companion is ready</h2>
        <p>Log side effects as they happen, keep your medication schedule in one place and watch your progress week by week.</p>

        <a href="{{.DashboardLink}}" class="button" style="color: white !important;">Open your dashboard</a>

        <p style="margin-top: 30px;">If you didn't create an account, you can safely ignore this email.</p>
    </div>
    <div class="footer">
        <p>This app does not replace advice from your care team.</p>
    </div>
</body>
</html>
`))

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Service delivers transactional mail over SMTP
type Service struct {
	smtpHost     string
	smtpPort     string
	smtpUser     string
	smtpPassword string
	fromEmail    string
	frontendURL  string
	send         sendFunc
}

func NewService(cfg config.EmailConfig) *Service {
	return &Service{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUser:     cfg.SMTPUser,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.SMTPUser,
		frontendURL:  cfg.FrontendURL,
		send:         smtp.SendMail,
	}
}

// SendWelcomeEmail greets a newly registered user.
// This method is designed to be called in a goroutine
func (s *Service) SendWelcomeEmail(ctx context.Context, toEmail, firstName string) error {
	logger := logging.GetLoggerFromContext(ctx)

	body, err := renderWelcome(firstName, s.frontendURL+"/dashboard")
	if err != nil {
		logger.Error("failed to render welcome email", "error", err)
		return fmt.Errorf("render template: %w", err)
	}

	if err := s.sendEmail(toEmail, "Welcome to your GLP-1 companion", body); err != nil {
		logger.Error("failed to send welcome email", "email", toEmail, "error", err)
		return fmt.Errorf("send email: %w", err)
	}

	logger.Info("welcome email sent", "email", toEmail)
	return nil
}

func (s *Service) sendEmail(to, subject, body string) error {
	auth := smtp.PlainAuth("", s.smtpUser, s.smtpPassword, s.smtpHost)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s\r\n",
		s.fromEmail, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	return s.send(addr, auth, s.fromEmail, []string{to}, msg)
}

func renderWelcome(firstName, dashboardLink string) (string, error) {
	var buf bytes.Buffer
	data := struct {
		FirstName     string
		DashboardLink string
	}{
		FirstName:     firstName,
		DashboardLink: dashboardLink,
	}

	if err := welcomeTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}

	return buf.String(), nil
}
