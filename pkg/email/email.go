package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"net/url"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	FrontendURL  string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// SendWelcomeEmail sends a short welcome note after registration.
/// Failures are best-effort: registration never fails on email errors.
func (s *EmailService) SendWelcomeEmail(toEmail, firstName string) error {
	htmlContent, err := renderTemplate(welcomeTemplate, struct {
		FirstName string
		AppName   string
		AppURL    string
	}{
		FirstName: firstName,
		AppName:   "GenSlip",
		AppURL:    s.config.FrontendURL,
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Welcome to GenSlip", htmlContent)
	return s.sendEmail(toEmail, message)
}

// SendPasswordResetEmail sends a password reset email
func (s *EmailService) SendPasswordResetEmail(toEmail, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.config.FrontendURL,
		url.QueryEscape(token),
		url.QueryEscape(toEmail),
	)

	htmlContent, err := renderTemplate(passwordResetTemplate, struct {
		Email    string
		ResetURL string
		AppName  string
	}{
		Email:    toEmail,
		ResetURL: resetURL,
		AppName:  "GenSlip",
	})
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	message := s.buildHTMLEmail(toEmail, "Reset Your Password - GenSlip", htmlContent)
	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func renderTemplate(text string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(text)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const welcomeTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Welcome</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #e2e1de;">
  <table role="presentation" style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 40px 0;">
      <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #f5f4f2; border-radius: 12px; overflow: hidden;">
        <tr>
          <td style="background-color: #1c1c1c; padding: 32px 30px; text-align: center;">
            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
          </td>
        </tr>
        <tr>
          <td style="padding: 40px 30px;">
            <h2 style="color: #1c1c1c; margin: 0 0 20px 0; font-size: 22px;">Welcome, {{.FirstName}}!</h2>
            <p style="color: #555; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
              Your account is ready. Pick a template, add your line items, and your first
              receipt is a couple of clicks away.
            </p>
            <table role="presentation" style="margin: 0 auto;">
              <tr>
                <td style="background-color: #7c3aed; border-radius: 8px;">
                  <a href="{{.AppURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                    Create a Receipt
                  </a>
                </td>
              </tr>
            </table>
          </td>
        </tr>
        <tr>
          <td style="background-color: #e9e8e5; padding: 24px; text-align: center;">
            <p style="color: #888; font-size: 12px; margin: 0;">© 2026 {{.AppName}}. All rights reserved.</p>
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>
`

const passwordResetTemplate = `
<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Reset Your Password</title></head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #e2e1de;">
  <table role="presentation" style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 40px 0;">
      <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #f5f4f2; border-radius: 12px; overflow: hidden;">
        <tr>
          <td style="background-color: #1c1c1c; padding: 32px 30px; text-align: center;">
            <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 600;">{{.AppName}}</h1>
          </td>
        </tr>
        <tr>
          <td style="padding: 40px 30px;">
            <h2 style="color: #1c1c1c; margin: 0 0 20px 0; font-size: 22px;">Reset Your Password</h2>
            <p style="color: #555; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
              We received a request to reset the password for the account associated with
              <strong>{{.Email}}</strong>.
            </p>
            <p style="color: #555; font-size: 16px; line-height: 1.6; margin: 0 0 30px 0;">
              Click the button below to reset your password. This link will expire in
              <strong>1 hour</strong>.
            </p>
            <table role="presentation" style="margin: 0 auto 30px auto;">
              <tr>
                <td style="background-color: #7c3aed; border-radius: 8px;">
                  <a href="{{.ResetURL}}" style="display: inline-block; padding: 14px 28px; color: #ffffff; text-decoration: none; font-size: 16px; font-weight: 600;">
                    Reset Password
                  </a>
                </td>
              </tr>
            </table>
            <p style="color: #888; font-size: 14px; line-height: 1.6; margin: 0 0 20px 0;">
              If you didn't request this password reset, you can safely ignore this email.
              Your password will remain unchanged.
            </p>
            <p style="color: #888; font-size: 14px; line-height: 1.6; margin: 0;">
              If the button above doesn't work, copy and paste this link into your browser:
            </p>
            <p style="color: #7c3aed; font-size: 14px; line-height: 1.6; margin: 10px 0 0 0; word-break: break-all;">
              <a href="{{.ResetURL}}" style="color: #7c3aed;">{{.ResetURL}}</a>
            </p>
          </td>
        </tr>
        <tr>
          <td style="background-color: #e9e8e5; padding: 24px; text-align: center;">
            <p style="color: #888; font-size: 12px; margin: 0;">© 2026 {{.AppName}}. All rights reserved.</p>
          </td>
        </tr>
      </table>
    </td></tr>
  </table>
</body>
</html>
`
