package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/nexocrm/crm-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails. Every send is
// best-effort: callers log failures and carry on, they never fail the
// primary operation over a mail problem.
type EmailService interface {
	SendCompanyVerified(to, companyName, loginLink string) error
	SendCompanyRejected(to, companyName string) error
	SendEmployeeVerified(to, employeeName, companyName, roleName, loginLink string) error
	SendLeadAssigned(to, assigneeName, leadTitle, contactName string) error
	SendTaskDue(to, assigneeName, taskTitle string, dueAt *time.Time) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type companyVerifiedData struct {
	CompanyName string
	LoginLink   string
}

func (s *emailServiceImpl) SendCompanyVerified(to, companyName, loginLink string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "company_verified.html", companyVerifiedData{
		CompanyName: companyName,
		LoginLink:   loginLink,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("%s has been verified", companyName), body.String())
}

func (s *emailServiceImpl) SendCompanyRejected(to, companyName string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "company_rejected.html", companyVerifiedData{
		CompanyName: companyName,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Update on %s registration", companyName), body.String())
}

type employeeVerifiedData struct {
	EmployeeName string
	CompanyName  string
	RoleName     string
	LoginLink    string
}

func (s *emailServiceImpl) SendEmployeeVerified(to, employeeName, companyName, roleName, loginLink string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "employee_verified.html", employeeVerifiedData{
		EmployeeName: employeeName,
		CompanyName:  companyName,
		RoleName:     roleName,
		LoginLink:    loginLink,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("You have been verified at %s", companyName), body.String())
}

type leadAssignedData struct {
	AssigneeName string
	LeadTitle    string
	ContactName  string
}

func (s *emailServiceImpl) SendLeadAssigned(to, assigneeName, leadTitle, contactName string) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "lead_assigned.html", leadAssignedData{
		AssigneeName: assigneeName,
		LeadTitle:    leadTitle,
		ContactName:  contactName,
	}); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Lead assigned to you: %s", leadTitle), body.String())
}

type taskDueData struct {
	AssigneeName string
	TaskTitle    string
	DueAt        string
}

func (s *emailServiceImpl) SendTaskDue(to, assigneeName, taskTitle string, dueAt *time.Time) error {
	data := taskDueData{
		AssigneeName: assigneeName,
		TaskTitle:    taskTitle,
	}
	if dueAt != nil {
		data.DueAt = dueAt.Format("2006-01-02 15:04")
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "task_due.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Task due soon: %s", taskTitle), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
