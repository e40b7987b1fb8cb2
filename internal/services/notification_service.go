// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/UmairIqbal92/car-dealer-fork/internal/config"
)

// NotificationService forwards lead-capture submissions to the dealership
// inbox as HTML emails. Sends happen after any persistence and are never
// retried; a failed send is logged and does not roll the lead back.
type NotificationService struct {
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

type InquiryEmailData struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Message     string
	VehicleName string
	InquiryType string
}

type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type CarFinderEmailData struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Make      string
	Model     string
	YearMin   string
	YearMax   string
	PriceMin  string
	PriceMax  string
	Message   string
}

type ApplicationEmailData struct {
	BuyerName    string
	BuyerEmail   string
	BuyerPhone   string
	BuyerAddress string
	VehicleInfo  string
	HasCoBuyer   bool
	CoBuyerName  string
	CoBuyerEmail string
}

type ExportQueryEmailData struct {
	Brand  string
	Model  string
	Budget string
	Miles  string
	Email  string
	Phone  string
	Notes  string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

func (s *NotificationService) SendInquiryEmail(data InquiryEmailData) error {
	subject := fmt.Sprintf("New %s Inquiry from %s %s", data.InquiryType, data.FirstName, data.LastName)
	return s.renderAndSend("inquiry", subject, data, "")
}

func (s *NotificationService) SendContactEmail(data ContactEmailData) error {
	subject := "Contact Form: " + data.Subject
	if data.Subject == "" {
		subject = "New Contact Form Submission"
	}
	return s.renderAndSend("contact", subject, data, data.Email)
}

func (s *NotificationService) SendCarFinderEmail(data CarFinderEmailData) error {
	subject := fmt.Sprintf("Car Finder Request from %s %s", data.FirstName, data.LastName)
	return s.renderAndSend("car_finder", subject, data, "")
}

func (s *NotificationService) SendApplicationEmail(data ApplicationEmailData) error {
	subject := "New Credit Application from " + data.BuyerName
	return s.renderAndSend("application", subject, data, "")
}

func (s *NotificationService) SendExportQueryEmail(data ExportQueryEmailData) error {
	subject := fmt.Sprintf("Export Query: %s %s", data.Brand, data.Model)
	return s.renderAndSend("export_query", subject, data, data.Email)
}

func (s *NotificationService) renderAndSend(templateType, subject string, data interface{}, replyTo string) error {
	tmpl := s.getEmailTemplate(templateType)

	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(s.config.Email.DealerEmail, subject, body, replyTo)
}

func (s *NotificationService) sendEmail(to, subject, body, replyTo string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("Email skipped (SMTP not configured)")
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	headers := fmt.Sprintf("To: %s\r\nFrom: %s <%s>\r\nSubject: %s\r\n", to, s.config.Email.FromName, s.config.Email.FromEmail, subject)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	msg := []byte(headers + "Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" + body)

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"inquiry": {
			Subject: "New Inquiry",
			Body: `
<h2>New Inquiry from Car Junction Website</h2>
<p><strong>Type:</strong> {{.InquiryType}}</p>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
{{if .VehicleName}}<p><strong>Vehicle:</strong> {{.VehicleName}}</p>{{end}}
<p><strong>Message:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}No message provided{{end}}</p>`,
		},
		"contact": {
			Subject: "Contact Form",
			Body: `
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>`,
		},
		"car_finder": {
			Subject: "Car Finder Request",
			Body: `
<h2>New Car Finder Request</h2>
<p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<h3>Vehicle Preferences:</h3>
<p><strong>Make:</strong> {{if .Make}}{{.Make}}{{else}}Any{{end}}</p>
<p><strong>Model:</strong> {{if .Model}}{{.Model}}{{else}}Any{{end}}</p>
<p><strong>Year Range:</strong> {{if .YearMin}}{{.YearMin}}{{else}}Any{{end}} - {{if .YearMax}}{{.YearMax}}{{else}}Any{{end}}</p>
<p><strong>Price Range:</strong> ${{if .PriceMin}}{{.PriceMin}}{{else}}0{{end}} - {{if .PriceMax}}${{.PriceMax}}{{else}}Any{{end}}</p>
<p><strong>Additional Details:</strong></p>
<p>{{if .Message}}{{.Message}}{{else}}None provided{{end}}</p>`,
		},
		"application": {
			Subject: "New Credit Application",
			Body: `
<h2>New Credit Application</h2>
<h3>Buyer Information:</h3>
<p><strong>Name:</strong> {{.BuyerName}}</p>
<p><strong>Email:</strong> {{.BuyerEmail}}</p>
<p><strong>Phone:</strong> {{.BuyerPhone}}</p>
<p><strong>Address:</strong> {{.BuyerAddress}}</p>
{{if .VehicleInfo}}<h3>Vehicle of Interest:</h3><p>{{.VehicleInfo}}</p>{{end}}
{{if .HasCoBuyer}}
<h3>Co-Buyer Information:</h3>
<p><strong>Name:</strong> {{.CoBuyerName}}</p>
<p><strong>Email:</strong> {{.CoBuyerEmail}}</p>
{{end}}
<p><em>Full application details saved in database.</em></p>`,
		},
		"export_query": {
			Subject: "Export Query",
			Body: `
<h2>New Vehicle Export Query</h2>
<table>
  <tr><td><strong>Brand</strong></td><td>{{.Brand}}</td></tr>
  <tr><td><strong>Model</strong></td><td>{{.Model}}</td></tr>
  <tr><td><strong>Budget</strong></td><td>{{if .Budget}}{{.Budget}}{{else}}Not specified{{end}}</td></tr>
  <tr><td><strong>Miles</strong></td><td>{{.Miles}}</td></tr>
  <tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
  <tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
</table>
{{if .Notes}}<h3>Notes:</h3><p>{{.Notes}}</p>{{end}}
<p>This query was submitted through the Export Query form.</p>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.}}</p>",
	}
}
