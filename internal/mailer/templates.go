package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

const dateLayout = "Monday, 02 January 2006"

var bookingOwnerTmpl = template.Must(template.New("booking_owner").Parse(`
<h2>New appointment request</h2>
<p><strong>{{.Name}}</strong> requested a meeting.</p>
<ul>
  <li>Date: {{.Date}}</li>
  <li>Time: {{.TimeSlot}}</li>
  <li>Email: {{.Email}}</li>
  {{if .Phone}}<li>Phone: {{.Phone}}</li>{{end}}
</ul>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p>Reference: {{.Reference}}</p>
`))

var bookingVisitorTmpl = template.Must(template.New("booking_visitor").Parse(`
<h2>Your appointment request was received</h2>
<p>Hi {{.Name}},</p>
<p>Your request for <strong>{{.Date}}</strong> at <strong>{{.TimeSlot}}</strong> is pending.
{{.OwnerName}} will confirm it by email at {{.Email}}.</p>
<p>Reference: {{.Reference}}</p>
`))

var contactRelayTmpl = template.Must(template.New("contact_relay").Parse(`
<h2>New contact message</h2>
<p>From <strong>{{.Name}}</strong> &lt;{{.Email}}&gt;</p>
{{if .Subject}}<p>Subject: {{.Subject}}</p>{{end}}
<p>{{.Body}}</p>
`))

type bookingMailData struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Date      string
	TimeSlot  string
	Reference string
	OwnerName string
}

func bookingData(ap *models.Appointment, ownerName string) bookingMailData {
	return bookingMailData{
		Name:      ap.Name,
		Email:     ap.Email,
		Phone:     ap.Phone,
		Message:   ap.Message,
		Date:      ap.Date.Format(dateLayout),
		TimeSlot:  ap.TimeSlot,
		Reference: ap.Reference,
		OwnerName: ownerName,
	}
}

func bookingOwnerMessage(ap *models.Appointment) (string, string, error) {
	subject := fmt.Sprintf("New appointment request: %s %s", ap.Date.Format("2006-01-02"), ap.TimeSlot)
	body, err := render(bookingOwnerTmpl, bookingData(ap, ""))
	return subject, body, err
}

func bookingVisitorMessage(ap *models.Appointment, ownerName string) (string, string, error) {
	subject := fmt.Sprintf("Appointment request received for %s", ap.Date.Format("2006-01-02"))
	body, err := render(bookingVisitorTmpl, bookingData(ap, ownerName))
	return subject, body, err
}

func contactRelayMessage(msg *models.ContactMessage) (string, string, error) {
	subject := msg.Subject
	if subject == "" {
		subject = "New contact message"
	}
	body, err := render(contactRelayTmpl, msg)
	return subject, body, err
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
