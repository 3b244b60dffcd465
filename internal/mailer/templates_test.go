package mailer

import (
	"strings"
	"testing"
	"time"

	"github.com/lucasmonteiro/portfolio-api/internal/models"
)

func sampleAppointment() *models.Appointment {
	return &models.Appointment{
		Reference: "3f2c9a10-aaaa-bbbb-cccc-000000000001",
		Date:      time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot:  "09:00-10:00",
		Name:      "Ana Souza",
		Email:     "ana.souza@example.com",
		Phone:     "+55 11 99999-0000",
		Message:   "Quick intro call",
		Status:    "PENDING",
	}
}

func TestBookingOwnerMessage(t *testing.T) {
	subject, body, err := bookingOwnerMessage(sampleAppointment())
	if err != nil {
		t.Fatal(err)
	}

	if subject != "New appointment request: 2025-06-15 09:00-10:00" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Ana Souza", "Sunday, 15 June 2025", "09:00-10:00", "ana.souza@example.com", "+55 11 99999-0000", "Quick intro call", "3f2c9a10"} {
		if !strings.Contains(body, want) {
			t.Errorf("owner body missing %q", want)
		}
	}
}

func TestBookingVisitorMessage(t *testing.T) {
	subject, body, err := bookingVisitorMessage(sampleAppointment(), "Lucas Monteiro")
	if err != nil {
		t.Fatal(err)
	}

	if subject != "Appointment request received for 2025-06-15" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Hi Ana Souza", "Sunday, 15 June 2025", "09:00-10:00", "Lucas Monteiro", "3f2c9a10"} {
		if !strings.Contains(body, want) {
			t.Errorf("visitor body missing %q", want)
		}
	}
}

func TestBookingMessages_OptionalFieldsOmitted(t *testing.T) {
	ap := sampleAppointment()
	ap.Phone = ""
	ap.Message = ""

	_, body, err := bookingOwnerMessage(ap)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body, "Phone:") {
		t.Error("empty phone must not render")
	}
}

func TestContactRelayMessage(t *testing.T) {
	msg := &models.ContactMessage{
		Name:    "Bruno Lima",
		Email:   "bruno@example.com",
		Subject: "Freelance project",
		Body:    "I'd like to discuss a project.",
	}

	subject, body, err := contactRelayMessage(msg)
	if err != nil {
		t.Fatal(err)
	}
	if subject != "Freelance project" {
		t.Fatalf("unexpected subject: %q", subject)
	}
	for _, want := range []string{"Bruno Lima", "bruno@example.com", "discuss a project"} {
		if !strings.Contains(body, want) {
			t.Errorf("relay body missing %q", want)
		}
	}

	msg.Subject = ""
	subject, _, err = contactRelayMessage(msg)
	if err != nil {
		t.Fatal(err)
	}
	if subject != "New contact message" {
		t.Fatalf("expected default subject, got %q", subject)
	}
}
