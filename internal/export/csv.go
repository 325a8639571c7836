// Package export renders registrations for the admin dashboard download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/EventRegistration/internal/domain"
)

const (
	eventDateLayout  = "2006-01-02 15:04"
	registeredLayout = time.RFC3339
)

var header = []string{
	"Event", "Date", "Location",
	"First Name", "Last Name", "Email", "School", "Position",
	"Tickets", "Registered At",
}

// formulaPrefixes start a formula in common spreadsheet apps.
const formulaPrefixes = "=+-@\t\r"

// cell keeps free-text values from being evaluated when the export is opened
// in a spreadsheet.
func cell(v string) string {
	if v != "" && strings.ContainsRune(formulaPrefixes, rune(v[0])) {
		return "'" + v
	}
	return v
}

// FileName is the attachment name for an export taken at t.
func FileName(t time.Time) string {
	return fmt.Sprintf("registrations-%s.csv", t.UTC().Format("2006-01-02"))
}

func WriteRegistrations(w io.Writer, regs []*domain.RegistrationDetails) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, d := range regs {
		r := d.Registration
		record := []string{
			cell(d.Event.Title),
			d.Event.Date.UTC().Format(eventDateLayout),
			cell(d.Event.Location),
			cell(r.FirstName),
			cell(r.LastName),
			cell(r.Email),
			cell(r.School),
			cell(r.Position),
			strconv.Itoa(r.TicketQuantity),
			r.CreatedAt.UTC().Format(registeredLayout),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write registration %s: %w", r.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
