package docs

import (
	"bytes"
	"fmt"
	"time"

	"travelsathi/internal/store"

	"github.com/phpdave11/gofpdf"
)

// BookingReceipt renders a printable receipt for one booking record and
// returns the PDF bytes together with a download filename.
func BookingReceipt(booking store.Record) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRAVELSATHI BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", safe(store.AsString(booking["id"]))),
		fmt.Sprintf("Type         : %s", safe(store.AsString(booking["type"]))),
		fmt.Sprintf("Item ID      : %s", safe(store.AsString(booking["item_id"]))),
		fmt.Sprintf("Persons      : %s", safe(store.AsString(booking["num_persons"]))),
		fmt.Sprintf("Total Amount : %s", formatAmount(booking["total_amount"])),
		fmt.Sprintf("Booked At    : %s", formatDate(booking["booking_date"])),
		fmt.Sprintf("Status       : %s", safe(store.AsString(booking["status"]))),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", time.Now().UTC().Format("2006-01-02 15:04 UTC")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("receipt-%s.pdf", safe(store.AsString(booking["id"])))
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatAmount(v any) string {
	if f, ok := store.AsFloat(v); ok {
		return fmt.Sprintf("%.2f", f)
	}
	return safe(store.AsString(v))
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		return t.UTC().Format("2006-01-02 15:04")
	case nil:
		return "-"
	default:
		return safe(store.AsString(v))
	}
}
