package ticketing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"eventpass-tui/model"
)

const qrSizePx = 300

// TicketQRPNG encodes the ticket code as a PNG QR image. The code is the only
// payload; anything scanning it resolves the ticket on its own side.
func TicketQRPNG(t model.Ticket) ([]byte, error) {
	qr, err := qrcode.New(t.TicketCode, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}
	png, err := qr.PNG(qrSizePx)
	if err != nil {
		return nil, fmt.Errorf("encode qr png: %w", err)
	}
	return png, nil
}

// ExportPDF writes an e-ticket PDF for the given ticket to path: QR code on
// top, event and seat details below. Returns the written path.
func ExportPDF(t model.Ticket, path string) (string, error) {
	png, err := TicketQRPNG(t)
	if err != nil {
		return "", err
	}
	payload, err := renderPDF(t, png)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ExportFileName derives a filesystem-friendly name for a ticket export.
func ExportFileName(t model.Ticket) string {
	name := strings.ToLower(strings.TrimSpace(t.EventName))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		default:
			return -1
		}
	}, name)
	if name == "" {
		name = "ticket"
	}
	return fmt.Sprintf("%s-%s.pdf", name, shortCode(t.TicketCode))
}

func shortCode(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	if len(code) > 8 {
		return code[:8]
	}
	return code
}

func renderPDF(t model.Ticket, qrPNG []byte) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	imgName := "qr_" + t.TicketCode
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(qrPNG))
	qrX := (210.0 - 90.0) / 2
	pdf.ImageOptions(imgName, qrX, 20, 90, 90, false, opts, 0, "")
	pdf.SetY(115)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.4)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 20)
	pdf.MultiCell(0, 9, t.EventName, "", "C", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 13)
	pdf.CellFormat(0, 7, t.Venue, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, t.EventDate.Format("January 2, 2006 at 3:04 PM"), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(95, 9, "Seat", "", 0, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(95, 9, "  "+t.SeatInfo, "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(95, 9, "Price", "", 0, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(95, 9, fmt.Sprintf("  $%.2f", t.Price), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 14)
	pdf.CellFormat(95, 9, "Purchased", "", 0, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(95, 9, "  "+t.PurchaseDate.Format(time.DateOnly), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	pdf.SetFont("Arial", "I", 11)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 7, "Ticket Code: "+t.TicketCode, "", 1, "C", false, 0, "")
	pdf.MultiCell(0, 6, "Bring this ticket to the event and scan the QR code at the entrance.", "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}
