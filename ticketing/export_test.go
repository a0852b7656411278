package ticketing

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpass-tui/model"
)

func exportTicket() model.Ticket {
	return model.Ticket{
		Id:           "t-2001",
		EventName:    "Jazz at the Bay",
		EventDate:    time.Date(2026, time.August, 22, 19, 0, 0, 0, time.UTC),
		Venue:        "Aquatic Park, San Francisco",
		SeatInfo:     "Row B, Seat 6",
		Price:        120,
		PurchaseDate: time.Date(2026, time.July, 1, 10, 0, 0, 0, time.UTC),
		TicketCode:   "c4ca4238-a0b9-4382-8dcc-509a6f75849b",
		Status:       model.TicketValid,
	}
}

func TestTicketQRPNG(t *testing.T) {
	png, err := TicketQRPNG(exportTicket())
	require.NoError(t, err)
	require.NotEmpty(t, png)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestExportPDF(t *testing.T) {
	ticket := exportTicket()
	path := filepath.Join(t.TempDir(), ExportFileName(ticket))

	written, err := ExportPDF(ticket, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "jazz-at-the-bay-c4ca4238.pdf", ExportFileName(exportTicket()))

	odd := exportTicket()
	odd.EventName = "  ?!  "
	odd.TicketCode = "shortcode"
	assert.Equal(t, "ticket-shortcod.pdf", ExportFileName(odd))
}
