package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"eventpass-tui/model"
)

func (m *appModel) moveCursor(dRow, dCol int) {
	if m.session == nil {
		return
	}
	rows := m.session.Rows()
	m.cursorRow += dRow
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if m.cursorRow > len(rows)-1 {
		m.cursorRow = len(rows) - 1
	}
	cols := len(rows[m.cursorRow])
	m.cursorCol += dCol
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol > cols-1 {
		m.cursorCol = cols - 1
	}
}

func (m *appModel) toggleSeatUnderCursor() {
	if m.session == nil {
		return
	}
	rows := m.session.Rows()
	seat := rows[m.cursorRow][m.cursorCol]
	if m.session.Toggle(seat.Id) {
		// Push the fresh selection to the order calculator.
		m.order.SetSeats(m.session.SelectedSeats())
	}
}

func (m appModel) renderSeatMap() string {
	rows := m.session.Rows()

	cellWidth := 2
	var b strings.Builder

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	seatStyleReserved := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatStyleCursor := lipgloss.NewStyle().Reverse(true)

	gridWidth := len(rows[0])*(cellWidth+1) - 1
	stageBar := screenBarBlock(gridWidth, "STAGE")

	b.WriteString(strings.Repeat(" ", 2))
	b.WriteString(stageStyleBorder.Render(stageBar.top))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", 2))
	b.WriteString(stageStyle.Render(stageBar.mid))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", 2))
	b.WriteString(stageStyleBorder.Render(stageBar.bot))
	b.WriteString("\n\n")

	for r, row := range rows {
		label := row[0].Row
		b.WriteString(fmt.Sprintf("%s ", label))
		for c, seat := range row {
			text := padCell(fmt.Sprintf("%d", seat.Number), cellWidth)
			var rendered string
			switch seat.Status {
			case model.SeatAvailable:
				rendered = seatStyleAvailable.Render(text)
			case model.SeatSelected:
				rendered = seatStyleSelected.Render(text)
			default:
				rendered = seatStyleReserved.Render(text)
			}
			if r == m.cursorRow && c == m.cursorCol {
				rendered = seatStyleCursor.Render(text)
			}
			b.WriteString(rendered)
			if c < len(row)-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %s\n", label))
	}

	available, selected, reserved := 0, 0, 0
	for _, row := range rows {
		for _, seat := range row {
			switch seat.Status {
			case model.SeatAvailable:
				available++
			case model.SeatSelected:
				selected++
			default:
				reserved++
			}
		}
	}

	legend := "Legend: green available • magenta selected • gray reserved"
	counts := fmt.Sprintf("Available: %d • Selected: %d • Reserved: %d", available, selected, reserved)
	return b.String() + "\n" + hint(legend) + "\n" + hint(counts)
}

func (m appModel) renderOrderSummary() string {
	totals := m.order.Totals()
	selected := m.order.SelectedSeats()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Order Summary"))
	b.WriteString("\n\n")
	b.WriteString(m.event.Title + "\n")
	b.WriteString(hint(m.event.Location) + "\n\n")

	b.WriteString(fmt.Sprintf("Selected Seats (%d)\n", len(selected)))
	if len(selected) == 0 {
		b.WriteString(hint("No seats selected") + "\n")
	}
	for _, seat := range selected {
		b.WriteString(fmt.Sprintf("  Row %s, Seat %-2d %10s\n", seat.Row, seat.Number, formatPrice(seat.Price)))
	}
	b.WriteString("\n")

	if m.order.PromoApplied() {
		b.WriteString("Promo: applied (15%)\n")
	} else {
		b.WriteString(fmt.Sprintf("Promo: %s\n", m.promoInput.View()))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%-12s %10s\n", "Subtotal", formatPrice(totals.Subtotal)))
	b.WriteString(fmt.Sprintf("%-12s %10s\n", "Service Fee", formatPrice(totals.ServiceFee)))
	if m.order.PromoApplied() {
		b.WriteString(fmt.Sprintf("%-12s %10s\n", "Discount", "-"+formatPrice(totals.Discount)))
	}
	b.WriteString(fmt.Sprintf("%-12s %10s\n", "Total", formatPrice(totals.Total)))
	b.WriteString("\n")

	if m.order.CanCheckout() {
		b.WriteString(hint("enter continue to payment"))
	} else {
		b.WriteString(hint("select at least one seat to continue"))
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

func (m appModel) renderCheckout() string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSeatMap(),
		"  ",
		m.renderOrderSummary(),
	)
}

func (m appModel) renderPayment() string {
	totals := m.order.Totals()
	selected := m.order.SelectedSeats()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Payment") + "\n\n")
	b.WriteString(fmt.Sprintf("%s • %s\n", m.event.Title, m.event.Location))
	b.WriteString(fmt.Sprintf("%d seat(s) • Total %s\n\n", len(selected), formatPrice(totals.Total)))
	b.WriteString(hint("No payment details are collected in this demo.") + "\n\n")
	b.WriteString("Press enter to confirm the purchase and issue tickets.\n")
	b.WriteString(hint("esc back to seat selection"))

	return lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

var (
	stageStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214"))
	stageStyleBorder = lipgloss.NewStyle().
				Foreground(lipgloss.Color("214")).
				Background(lipgloss.Color("236"))
)

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
