package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateBrowseEvents:
		return header + "\n\n" + m.eventList.View()
	case stateSelectCategory:
		return header + "\n\n" + m.categoryList.View()
	case stateEventDetails:
		return header + "\n\n" + m.renderEventDetails()
	case stateSelectSeats:
		return header + "\n\n" + m.renderCheckout()
	case statePayment:
		return header + "\n\n" + m.renderPayment()
	case stateTickets:
		return header + "\n\n" + m.ticketList.View()
	case stateProfile:
		return header + "\n\n" + m.renderProfile()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("EventPass")
	sub := []string{}
	if m.category != "" {
		sub = append(sub, fmt.Sprintf("Category: %s", m.category))
	}
	if m.event.Title != "" && (m.state == stateEventDetails || m.state == stateSelectSeats || m.state == statePayment) {
		sub = append(sub, fmt.Sprintf("Event: %s", m.event.Title))
	}
	if m.state == stateTickets && m.ticketStatus != "" {
		sub = append(sub, fmt.Sprintf("Status: %s", m.ticketStatus))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • esc back • type to filter"
	switch m.state {
	case stateBrowseEvents:
		hints = "ctrl+c quit • type to filter • enter open event • ctrl+f categories • ctrl+t tickets • ctrl+p profile"
	case stateSelectCategory:
		hints = "ctrl+c quit • esc back • type to filter • enter pick category"
	case stateEventDetails:
		hints = "ctrl+c quit • esc back • enter select seats • f favorite • t tickets"
	case stateSelectSeats:
		hints = "ctrl+c quit • esc back • arrows move • space toggle seat • p promo code • enter continue"
	case statePayment:
		hints = "ctrl+c quit • esc back • enter confirm purchase"
	case stateTickets:
		hints = "ctrl+c quit • esc back • type to filter • ctrl+f status • ctrl+s sort • ctrl+e export pdf"
	case stateProfile:
		hints = "ctrl+c quit • esc back • tab switch field • enter save"
	}

	filterLine := ""
	if filter := m.activeFilterValue(); filter != "" {
		filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
	}

	noteLine := ""
	if m.statusNote != "" {
		noteLine = "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(m.statusNote)
	}

	return title + meta + filterLine + noteLine + "\n" + hint(hints)
}

func (m appModel) renderEventDetails() string {
	ev := m.event

	titleStyle := lipgloss.NewStyle().Bold(true)
	var b strings.Builder

	name := ev.Title
	if m.favorites[ev.Id] {
		name = "* " + name
	}
	b.WriteString(titleStyle.Render(name) + "\n\n")
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Date", ev.Date.Format("Mon 02 Jan 2006 15:04")))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Location", ev.Location))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Category", ev.Category))
	b.WriteString(fmt.Sprintf("%-10s %s\n", "Organizer", ev.Organizer))
	b.WriteString(fmt.Sprintf("%-10s from %s\n", "Price", formatPrice(ev.Price)))
	b.WriteString(fmt.Sprintf("%-10s %d of %d available\n", "Seats", ev.AvailableSeats, ev.Seats))
	if ev.Description != "" {
		b.WriteString("\n" + ev.Description + "\n")
	}

	return lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

func (m appModel) renderProfile() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Profile") + "\n\n")
	b.WriteString("Name\n" + m.nameInput.View() + "\n\n")
	b.WriteString("Email\n" + m.emailInput.View() + "\n")

	return lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63")).
		Render(b.String())
}

func (m appModel) activeFilterValue() string {
	switch m.state {
	case stateBrowseEvents:
		return m.eventList.FilterValue()
	case stateSelectCategory:
		return m.categoryList.FilterValue()
	case stateTickets:
		return m.ticketList.FilterValue()
	default:
		return ""
	}
}
