package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"

	"eventpass-tui/model"
	"eventpass-tui/store"
)

type eventItem struct {
	event    model.Event
	favorite bool
	recent   bool
}

func (e eventItem) Title() string {
	if e.favorite {
		return "* " + e.event.Title
	}
	return e.event.Title
}

func (e eventItem) Description() string {
	parts := []string{
		e.event.Date.Format("Mon 02 Jan 15:04"),
		e.event.Location,
		e.event.Category,
		fmt.Sprintf("from $%.0f", e.event.Price),
	}
	if e.recent {
		parts = append([]string{"Recent"}, parts...)
	}
	return strings.Join(parts, " • ")
}

func (e eventItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		e.event.Title,
		e.event.Category,
		e.event.Location,
		e.event.Organizer,
	}, " "))
}

type categoryItem struct {
	name  string
	count int
}

func (c categoryItem) Title() string {
	if c.name == "" {
		return "All Categories"
	}
	return c.name
}

func (c categoryItem) Description() string {
	return fmt.Sprintf("%d events", c.count)
}

func (c categoryItem) FilterValue() string {
	return strings.ToLower(c.Title())
}

type ticketItem struct {
	ticket model.Ticket
}

func (t ticketItem) Title() string {
	return fmt.Sprintf("%s • %s", t.ticket.EventName, t.ticket.SeatInfo)
}

func (t ticketItem) Description() string {
	return strings.Join([]string{
		t.ticket.EventDate.Format("Mon 02 Jan 2006"),
		t.ticket.Venue,
		formatPrice(t.ticket.Price),
		string(t.ticket.Status),
	}, " • ")
}

func (t ticketItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{
		t.ticket.EventName,
		t.ticket.Venue,
		t.ticket.SeatInfo,
		string(t.ticket.Status),
	}, " "))
}

func buildEventItems(events []model.Event, favorites map[string]bool, recents []store.RecentEvent) []list.Item {
	byID := map[string]model.Event{}
	for _, ev := range events {
		byID[ev.Id] = ev
	}

	var items []list.Item
	used := map[string]bool{}
	for _, recent := range recents {
		if ev, ok := byID[recent.ID]; ok && !used[ev.Id] {
			items = append(items, eventItem{event: ev, favorite: favorites[ev.Id], recent: true})
			used[ev.Id] = true
		}
	}
	for _, ev := range events {
		if !used[ev.Id] {
			items = append(items, eventItem{event: ev, favorite: favorites[ev.Id]})
		}
	}
	return items
}

func buildCategoryItems(events []model.Event, categories []string) []list.Item {
	counts := map[string]int{}
	for _, ev := range events {
		counts[ev.Category]++
	}

	items := make([]list.Item, 0, len(categories)+1)
	items = append(items, categoryItem{name: "", count: len(events)})
	for _, cat := range categories {
		items = append(items, categoryItem{name: cat, count: counts[cat]})
	}
	return items
}

func buildTicketItems(tickets []model.Ticket) []list.Item {
	items := make([]list.Item, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ticketItem{ticket: t})
	}
	return items
}
