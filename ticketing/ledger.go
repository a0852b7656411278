// Package ticketing turns a paid seat selection into tickets and manages the
// in-memory ticket list behind the tickets view.
package ticketing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"eventpass-tui/model"
)

// Issue creates one valid ticket per purchased seat. Ticket codes are fresh
// UUIDs; seat info follows the "Row A, Seat 1" display form.
func Issue(event model.Event, seats []model.Seat, purchasedAt time.Time) []model.Ticket {
	tickets := make([]model.Ticket, 0, len(seats))
	for _, seat := range seats {
		tickets = append(tickets, model.Ticket{
			Id:           "t-" + uuid.NewString(),
			EventId:      event.Id,
			EventName:    event.Title,
			EventDate:    event.Date,
			Venue:        event.Location,
			SeatInfo:     fmt.Sprintf("Row %s, Seat %d", seat.Row, seat.Number),
			Price:        seat.Price,
			PurchaseDate: purchasedAt,
			TicketCode:   uuid.NewString(),
			Status:       model.TicketValid,
		})
	}
	return tickets
}

// Ledger is the session-lifetime ticket list: the seeded purchases plus
// anything issued during this run. It is never persisted.
type Ledger struct {
	tickets []model.Ticket
}

func NewLedger(seed []model.Ticket) *Ledger {
	l := &Ledger{tickets: make([]model.Ticket, len(seed))}
	copy(l.tickets, seed)
	return l
}

// Add appends issued tickets to the ledger.
func (l *Ledger) Add(tickets ...model.Ticket) {
	l.tickets = append(l.tickets, tickets...)
}

// All returns every ticket in insertion order.
func (l *Ledger) All() []model.Ticket {
	out := make([]model.Ticket, len(l.tickets))
	copy(out, l.tickets)
	return out
}

// Filter returns tickets with the given status; an empty status means all.
func (l *Ledger) Filter(status model.TicketStatus) []model.Ticket {
	if status == "" {
		return l.All()
	}
	var out []model.Ticket
	for _, t := range l.tickets {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// SortByDate orders tickets by event date. Ties keep insertion order.
func SortByDate(tickets []model.Ticket, ascending bool) []model.Ticket {
	out := make([]model.Ticket, len(tickets))
	copy(out, tickets)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].EventDate.Before(out[j].EventDate)
		}
		return out[j].EventDate.Before(out[i].EventDate)
	})
	return out
}
