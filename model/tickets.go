package model

import "time"

// TicketStatus mirrors the lifecycle a purchased ticket moves through.
type TicketStatus string

const (
	TicketValid     TicketStatus = "valid"
	TicketUsed      TicketStatus = "used"
	TicketCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	Id           string       `json:"id"`
	EventId      string       `json:"eventId"`
	EventName    string       `json:"eventName"`
	EventDate    time.Time    `json:"eventDate"`
	Venue        string       `json:"venue"`
	SeatInfo     string       `json:"seatInfo"`
	Price        float64      `json:"price"`
	PurchaseDate time.Time    `json:"purchaseDate"`
	TicketCode   string       `json:"ticketCode"`
	Status       TicketStatus `json:"status"`
}
