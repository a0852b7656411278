package catalog

import (
	"time"

	"eventpass-tui/model"
)

var seedTickets = []model.Ticket{
	{
		Id:           "t-1001",
		EventId:      "6",
		EventName:    "Stand-up Comedy Night",
		EventDate:    time.Date(2026, time.June, 20, 21, 0, 0, 0, time.UTC),
		Venue:        "The Punchline, San Francisco",
		SeatInfo:     "Row C, Seat 7",
		Price:        35,
		PurchaseDate: time.Date(2026, time.May, 2, 10, 12, 0, 0, time.UTC),
		TicketCode:   "8f14e45f-ceea-467f-a1d4-91b2c5a7e3d0",
		Status:       model.TicketValid,
	},
	{
		Id:           "t-1002",
		EventId:      "5",
		EventName:    "Street Food Carnival",
		EventDate:    time.Date(2025, time.July, 4, 12, 0, 0, 0, time.UTC),
		Venue:        "Pier 39, San Francisco",
		SeatInfo:     "General Admission",
		Price:        25,
		PurchaseDate: time.Date(2025, time.June, 18, 14, 40, 0, 0, time.UTC),
		TicketCode:   "45c48cce-2e2d-4fbd-aa1a-fc51c7c6ad26",
		Status:       model.TicketUsed,
	},
	{
		Id:           "t-1003",
		EventId:      "1",
		EventName:    "Summer Music Festival",
		EventDate:    time.Date(2026, time.July, 18, 16, 0, 0, 0, time.UTC),
		Venue:        "Golden Gate Park, San Francisco",
		SeatInfo:     "Row A, Seat 4",
		Price:        130,
		PurchaseDate: time.Date(2026, time.April, 29, 9, 5, 0, 0, time.UTC),
		TicketCode:   "d3d94468-02a4-4259-b55d-38e6d163e820",
		Status:       model.TicketValid,
	},
	{
		Id:           "t-1004",
		EventId:      "3",
		EventName:    "Championship Finals",
		EventDate:    time.Date(2026, time.June, 27, 19, 30, 0, 0, time.UTC),
		Venue:        "Chase Center, San Francisco",
		SeatInfo:     "Row F, Seat 11",
		Price:        70,
		PurchaseDate: time.Date(2026, time.May, 30, 20, 55, 0, 0, time.UTC),
		TicketCode:   "6512bd43-d9ca-46e2-a321-3e15cfdd4f72",
		Status:       model.TicketCancelled,
	},
}

// SeedTickets returns the pre-purchased tickets the tickets view starts with.
func SeedTickets() []model.Ticket {
	out := make([]model.Ticket, len(seedTickets))
	copy(out, seedTickets)
	return out
}
