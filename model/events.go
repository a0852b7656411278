package model

import "time"

type Event struct {
	Id             string    `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Date           time.Time `json:"date"`
	Location       string    `json:"location"`
	ImageUrl       string    `json:"imageUrl"`
	Price          float64   `json:"price"`
	Category       string    `json:"category"`
	Organizer      string    `json:"organizer"`
	Featured       bool      `json:"featured"`
	Seats          int       `json:"seats"`
	AvailableSeats int       `json:"availableSeats"`
}
