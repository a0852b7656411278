package model

// SeatStatus is one of the three seat states. Reserved is assigned only at
// generation time and never leaves that state.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatSelected  SeatStatus = "selected"
	SeatReserved  SeatStatus = "reserved"
)

type Seat struct {
	Id     string     `json:"id"`
	Row    string     `json:"row"`
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
	Price  float64    `json:"price"`
}
