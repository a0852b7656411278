package booking

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"eventpass-tui/model"
)

const (
	seatsPerRow         = 12
	basePrice           = 50.0
	rowPriceStep        = 10.0
	reservedProbability = 0.3
)

var rowLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// RowPrice returns the seat price for a 0-based row index. Row 0 sits closest
// to the stage and is the most expensive.
func RowPrice(rowIndex int) float64 {
	return basePrice + float64(len(rowLabels)-rowIndex)*rowPriceStep
}

// Session owns the seat inventory for one checkout flow. It is created when
// the seat-selection step is entered and discarded when the flow is left;
// nothing about it is ever persisted.
type Session struct {
	seats []model.Seat
	index map[string]int
}

// NewSession generates the full seat inventory: one seat per row label and
// seat number, each independently reserved with fixed probability. If rng is
// nil a time-seeded source is used; passing a seeded source makes generation
// reproducible.
func NewSession(rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		seats: make([]model.Seat, 0, len(rowLabels)*seatsPerRow),
		index: make(map[string]int, len(rowLabels)*seatsPerRow),
	}
	for rowIndex, row := range rowLabels {
		for number := 1; number <= seatsPerRow; number++ {
			status := model.SeatAvailable
			if rng.Float64() < reservedProbability {
				status = model.SeatReserved
			}
			seat := model.Seat{
				Id:     seatID(row, number),
				Row:    row,
				Number: number,
				Status: status,
				Price:  RowPrice(rowIndex),
			}
			s.index[seat.Id] = len(s.seats)
			s.seats = append(s.seats, seat)
		}
	}
	return s
}

// Toggle flips the seat with the given id between available and selected and
// reports whether anything changed. Reserved seats and unknown ids are
// no-ops. At most one seat changes per call.
func (s *Session) Toggle(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	switch s.seats[i].Status {
	case model.SeatAvailable:
		s.seats[i].Status = model.SeatSelected
	case model.SeatSelected:
		s.seats[i].Status = model.SeatAvailable
	default:
		return false
	}
	return true
}

// Seats returns a copy of the full inventory in generation order.
func (s *Session) Seats() []model.Seat {
	out := make([]model.Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// Rows groups the inventory by row for rendering, in row-label order.
func (s *Session) Rows() [][]model.Seat {
	rows := make([][]model.Seat, len(rowLabels))
	for i := range rows {
		start := i * seatsPerRow
		row := make([]model.Seat, seatsPerRow)
		copy(row, s.seats[start:start+seatsPerRow])
		rows[i] = row
	}
	return rows
}

// SelectedSeats returns the currently selected seats in row-then-number
// order. This is the list pushed to the order calculator after every toggle.
func (s *Session) SelectedSeats() []model.Seat {
	var selected []model.Seat
	for _, seat := range s.seats {
		if seat.Status == model.SeatSelected {
			selected = append(selected, seat)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Row != selected[j].Row {
			return selected[i].Row < selected[j].Row
		}
		return selected[i].Number < selected[j].Number
	})
	return selected
}

// RowLabels returns the fixed row labels in stage-first order.
func RowLabels() []string {
	out := make([]string, len(rowLabels))
	copy(out, rowLabels)
	return out
}

func seatID(row string, number int) string {
	return fmt.Sprintf("%s%d", row, number)
}
