package booking

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventpass-tui/model"
)

func seededSession(seed int64) *Session {
	return NewSession(rand.New(rand.NewSource(seed)))
}

func TestNewSession_Shape(t *testing.T) {
	s := seededSession(1)
	seats := s.Seats()

	require.Len(t, seats, 96)

	perRow := map[string]int{}
	ids := map[string]bool{}
	for _, seat := range seats {
		perRow[seat.Row]++
		assert.False(t, ids[seat.Id], "duplicate id %s", seat.Id)
		ids[seat.Id] = true
		assert.GreaterOrEqual(t, seat.Number, 1)
		assert.LessOrEqual(t, seat.Number, 12)
	}
	require.Len(t, perRow, 8)
	for row, count := range perRow {
		assert.Equal(t, 12, count, "row %s", row)
	}
}

func TestRowPrice(t *testing.T) {
	assert.Equal(t, 130.0, RowPrice(0))
	assert.Equal(t, 60.0, RowPrice(7))

	s := seededSession(2)
	for i, row := range s.Rows() {
		for _, seat := range row {
			assert.Equal(t, RowPrice(i), seat.Price, "seat %s", seat.Id)
		}
	}
}

func TestNewSession_Reproducible(t *testing.T) {
	a := seededSession(42).Seats()
	b := seededSession(42).Seats()
	assert.Equal(t, a, b)
}

func TestToggle_Involution(t *testing.T) {
	s := seededSession(3)

	var target model.Seat
	for _, seat := range s.Seats() {
		if seat.Status == model.SeatAvailable {
			target = seat
			break
		}
	}
	require.NotEmpty(t, target.Id, "seed produced no available seat")

	assert.True(t, s.Toggle(target.Id))
	assert.Equal(t, model.SeatSelected, statusOf(t, s, target.Id))

	assert.True(t, s.Toggle(target.Id))
	assert.Equal(t, model.SeatAvailable, statusOf(t, s, target.Id))
}

func TestToggle_ReservedIsAbsorbing(t *testing.T) {
	s := seededSession(4)

	var reserved []string
	for _, seat := range s.Seats() {
		if seat.Status == model.SeatReserved {
			reserved = append(reserved, seat.Id)
		}
	}
	require.NotEmpty(t, reserved, "seed produced no reserved seat")

	for _, id := range reserved {
		for i := 0; i < 3; i++ {
			assert.False(t, s.Toggle(id))
		}
		assert.Equal(t, model.SeatReserved, statusOf(t, s, id))
	}
}

func TestToggle_Isolation(t *testing.T) {
	s := seededSession(5)
	before := s.Seats()

	var target string
	for _, seat := range before {
		if seat.Status == model.SeatAvailable {
			target = seat.Id
			break
		}
	}
	require.NotEmpty(t, target)

	s.Toggle(target)
	after := s.Seats()

	changed := 0
	for i := range before {
		if before[i].Id == target {
			assert.Equal(t, before[i].Price, after[i].Price)
			assert.Equal(t, before[i].Row, after[i].Row)
			assert.Equal(t, before[i].Number, after[i].Number)
			if before[i].Status != after[i].Status {
				changed++
			}
			continue
		}
		assert.Equal(t, before[i], after[i], "seat %s must be untouched", before[i].Id)
	}
	assert.Equal(t, 1, changed)
}

func TestToggle_UnknownIDIsNoop(t *testing.T) {
	s := seededSession(6)
	before := s.Seats()

	assert.False(t, s.Toggle("Z99"))
	assert.False(t, s.Toggle(""))
	assert.Equal(t, before, s.Seats())
}

func TestSelectedSeats_RowThenNumberOrder(t *testing.T) {
	s := seededSession(7)

	// Select a handful of available seats in scrambled order.
	var picked []string
	for _, seat := range s.Seats() {
		if seat.Status == model.SeatAvailable {
			picked = append(picked, seat.Id)
		}
		if len(picked) == 5 {
			break
		}
	}
	require.Len(t, picked, 5)
	for i := len(picked) - 1; i >= 0; i-- {
		s.Toggle(picked[i])
	}

	selected := s.SelectedSeats()
	require.Len(t, selected, 5)
	for i := 1; i < len(selected); i++ {
		prev, cur := selected[i-1], selected[i]
		inOrder := prev.Row < cur.Row || (prev.Row == cur.Row && prev.Number < cur.Number)
		assert.True(t, inOrder, "%s before %s", prev.Id, cur.Id)
	}
}

func statusOf(t *testing.T, s *Session, id string) model.SeatStatus {
	t.Helper()
	for _, seat := range s.Seats() {
		if seat.Id == id {
			return seat.Status
		}
	}
	t.Fatalf("seat %s not found", id)
	return ""
}
