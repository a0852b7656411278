package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventpass-tui/model"
)

func twoSeats() []model.Seat {
	return []model.Seat{
		{Id: "A1", Row: "A", Number: 1, Status: model.SeatSelected, Price: 130},
		{Id: "B3", Row: "B", Number: 3, Status: model.SeatSelected, Price: 120},
	}
}

func TestComputeTotals_NoPromo(t *testing.T) {
	totals := ComputeTotals(twoSeats(), false)

	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 25.0, totals.ServiceFee)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 275.0, totals.Total)
}

func TestComputeTotals_Pure(t *testing.T) {
	seats := twoSeats()
	first := ComputeTotals(seats, true)
	second := ComputeTotals(seats, true)
	assert.Equal(t, first, second)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil, true)
	assert.Equal(t, Totals{}, totals)
}

func TestApplyPromo_NormalizesInput(t *testing.T) {
	o := NewOrder()
	o.SetSeats(twoSeats())

	assert.True(t, o.ApplyPromo(" DISCOUNT15 "))
	assert.True(t, o.PromoApplied())

	totals := o.Totals()
	assert.Equal(t, 250.0, totals.Subtotal)
	assert.Equal(t, 25.0, totals.ServiceFee)
	assert.Equal(t, 37.5, totals.Discount)
	assert.Equal(t, 237.5, totals.Total)
}

func TestApplyPromo_RejectsOtherCodes(t *testing.T) {
	o := NewOrder()
	o.SetSeats(twoSeats())

	assert.False(t, o.ApplyPromo("discount10"))
	assert.False(t, o.PromoApplied())
	assert.Equal(t, 275.0, o.Totals().Total)
}

func TestApplyPromo_NeverReverts(t *testing.T) {
	o := NewOrder()
	o.ApplyPromo("discount15")
	assert.True(t, o.PromoApplied())

	assert.True(t, o.ApplyPromo("bogus"))
	assert.True(t, o.ApplyPromo("discount15"))
	assert.True(t, o.PromoApplied())
}

func TestCanCheckout(t *testing.T) {
	o := NewOrder()
	assert.False(t, o.CanCheckout())

	o.SetSeats([]model.Seat{{Id: "H1", Row: "H", Number: 1, Status: model.SeatSelected, Price: 60}})
	assert.True(t, o.CanCheckout())
	assert.Equal(t, 66.0, o.Totals().Total)

	o.SetSeats(nil)
	assert.False(t, o.CanCheckout())
}
