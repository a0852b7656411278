package booking

import (
	"strings"

	"eventpass-tui/model"
)

const (
	acceptedPromoCode = "discount15"
	serviceFeeRate    = 0.10
	discountRate      = 0.15
)

// Totals is the derived price breakdown for a seat selection. Values are kept
// unrounded; 2-decimal formatting belongs to the rendering layer.
type Totals struct {
	Subtotal   float64
	ServiceFee float64
	Discount   float64
	Total      float64
}

// ComputeTotals derives the order summary from the current selection and the
// promo flag. Pure and deterministic: identical inputs yield identical
// outputs.
func ComputeTotals(selected []model.Seat, promoApplied bool) Totals {
	var subtotal float64
	for _, seat := range selected {
		subtotal += seat.Price
	}
	fee := subtotal * serviceFeeRate
	var discount float64
	if promoApplied {
		discount = subtotal * discountRate
	}
	return Totals{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Discount:   discount,
		Total:      subtotal + fee - discount,
	}
}

// Order tracks the seat selection handed over by the session and the promo
// state for one checkout flow.
type Order struct {
	selected     []model.Seat
	promoApplied bool
}

func NewOrder() *Order {
	return &Order{}
}

// SetSeats replaces the current selection. The order keeps a read-only view;
// it never mutates seats.
func (o *Order) SetSeats(selected []model.Seat) {
	o.selected = selected
}

// SelectedSeats returns the selection in the order it was handed over.
func (o *Order) SelectedSeats() []model.Seat {
	return o.selected
}

// ApplyPromo normalizes the raw user input and, on an exact match against the
// accepted code, marks the promo as applied for the rest of the order's life.
// Any other input changes nothing; once applied the flag never reverts.
// Reports whether the promo is applied after the call.
func (o *Order) ApplyPromo(raw string) bool {
	if o.promoApplied {
		return true
	}
	if strings.ToLower(strings.TrimSpace(raw)) == acceptedPromoCode {
		o.promoApplied = true
	}
	return o.promoApplied
}

func (o *Order) PromoApplied() bool {
	return o.promoApplied
}

// Totals recomputes the price breakdown from the current state.
func (o *Order) Totals() Totals {
	return ComputeTotals(o.selected, o.promoApplied)
}

// CanCheckout gates progression past seat selection: true iff at least one
// seat is selected.
func (o *Order) CanCheckout() bool {
	return len(o.selected) > 0
}
