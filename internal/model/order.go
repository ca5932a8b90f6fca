package model

import "github.com/shopspring/decimal"

// OrderLine is one row on the bill.
type OrderLine struct {
	EntryID   string
	Name      string
	UnitPrice decimal.Decimal // captured when the line is created
	Quantity  int
}

// LineTotal returns UnitPrice x Quantity.
func (l OrderLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Totals are derived from the order lines and never set directly.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ZeroTotals returns the totals of an empty bill.
func ZeroTotals() Totals {
	return Totals{Subtotal: decimal.Zero, Tax: decimal.Zero, Total: decimal.Zero}
}
