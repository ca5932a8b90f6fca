package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tablebill/tablebill/internal/model"
)

// TaxRate is the fixed sales tax applied to every bill.
var TaxRate = decimal.RequireFromString("0.13")

// taxPlaces is the precision tax is rounded to.
const taxPlaces = 2

// ComputeTotals derives subtotal, tax, and total from lines.
// Tax is rounded half away from zero to whole cents.
func ComputeTotals(lines []model.OrderLine) model.Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}
	tax := subtotal.Mul(TaxRate).Round(taxPlaces)
	return model.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
