package terminal

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/tablebill/tablebill/internal/controller"
	"github.com/tablebill/tablebill/internal/ledger"
	"github.com/tablebill/tablebill/internal/menu"
	"github.com/tablebill/tablebill/internal/model"
)

// Console renders the bill as plain text. It also tracks which category
// selector is open, so entries can be picked by their position in it.
type Console struct {
	out    io.Writer
	title  string
	open   model.Category
	picked int
}

var _ controller.Presenter = (*Console)(nil)

// NewConsole returns a Console writing to out. title is printed above each bill.
func NewConsole(out io.Writer, title string) *Console {
	return &Console{out: out, title: title}
}

// Render prints the order table followed by the totals.
func (c *Console) Render(lines []model.OrderLine, totals model.Totals) {
	if c.title != "" {
		fmt.Fprintf(c.out, "== %s ==\n", c.title)
	}
	if len(lines) == 0 {
		fmt.Fprintln(c.out, "(no items)")
	} else {
		tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "#\tItem\tPrice\tQty\tTotal\t")
		for i, l := range lines {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t\n", i+1, l.Name, Money(l.UnitPrice), l.Quantity, Money(l.LineTotal()))
		}
		tw.Flush()
	}
	printTotals(c.out, totals)
}

// ResetSelection clears the pick in category's selector. The selector stays
// open so the same position can be added again.
func (c *Console) ResetSelection(category model.Category) {
	if c.open == category {
		c.picked = 0
	}
}

// Notify prints an informational notice.
func (c *Console) Notify(n controller.Notice) {
	fmt.Fprintf(c.out, "note: %s\n", n)
}

// Open marks category as the open selector with nothing picked.
func (c *Console) Open(category model.Category) {
	c.open = category
	c.picked = 0
}

// Pick records n, 1-based, as the position picked in the open selector.
func (c *Console) Pick(n int) {
	c.picked = n
}

// Selected returns the open selector, or "" when none is open.
func (c *Console) Selected() model.Category {
	return c.open
}

// Picked returns the picked position in the open selector, or 0.
func (c *Console) Picked() int {
	return c.picked
}

// Money formats an amount in dollars with two decimals.
func Money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// PrintMenu lists the given categories of catalog, or all of them when none
// are given. Entries are numbered by their position in the category.
func PrintMenu(w io.Writer, catalog *menu.Catalog, categories ...model.Category) {
	if len(categories) == 0 {
		categories = catalog.Categories()
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for i, cat := range categories {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "%s\n", cat)
		for n, e := range catalog.ByCategory(cat) {
			fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", n+1, e.ID, e.Name, Money(e.UnitPrice))
		}
	}
	tw.Flush()
}

func printTotals(w io.Writer, t model.Totals) {
	rate := ledger.TaxRate.Shift(2).String()
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Subtotal:\t%s\t\n", Money(t.Subtotal))
	fmt.Fprintf(tw, "Tax (%s%%):\t%s\t\n", rate, Money(t.Tax))
	fmt.Fprintf(tw, "Total:\t%s\t\n", Money(t.Total))
	tw.Flush()
}
