package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/tablebill/tablebill/internal/model"
)

var (
	// ErrNothingSelected is returned by Remove when no present line is targeted.
	ErrNothingSelected = errors.New("no item selected for removal")
	// ErrLineNotFound is returned when a quantity edit targets a missing line.
	ErrLineNotFound = errors.New("order line not found")
)

// MinQuantity is the smallest quantity a line can hold.
const MinQuantity = 1

// Snapshot is the published state of a ledger after a mutation.
type Snapshot struct {
	Lines  []model.OrderLine
	Totals model.Totals
}

// Observer receives a snapshot after every mutation that changed the ledger.
type Observer func(Snapshot)

// Ledger is the ordered list of order lines on the current bill and the totals
// derived from them. A Ledger is not safe for concurrent use.
type Ledger struct {
	lines     []model.OrderLine
	totals    model.Totals
	observers []Observer
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{totals: model.ZeroTotals()}
}

// Subscribe registers an observer. Observers run synchronously, in
// registration order, after each publish.
func (l *Ledger) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

// AddOrIncrement adds one of entry to the bill. An existing line for the same
// entry ID is incremented in place; otherwise a new line is appended with the
// entry's current price.
func (l *Ledger) AddOrIncrement(entry model.MenuEntry) {
	if i := l.index(entry.ID); i >= 0 {
		l.lines[i].Quantity++
	} else {
		l.lines = append(l.lines, model.OrderLine{
			EntryID:   entry.ID,
			Name:      entry.Name,
			UnitPrice: entry.UnitPrice,
			Quantity:  MinQuantity,
		})
	}
	l.recompute()
}

// SetQuantity sets a line's quantity, clamped to MinQuantity. Setting the
// value a line already holds is a no-op and publishes nothing.
func (l *Ledger) SetQuantity(entryID string, quantity int) error {
	i := l.index(entryID)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrLineNotFound, entryID)
	}

	quantity = max(quantity, MinQuantity)
	if l.lines[i].Quantity == quantity {
		return nil
	}
	l.lines[i].Quantity = quantity
	l.recompute()
	return nil
}

// Remove deletes the line for entryID, keeping the order of the rest.
// An empty ID or one with no line returns ErrNothingSelected and changes nothing.
func (l *Ledger) Remove(entryID string) error {
	if entryID == "" {
		return ErrNothingSelected
	}
	i := l.index(entryID)
	if i < 0 {
		return fmt.Errorf("%w: %q is not on the bill", ErrNothingSelected, entryID)
	}
	l.lines = slices.Delete(l.lines, i, i+1)
	l.recompute()
	return nil
}

// Clear removes every line and resets the totals to zero.
func (l *Ledger) Clear() {
	l.lines = nil
	l.recompute()
}

// Lines returns a copy of the lines in first-insertion order.
func (l *Ledger) Lines() []model.OrderLine {
	return slices.Clone(l.lines)
}

// Line returns the line for entryID.
func (l *Ledger) Line(entryID string) (model.OrderLine, bool) {
	i := l.index(entryID)
	if i < 0 {
		return model.OrderLine{}, false
	}
	return l.lines[i], true
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.lines)
}

// Totals returns the totals as of the last mutation.
func (l *Ledger) Totals() model.Totals {
	return l.totals
}

// Snapshot returns the current lines and totals.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{Lines: l.Lines(), Totals: l.totals}
}

// recompute must run after every structural or quantity change, and only then.
func (l *Ledger) recompute() {
	l.totals = ComputeTotals(l.lines)
	if len(l.observers) == 0 {
		return
	}
	snap := l.Snapshot()
	for _, o := range l.observers {
		o(snap)
	}
}

func (l *Ledger) index(entryID string) int {
	return slices.IndexFunc(l.lines, func(line model.OrderLine) bool {
		return line.EntryID == entryID
	})
}
