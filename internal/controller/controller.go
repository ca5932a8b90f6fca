package controller

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tablebill/tablebill/internal/ledger"
	"github.com/tablebill/tablebill/internal/menu"
	"github.com/tablebill/tablebill/internal/model"
)

// Notice is an informational message for the user. Notices are not errors.
type Notice string

// NoticeNothingSelected is shown when removal is requested without a line.
const NoticeNothingSelected Notice = "Please select an item to remove from the order list."

// Presenter is the display side of the bill.
type Presenter interface {
	// Render shows the current lines and totals. Called after every change.
	Render(lines []model.OrderLine, totals model.Totals)
	// ResetSelection clears the selector for category so the same item can be picked again.
	ResetSelection(category model.Category)
	// Notify shows an informational notice.
	Notify(n Notice)
}

// EntryLookup resolves a menu entry by ID.
type EntryLookup interface {
	Get(entryID string) (model.MenuEntry, bool)
}

// Controller turns user actions into ledger operations and pushes the
// results to a Presenter. Every method completes synchronously.
type Controller struct {
	catalog   EntryLookup
	ledger    *ledger.Ledger
	presenter Presenter
	log       logrus.FieldLogger
	billID    uuid.UUID
}

// New wires a controller to a ledger and presenter. The presenter is
// subscribed to the ledger; call Refresh for the initial render.
func New(catalog EntryLookup, l *ledger.Ledger, p Presenter, log logrus.FieldLogger) *Controller {
	c := &Controller{
		catalog:   catalog,
		ledger:    l,
		presenter: p,
		log:       log,
		billID:    uuid.New(),
	}
	l.Subscribe(c.publish)
	return c
}

// BillID identifies the current bill. It changes when the bill is cleared.
func (c *Controller) BillID() uuid.UUID {
	return c.billID
}

// Snapshot returns the current lines and totals.
func (c *Controller) Snapshot() ledger.Snapshot {
	return c.ledger.Snapshot()
}

// SelectItem handles a pick from a category selector: one more of the entry
// goes on the bill and that category's selector is reset.
func (c *Controller) SelectItem(entryID string) error {
	entry, ok := c.catalog.Get(entryID)
	if !ok {
		return fmt.Errorf("%w: %q", menu.ErrUnknownEntry, entryID)
	}

	c.ledger.AddOrIncrement(entry)
	line, _ := c.ledger.Line(entry.ID)
	c.logger().WithFields(logrus.Fields{
		"entry_id": entry.ID,
		"quantity": line.Quantity,
	}).Debug("item selected")

	c.presenter.ResetSelection(entry.Category)
	return nil
}

// EditQuantity applies a direct quantity edit. Values below one become one.
func (c *Controller) EditQuantity(entryID string, quantity int) error {
	if err := c.ledger.SetQuantity(entryID, quantity); err != nil {
		return fmt.Errorf("editing quantity: %w", err)
	}
	c.logger().WithFields(logrus.Fields{
		"entry_id":  entryID,
		"requested": quantity,
	}).Debug("quantity edited")
	return nil
}

// RequestRemove removes the targeted line. With no target, or a target not on
// the bill, the user is notified instead. Reports whether a line was removed.
func (c *Controller) RequestRemove(entryID string) bool {
	if err := c.ledger.Remove(entryID); err != nil {
		c.logger().WithError(err).Debug("nothing to remove")
		c.presenter.Notify(NoticeNothingSelected)
		return false
	}
	c.logger().WithField("entry_id", entryID).Debug("line removed")
	return true
}

// RequestClear empties the bill and starts a new one.
func (c *Controller) RequestClear() {
	c.ledger.Clear()
	c.logger().Debug("bill cleared")
	c.billID = uuid.New()
}

// Refresh re-renders the current state.
func (c *Controller) Refresh() {
	c.publish(c.ledger.Snapshot())
}

func (c *Controller) publish(s ledger.Snapshot) {
	c.presenter.Render(s.Lines, s.Totals)
}

func (c *Controller) logger() logrus.FieldLogger {
	return c.log.WithFields(logrus.Fields{
		"bill_id": c.billID.String(),
		"lines":   c.ledger.Len(),
		"total":   c.ledger.Totals().Total.StringFixed(2),
	})
}
