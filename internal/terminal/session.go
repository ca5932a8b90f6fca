package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tablebill/tablebill/internal/controller"
	"github.com/tablebill/tablebill/internal/menu"
	"github.com/tablebill/tablebill/internal/model"
)

// Help lists the session commands.
const Help = `commands:
  menu [category]        list the menu, or open one category's selector
  add <n|id|name>        add an item (n picks from the open selector)
  qty <row|id|name> <n>  set a line's quantity
  remove [row|id|name]   remove a line
  clear                  start a new bill
  show                   print the bill
  help                   show this help
  quit                   leave`

const prompt = "> "

// Session runs an interactive bill over line-oriented input.
type Session struct {
	catalog *menu.Catalog
	ctrl    *controller.Controller
	console *Console
	out     io.Writer
}

// NewSession returns a session driving ctrl. console must be the presenter ctrl renders to.
func NewSession(catalog *menu.Catalog, ctrl *controller.Controller, console *Console, out io.Writer) *Session {
	return &Session{catalog: catalog, ctrl: ctrl, console: console, out: out}
}

// Run reads commands from in until quit or EOF.
func (s *Session) Run(in io.Reader) error {
	s.ctrl.Refresh()
	fmt.Fprintln(s.out, `type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		if quit := s.Exec(scanner.Text()); quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// Exec runs one command line and reports whether the session should end.
// Problems with the input are printed; they never end the session.
func (s *Session) Exec(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "menu", "m":
		err = s.menu(args)
	case "add", "a":
		err = s.add(args)
	case "qty", "q":
		err = s.quantity(args)
	case "remove", "rm":
		s.ctrl.RequestRemove(s.lineTarget(strings.Join(args, " ")))
	case "clear":
		s.ctrl.RequestClear()
	case "show", "ls":
		s.ctrl.Refresh()
	case "help", "?":
		fmt.Fprintln(s.out, Help)
	case "quit", "exit":
		return true
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
	}
	return false
}

func (s *Session) menu(args []string) error {
	if len(args) == 0 {
		PrintMenu(s.out, s.catalog)
		return nil
	}
	cat, ok := model.ParseCategory(strings.Join(args, " "))
	if !ok {
		return fmt.Errorf("unknown category %q", strings.Join(args, " "))
	}
	s.console.Open(cat)
	PrintMenu(s.out, s.catalog, cat)
	return nil
}

func (s *Session) add(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: add <n|id|name>")
	}
	ref := strings.Join(args, " ")

	if n, err := strconv.Atoi(ref); err == nil {
		open := s.console.Selected()
		if open == "" {
			return errors.New(`no category open; use "menu <category>" first`)
		}
		entries := s.catalog.ByCategory(open)
		if n < 1 || n > len(entries) {
			return fmt.Errorf("%s has no item %d", open, n)
		}
		s.console.Pick(n)
		return s.ctrl.SelectItem(entries[n-1].ID)
	}

	entry, err := s.catalog.Resolve(ref)
	if err != nil {
		return err
	}
	return s.ctrl.SelectItem(entry.ID)
}

func (s *Session) quantity(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: qty <row|id|name> <n>")
	}
	n, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		return fmt.Errorf("quantity %q is not a whole number", args[len(args)-1])
	}
	target := s.lineTarget(strings.Join(args[:len(args)-1], " "))
	return s.ctrl.EditQuantity(target, n)
}

// lineTarget maps a row number, entry ID, or line name to an entry ID.
// Unmatched references are returned unchanged.
func (s *Session) lineTarget(ref string) string {
	if ref == "" {
		return ""
	}
	lines := s.ctrl.Snapshot().Lines
	if row, err := strconv.Atoi(ref); err == nil {
		if row >= 1 && row <= len(lines) {
			return lines[row-1].EntryID
		}
		return ref
	}
	for _, l := range lines {
		if l.EntryID == ref || l.Name == ref {
			return l.EntryID
		}
	}
	return ref
}
