// Package disclosure holds the page's expand/collapse widgets: FAQ items and
// the mobile menu. Each widget instance owns its own state.
package disclosure

import (
	"encoding/json"
	"errors"
)

// ErrUnknownItem is returned for an accordion index outside its items
var ErrUnknownItem = errors.New("disclosure: unknown item")

// Disclosure is a single expanded/collapsed toggle. The zero value is collapsed.
type Disclosure struct {
	expanded bool
}

// Expanded reports the current state.
func (d *Disclosure) Expanded() bool { return d.expanded }

// Toggle flips the state and returns the new value.
func (d *Disclosure) Toggle() bool {
	d.expanded = !d.expanded
	return d.expanded
}

// Open expands the disclosure.
func (d *Disclosure) Open() { d.expanded = true }

// Close collapses the disclosure.
func (d *Disclosure) Close() { d.expanded = false }

func (d Disclosure) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.expanded)
}

func (d *Disclosure) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &d.expanded)
}

// Accordion is a fixed list of independent disclosures.
type Accordion struct {
	items []Disclosure
}

// NewAccordion creates an accordion with n collapsed items.
func NewAccordion(n int) Accordion {
	if n < 0 {
		n = 0
	}
	return Accordion{items: make([]Disclosure, n)}
}

// Len returns the number of items.
func (a *Accordion) Len() int { return len(a.items) }

// Fit resizes the accordion to n items, keeping the state of surviving items.
func (a *Accordion) Fit(n int) {
	if n < 0 {
		n = 0
	}
	if n <= len(a.items) {
		a.items = a.items[:n]
		return
	}
	a.items = append(a.items, make([]Disclosure, n-len(a.items))...)
}

// Toggle flips item i and returns its new state.
func (a *Accordion) Toggle(i int) (bool, error) {
	if i < 0 || i >= len(a.items) {
		return false, ErrUnknownItem
	}
	return a.items[i].Toggle(), nil
}

// Expanded reports whether item i is open. Unknown items are collapsed.
func (a *Accordion) Expanded(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	return a.items[i].Expanded()
}

// ExpandedItems lists the indexes of open items in order.
func (a *Accordion) ExpandedItems() []int {
	var out []int
	for i := range a.items {
		if a.items[i].Expanded() {
			out = append(out, i)
		}
	}
	return out
}

func (a Accordion) MarshalJSON() ([]byte, error) {
	items := a.items
	if items == nil {
		items = []Disclosure{}
	}
	return json.Marshal(items)
}

func (a *Accordion) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &a.items)
}
