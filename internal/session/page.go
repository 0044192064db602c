package session

import (
	"encoding/json"

	"github.com/historicolocaticio/landing/internal/disclosure"
	"github.com/historicolocaticio/landing/internal/leadflow"
)

// Page is the widget state of one visitor's landing page.
type Page struct {
	Modal leadflow.Modal
	FAQ   disclosure.Accordion
	Menu  disclosure.Disclosure
}

// NewPage returns a page with the modal closed, the menu collapsed and
// faqItems collapsed FAQ entries.
func NewPage(faqItems int) *Page {
	return &Page{FAQ: disclosure.NewAccordion(faqItems)}
}

type pageJSON struct {
	Modal leadflow.Snapshot     `json:"modal"`
	FAQ   disclosure.Accordion  `json:"faq"`
	Menu  disclosure.Disclosure `json:"menu"`
}

func (p *Page) MarshalJSON() ([]byte, error) {
	return json.Marshal(pageJSON{
		Modal: p.Modal.Snapshot(),
		FAQ:   p.FAQ,
		Menu:  p.Menu,
	})
}

func (p *Page) UnmarshalJSON(b []byte) error {
	var raw pageJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	p.Modal = leadflow.Restore(raw.Modal)
	p.FAQ = raw.FAQ
	p.Menu = raw.Menu
	return nil
}

func decodePage(data []byte, faqItems int) (*Page, error) {
	page := NewPage(faqItems)
	if err := json.Unmarshal(data, page); err != nil {
		return nil, err
	}
	page.FAQ.Fit(faqItems)
	return page, nil
}
