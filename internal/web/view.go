package web

import (
	"errors"
	"math"
	"time"

	"github.com/historicolocaticio/landing/internal/landing"
	"github.com/historicolocaticio/landing/internal/leadflow"
	"github.com/historicolocaticio/landing/internal/leads"
	"github.com/historicolocaticio/landing/internal/session"
)

// FieldView is one input of the demo request form.
type FieldView struct {
	Name        string
	Label       string
	Type        string
	Placeholder string
	Value       string
	Missing     bool
}

// FAQView is one rendered FAQ item.
type FAQView struct {
	Index    int
	Question string
	Answer   string
	Expanded bool
}

// ModalView is the rendered state of the demo request modal.
type ModalView struct {
	Open           bool
	Success        bool
	Fields         []FieldView
	Volume         FieldView
	VolumeOptions  []leads.VolumeOption
	RefreshSeconds int
	Notice         string
}

// PageView is everything the page template needs.
type PageView struct {
	Content  landing.Content
	MenuOpen bool
	FAQ      []FAQView
	Modal    ModalView
}

var inputMeta = map[leads.Field]FieldView{
	leads.FieldOrganization: {Label: "Imobiliária", Type: "text", Placeholder: "Nome da empresa"},
	leads.FieldTaxID:        {Label: "CNPJ", Type: "text", Placeholder: "00.000.000/0000-00"},
	leads.FieldContactName:  {Label: "Nome do Responsável", Type: "text", Placeholder: "Seu nome completo"},
	leads.FieldPhone:        {Label: "WhatsApp", Type: "tel", Placeholder: "(00) 00000-0000"},
	leads.FieldCity:         {Label: "Cidade/UF", Type: "text", Placeholder: "Ex: São Paulo - SP"},
	leads.FieldVolume:       {Label: "Volume de contratos/mês"},
}

// NewPageView builds the view model for page at now. submitErr is the error
// of a submission that was just blocked, if any.
func NewPageView(content landing.Content, page *session.Page, now time.Time, submitErr error) PageView {
	view := PageView{
		Content:  content,
		MenuOpen: page.Menu.Expanded(),
	}
	for i, entry := range content.FAQ {
		view.FAQ = append(view.FAQ, FAQView{
			Index:    i,
			Question: entry.Question,
			Answer:   entry.Answer,
			Expanded: page.FAQ.Expanded(i),
		})
	}

	missing := map[leads.Field]bool{}
	var incomplete *leads.MissingFieldsError
	if errors.As(submitErr, &incomplete) {
		for _, f := range incomplete.Fields {
			missing[f] = true
		}
	}

	modal := &page.Modal
	draft := modal.Draft()
	mv := ModalView{
		Open:          modal.Visible(),
		Success:       modal.State() == leadflow.StateSuccess,
		VolumeOptions: leads.VolumeOptions(),
	}
	for _, f := range leads.Fields() {
		fv := inputMeta[f]
		fv.Name = string(f)
		fv.Value = draft.Get(f)
		fv.Missing = missing[f]
		if f == leads.FieldVolume {
			mv.Volume = fv
			continue
		}
		mv.Fields = append(mv.Fields, fv)
	}
	if mv.Success {
		mv.RefreshSeconds = int(math.Ceil(modal.Remaining(now).Seconds()))
		if mv.RefreshSeconds < 1 {
			mv.RefreshSeconds = 1
		}
	}
	switch {
	case submitErr == nil:
	case errors.Is(submitErr, leads.ErrIncomplete):
		mv.Notice = "Preencha todos os campos para continuar."
	case errors.Is(submitErr, leads.ErrInvalidVolume):
		mv.Notice = "Selecione uma faixa de volume válida."
	default:
		mv.Notice = "Não foi possível enviar agora. Tente novamente em instantes."
	}
	view.Modal = mv
	return view
}
