package leads

import (
	"strings"
)

// Field identifies one input of the demo request form.
type Field string

// Form field names as posted by the landing page.
const (
	FieldOrganization Field = "imobiliaria"
	FieldTaxID        Field = "cnpj"
	FieldContactName  Field = "responsavel"
	FieldPhone        Field = "whatsapp"
	FieldCity         Field = "cidade"
	FieldVolume       Field = "volume"
)

var fieldOrder = []Field{
	FieldOrganization,
	FieldTaxID,
	FieldContactName,
	FieldPhone,
	FieldCity,
	FieldVolume,
}

// Fields returns the six form fields in display order.
func Fields() []Field {
	out := make([]Field, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

// ParseField maps a posted form name to a Field.
func ParseField(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	for _, known := range fieldOrder {
		if f == known {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// VolumeBucket is the monthly contract volume range selected in the form.
type VolumeBucket string

const (
	VolumeUnselected VolumeBucket = ""
	VolumeUpTo10     VolumeBucket = "1-10"
	Volume11To50     VolumeBucket = "11-50"
	Volume51To200    VolumeBucket = "51-200"
	VolumeOver200    VolumeBucket = "200+"
)

// VolumeOption pairs a bucket with its label in the select control.
type VolumeOption struct {
	Value VolumeBucket
	Label string
}

// VolumeOptions returns the selectable buckets in display order.
func VolumeOptions() []VolumeOption {
	return []VolumeOption{
		{Value: VolumeUpTo10, Label: "Até 10 contratos"},
		{Value: Volume11To50, Label: "11 a 50 contratos"},
		{Value: Volume51To200, Label: "51 a 200 contratos"},
		{Value: VolumeOver200, Label: "Mais de 200 contratos"},
	}
}

// Valid reports whether v is one of the four selectable buckets.
func (v VolumeBucket) Valid() bool {
	switch v {
	case VolumeUpTo10, Volume11To50, Volume51To200, VolumeOver200:
		return true
	}
	return false
}

// LeadRequest is the draft collected by the demo request modal.
type LeadRequest struct {
	Organization string `json:"imobiliaria"`
	TaxID        string `json:"cnpj"`
	ContactName  string `json:"responsavel"`
	Phone        string `json:"whatsapp"`
	City         string `json:"cidade"`
	Volume       string `json:"volume"`
}

// Get returns the value of one field.
func (r LeadRequest) Get(f Field) string {
	switch f {
	case FieldOrganization:
		return r.Organization
	case FieldTaxID:
		return r.TaxID
	case FieldContactName:
		return r.ContactName
	case FieldPhone:
		return r.Phone
	case FieldCity:
		return r.City
	case FieldVolume:
		return r.Volume
	}
	return ""
}

// Set returns a copy of r with one field replaced. Unknown fields leave r unchanged.
func (r LeadRequest) Set(f Field, value string) LeadRequest {
	switch f {
	case FieldOrganization:
		r.Organization = value
	case FieldTaxID:
		r.TaxID = value
	case FieldContactName:
		r.ContactName = value
	case FieldPhone:
		r.Phone = value
	case FieldCity:
		r.City = value
	case FieldVolume:
		r.Volume = value
	}
	return r
}

// Missing lists the empty fields, in display order. Whitespace counts as a
// value, as it does for the browser's required check.
func (r LeadRequest) Missing() []Field {
	var missing []Field
	for _, f := range fieldOrder {
		if r.Get(f) == "" {
			missing = append(missing, f)
		}
	}
	return missing
}

// IsZero reports whether every field is empty.
func (r LeadRequest) IsZero() bool {
	return r == LeadRequest{}
}

// Validate checks field presence and the volume bucket.
func (r LeadRequest) Validate() error {
	if missing := r.Missing(); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	if !VolumeBucket(r.Volume).Valid() {
		return ErrInvalidVolume
	}
	return nil
}
