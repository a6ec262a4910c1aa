package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ContactStatus is the lifecycle flag shown in the status column
type ContactStatus string

const (
	StatusActive   ContactStatus = "Active"
	StatusInactive ContactStatus = "Inactive"
)

// Statuses lists the selectable statuses in display order
var Statuses = []ContactStatus{StatusActive, StatusInactive}

// ContactID identifies a contact. It is a string on the wire but also accepts
// JSON numbers so files written with numeric ids still load.
type ContactID string

// UnmarshalJSON accepts both "1700000000000" and 1700000000000
func (id *ContactID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ContactID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("contact id must be a string or number: %w", err)
	}
	*id = ContactID(n.String())
	return nil
}

func (id ContactID) String() string {
	return string(id)
}

// Contact represents a single contact record
type Contact struct {
	ID      ContactID     `json:"id"`
	Name    string        `json:"name"`
	Company string        `json:"company"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Country string        `json:"country"`
	Status  ContactStatus `json:"status"`
}

// IsActive reports whether the contact is marked Active
func (c *Contact) IsActive() bool {
	return c.Status == StatusActive
}

// Field returns the value of a sortable column by its JSON name
func (c *Contact) Field(name string) (string, bool) {
	switch name {
	case "name":
		return c.Name, true
	case "company":
		return c.Company, true
	case "email":
		return c.Email, true
	case "phone":
		return c.Phone, true
	case "country":
		return c.Country, true
	case "status":
		return string(c.Status), true
	}
	return "", false
}

// ContactPatch carries the fields of an update; nil fields keep their value
type ContactPatch struct {
	Name    *string        `json:"name,omitempty"`
	Company *string        `json:"company,omitempty"`
	Email   *string        `json:"email,omitempty"`
	Phone   *string        `json:"phone,omitempty"`
	Country *string        `json:"country,omitempty"`
	Status  *ContactStatus `json:"status,omitempty"`
}

// Apply merges the patch into c. The id is never touched.
func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Country != nil {
		c.Country = *p.Country
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

// IsEmpty reports whether the patch changes nothing
func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Company == nil && p.Email == nil &&
		p.Phone == nil && p.Country == nil && p.Status == nil
}

// ContactForm represents the create/edit dialog fields
type ContactForm struct {
	Name    string        `json:"name"`
	Company string        `json:"company"`
	Email   string        `json:"email"`
	Phone   string        `json:"phone"`
	Country string        `json:"country"`
	Status  ContactStatus `json:"status"`
}

// NewContactForm returns the blank form shown by "Add Contact"
func NewContactForm() *ContactForm {
	return &ContactForm{Status: StatusActive}
}

// ContactFormFrom prefills the form for editing
func ContactFormFrom(c *Contact) *ContactForm {
	return &ContactForm{
		Name:    c.Name,
		Company: c.Company,
		Email:   c.Email,
		Phone:   c.Phone,
		Country: c.Country,
		Status:  c.Status,
	}
}

// ToContact builds a new contact (without id) from the form
func (f *ContactForm) ToContact() *Contact {
	status := f.Status
	if strings.TrimSpace(string(status)) == "" {
		status = StatusActive
	}
	return &Contact{
		Name:    f.Name,
		Company: f.Company,
		Email:   f.Email,
		Phone:   f.Phone,
		Country: f.Country,
		Status:  status,
	}
}

// Patch turns the whole form into a patch; the dialog always submits every field
func (f *ContactForm) Patch() ContactPatch {
	form := *f
	return ContactPatch{
		Name:    &form.Name,
		Company: &form.Company,
		Email:   &form.Email,
		Phone:   &form.Phone,
		Country: &form.Country,
		Status:  &form.Status,
	}
}

// FormFields lists the text inputs of the dialog in display order
var FormFields = []FormField{
	{Name: "name", Label: "Name"},
	{Name: "company", Label: "Company"},
	{Name: "email", Label: "Email"},
	{Name: "phone", Label: "Phone"},
	{Name: "country", Label: "Country"},
}

// FormField describes one text input of the contact dialog
type FormField struct {
	Name  string
	Label string
}

// Value returns the form value for a text input
func (f *ContactForm) Value(field string) string {
	switch field {
	case "name":
		return f.Name
	case "company":
		return f.Company
	case "email":
		return f.Email
	case "phone":
		return f.Phone
	case "country":
		return f.Country
	}
	return ""
}
