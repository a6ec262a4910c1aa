package controllers

import (
	"errors"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
	"github.com/blogem/contact-book/services"
	"github.com/blogem/contact-book/table"
)

// Session keys for the one-shot flash message
const (
	flashTypeKey    = "flash_type"
	flashMessageKey = "flash_message"
)

// ContactController serves the contact table and its form dialog
type ContactController struct {
	services *services.Services
	pageSize int
	logger   *zap.Logger
}

// NewContactController creates a new contact controller
func NewContactController(services *services.Services, pageSize int, logger *zap.Logger) *ContactController {
	if pageSize <= 0 {
		pageSize = table.DefaultPageSize
	}
	return &ContactController{
		services: services,
		pageSize: pageSize,
		logger:   logger,
	}
}

// columnHeader is one sortable table header
type columnHeader struct {
	Label  string
	Link   string
	Active bool
	Order  string
}

// contactsPage is the data rendered by contacts.html
type contactsPage struct {
	Title      string
	Flash      *models.FlashMessage
	Table      table.Page
	Columns    []columnHeader
	Form       *models.ContactForm
	Contact    *models.Contact
	FormAction string
	FormFields []models.FormField
	Statuses   []models.ContactStatus
}

// buildPage loads the whole collection and computes the visible table page
func (c *ContactController) buildPage(r *http.Request) (*contactsPage, error) {
	contacts, err := c.services.Contacts.GetAllContacts(r.Context())
	if err != nil {
		return nil, err
	}

	query := table.ParseQuery(r.URL.Query())
	page := table.Apply(contacts, query, c.pageSize)

	columns := make([]columnHeader, len(table.Columns))
	for i, name := range table.Columns {
		columns[i] = columnHeader{
			Label:  strings.ToUpper(name),
			Link:   page.Query.Toggle(name).Link(),
			Active: page.Query.SortBy == name,
			Order:  page.Query.Order,
		}
	}

	return &contactsPage{
		Title:      "Contact List",
		Flash:      popFlash(r),
		Table:      page,
		Columns:    columns,
		FormFields: models.FormFields,
		Statuses:   models.Statuses,
	}, nil
}

// Index handles GET /
func (c *ContactController) Index(w http.ResponseWriter, r *http.Request) {
	data, err := c.buildPage(r)
	if err != nil {
		c.storeError(w, "Failed to load contacts", err)
		return
	}

	renderTemplate(w, "contacts.html", data)
}

// New handles GET /ui/contacts/new
func (c *ContactController) New(w http.ResponseWriter, r *http.Request) {
	data, err := c.buildPage(r)
	if err != nil {
		c.storeError(w, "Failed to load contacts", err)
		return
	}

	data.Title = "Add Contact"
	data.Form = models.NewContactForm()
	data.FormAction = "/ui/contacts?" + data.Table.Query.Encode()

	renderTemplate(w, "contacts.html", data)
}

// Edit handles GET /ui/contacts/{id}/edit
func (c *ContactController) Edit(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	contact, err := c.services.Contacts.GetContactByID(r.Context(), id)
	if errors.Is(err, repositories.ErrContactNotFound) {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		c.storeError(w, "Failed to load contact", err)
		return
	}

	data, err := c.buildPage(r)
	if err != nil {
		c.storeError(w, "Failed to load contacts", err)
		return
	}

	data.Title = "Edit Contact"
	data.Contact = contact
	data.Form = models.ContactFormFrom(contact)
	data.FormAction = contactPath(contact.ID) + "?" + data.Table.Query.Encode()

	renderTemplate(w, "contacts.html", data)
}

// Create handles POST /ui/contacts
func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	contact, err := c.services.Contacts.CreateContact(r.Context(), formFromRequest(r))
	if err != nil {
		c.storeError(w, "Failed to save contact", err)
		return
	}

	c.logger.Info("contact created", zap.String("id", contact.ID.String()))
	setFlash(r, models.FlashSuccess, "Contact added")
	http.Redirect(w, r, returnLink(r), http.StatusSeeOther)
}

// Update handles POST /ui/contacts/{id}
func (c *ContactController) Update(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	_, err := c.services.Contacts.UpdateContact(r.Context(), id, formFromRequest(r).Patch())
	if errors.Is(err, repositories.ErrContactNotFound) {
		http.Error(w, "Contact not found", http.StatusNotFound)
		return
	}
	if err != nil {
		c.storeError(w, "Failed to save contact", err)
		return
	}

	c.logger.Info("contact updated", zap.String("id", id.String()))
	setFlash(r, models.FlashSuccess, "Contact updated")
	http.Redirect(w, r, returnLink(r), http.StatusSeeOther)
}

// Delete handles POST /ui/contacts/{id}/delete
func (c *ContactController) Delete(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	removed, err := c.services.Contacts.DeleteContact(r.Context(), id)
	if err != nil {
		c.storeError(w, "Failed to delete contact", err)
		return
	}

	c.logger.Info("contact deleted", zap.String("id", id.String()), zap.Bool("removed", removed))
	setFlash(r, models.FlashSuccess, "Contact deleted")
	http.Redirect(w, r, returnLink(r), http.StatusSeeOther)
}

func (c *ContactController) storeError(w http.ResponseWriter, msg string, err error) {
	c.logger.Error(msg, zap.Error(err))
	http.Error(w, msg+": "+err.Error(), http.StatusInternalServerError)
}

// formFromRequest reads the dialog fields from a parsed POST form
func formFromRequest(r *http.Request) *models.ContactForm {
	return &models.ContactForm{
		Name:    r.PostFormValue("name"),
		Company: r.PostFormValue("company"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Country: r.PostFormValue("country"),
		Status:  models.ContactStatus(r.PostFormValue("status")),
	}
}

// returnLink sends the browser back to the table state it came from
func returnLink(r *http.Request) string {
	return table.ParseQuery(r.URL.Query()).Link()
}

func setFlash(r *http.Request, kind, message string) {
	sess := session.GetSession(r)
	sess.Set(flashTypeKey, kind)
	sess.Set(flashMessageKey, message)
}

// popFlash returns the pending flash message once and clears it
func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	message, ok := sess.Get(flashMessageKey).(string)
	if !ok || message == "" {
		return nil
	}
	kind, _ := sess.Get(flashTypeKey).(string)

	sess.Delete(flashMessageKey)
	sess.Delete(flashTypeKey)
	return &models.FlashMessage{Type: kind, Message: message}
}
