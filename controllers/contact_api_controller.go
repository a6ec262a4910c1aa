package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
	"github.com/blogem/contact-book/services"
)

// ContactAPIController serves the JSON REST API under /contacts
type ContactAPIController struct {
	services *services.Services
	logger   *zap.Logger
}

// NewContactAPIController creates a new contact API controller
func NewContactAPIController(services *services.Services, logger *zap.Logger) *ContactAPIController {
	return &ContactAPIController{
		services: services,
		logger:   logger,
	}
}

// List handles GET /contacts
func (c *ContactAPIController) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.services.Contacts.GetAllContacts(r.Context())
	if err != nil {
		c.respondError(w, r, err)
		return
	}

	render.JSON(w, r, contacts)
}

// Get handles GET /contacts/{id}
func (c *ContactAPIController) Get(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	contact, err := c.services.Contacts.GetContactByID(r.Context(), id)
	if err != nil {
		c.respondError(w, r, err)
		return
	}

	render.JSON(w, r, contact)
}

// Create handles POST /contacts
func (c *ContactAPIController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.ContactForm
	if err := decodeBody(r, &form); err != nil {
		respondMessage(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	contact, err := c.services.Contacts.CreateContact(r.Context(), &form)
	if err != nil {
		c.respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, contact)
}

// Update handles PUT /contacts/{id}
func (c *ContactAPIController) Update(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	var patch models.ContactPatch
	if err := decodeBody(r, &patch); err != nil {
		respondMessage(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	contact, err := c.services.Contacts.UpdateContact(r.Context(), id, patch)
	if err != nil {
		c.respondError(w, r, err)
		return
	}

	render.JSON(w, r, contact)
}

// Delete handles DELETE /contacts/{id}. Unknown ids are reported as deleted too.
func (c *ContactAPIController) Delete(w http.ResponseWriter, r *http.Request) {
	id := models.ContactID(chi.URLParam(r, "id"))

	if _, err := c.services.Contacts.DeleteContact(r.Context(), id); err != nil {
		c.respondError(w, r, err)
		return
	}

	respondMessage(w, r, http.StatusOK, "Contact deleted")
}

// respondError maps store errors onto status codes
func (c *ContactAPIController) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repositories.ErrContactNotFound) {
		respondMessage(w, r, http.StatusNotFound, "Contact not found")
		return
	}

	c.logger.Error("contact store failure", zap.String("path", r.URL.Path), zap.Error(err))
	respondMessage(w, r, http.StatusInternalServerError, err.Error())
}

func respondMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, models.MessageResponse{Message: message})
}

// decodeBody decodes a JSON body into v; an empty body leaves v untouched
func decodeBody(r *http.Request, v interface{}) error {
	if err := render.DecodeJSON(r.Body, v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
