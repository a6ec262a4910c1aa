package controllers

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/services"
	"github.com/blogem/contact-book/table"
	"github.com/blogem/contact-book/templates"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"pageLink": func(q table.Query, page int) string {
		return q.WithPage(page).Link()
	},
	"newLink": func(q table.Query) string {
		return "/ui/contacts/new?" + q.Encode()
	},
	"editLink": func(id models.ContactID, q table.Query) string {
		return contactPath(id) + "/edit?" + q.Encode()
	},
	"deleteLink": func(id models.ContactID, q table.Query) string {
		return contactPath(id) + "/delete?" + q.Encode()
	},
}

// contactPath is the UI path of a single contact
func contactPath(id models.ContactID) string {
	return "/ui/contacts/" + url.PathEscape(id.String())
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templates.FS, "layout.html", pageTemplate)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template never leaves a half-written page
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// Controllers holds all controller instances
type Controllers struct {
	Contacts    *ContactController
	ContactsAPI *ContactAPIController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, pageSize int, logger *zap.Logger) *Controllers {
	return &Controllers{
		Contacts:    NewContactController(services, pageSize, logger),
		ContactsAPI: NewContactAPIController(services, logger),
	}
}
