package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/blogem/contact-book/config"
	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := config.DefaultConfig()
	c.Store.Backend = repositories.BackendJSON
	c.Store.Path = filepath.Join(t.TempDir(), "contacts.json")
	c.Audit.Database = filepath.Join(t.TempDir(), "audit.db")
	c.UI.PageSize = 2
	return &c
}

func newTestServer(t *testing.T, c *config.Config) (*httptest.Server, *app) {
	t.Helper()

	a, err := newApp(c, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	r, err := setupRouter(a, c, zap.NewNop())
	require.NoError(t, err)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, a
}

func doJSON(t *testing.T, method, url string, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(t))

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"healthy","service":"contact-book"}`, string(body))
}

func TestContactsAPI(t *testing.T) {
	srv, a := newTestServer(t, testConfig(t))

	// Empty collection is an empty array
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/contacts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	// Create
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/contacts",
		`{"name":"Ada Lovelace","company":"Engines","email":"ada@example.com","phone":"1","country":"UK","status":"Active"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.Contact
	require.NoError(t, json.Unmarshal(body, &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ada Lovelace", created.Name)

	// Get one
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/contacts/"+created.ID.String(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched models.Contact
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created, fetched)

	// Update merges fields and keeps the id
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/contacts/"+created.ID.String(),
		`{"id":"hijack","status":"Inactive"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.Contact
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, models.StatusInactive, updated.Status)

	// Update unknown id
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/contacts/missing", `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Contact not found"}`, string(body))

	// Get unknown id
	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/contacts/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Malformed body
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/contacts", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Delete unknown id is still reported as deleted
	resp, body = doJSON(t, http.MethodDelete, srv.URL+"/contacts/missing", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"message":"Contact deleted"}`, string(body))

	count, err := a.services.Contacts.GetContactCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Delete
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/contacts/"+created.ID.String(), "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/contacts", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	// Every mutation landed in the audit log
	entries, err := a.repos.Audit.ListRecent(context.Background(), 50)
	require.NoError(t, err)
	assert.Len(t, entries, 6)
	assert.Equal(t, "/contacts/"+created.ID.String(), entries[0].Path)
}

func TestContactsAPICorruptStore(t *testing.T) {
	c := testConfig(t)
	srv, _ := newTestServer(t, c)

	require.NoError(t, os.WriteFile(c.Store.Path, []byte("not json"), 0o644))

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/contacts", "")
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, string(body), "contact store is corrupt")
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(t))

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/contacts", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func newBrowser(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func getPage(t *testing.T, client *http.Client, url string) (int, string) {
	t.Helper()
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postForm(t *testing.T, client *http.Client, target string, form url.Values) (int, string) {
	t.Helper()
	resp, err := client.PostForm(target, form)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func contactForm(name, status string) url.Values {
	return url.Values{
		"name":    {name},
		"company": {"Acme"},
		"email":   {strings.ToLower(name) + "@example.com"},
		"phone":   {"555"},
		"country": {"NL"},
		"status":  {status},
	}
}

func TestBrowserUI(t *testing.T) {
	srv, a := newTestServer(t, testConfig(t))
	browser := newBrowser(t)

	status, body := getPage(t, browser, srv.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No contacts found.")

	// The add dialog opens over the table
	status, body = getPage(t, browser, srv.URL+"/ui/contacts/new")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "<dialog open")
	assert.Contains(t, body, "Add Contact")
	assert.Contains(t, body, `<option value="Active" selected>`)

	// Creating redirects back to the table with a flash message
	for _, name := range []string{"Carol", "alice", "Bob"} {
		status, body = postForm(t, browser, srv.URL+"/ui/contacts", contactForm(name, "Active"))
		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Contact added")
	}

	// Flash is shown once
	_, body = getPage(t, browser, srv.URL+"/")
	assert.NotContains(t, body, "Contact added")

	// Page size 2, sorted by name ascending: Bob, Carol on page one
	assert.Contains(t, body, "Bob")
	assert.Contains(t, body, "Carol")
	assert.NotContains(t, body, "alice@example.com")
	assert.Contains(t, body, "Showing 1–2 of 3")

	_, body = getPage(t, browser, srv.URL+"/?page=2")
	assert.Contains(t, body, "alice@example.com")

	// Filtering is case-insensitive on the name
	_, body = getPage(t, browser, srv.URL+"/?q=ALI")
	assert.Contains(t, body, "alice@example.com")
	assert.NotContains(t, body, "bob@example.com")

	// Descending sort flips the first page
	_, body = getPage(t, browser, srv.URL+"/?sort=name&order=desc")
	assert.Contains(t, body, "alice@example.com")
	assert.Contains(t, body, "carol@example.com")
	assert.NotContains(t, body, "bob@example.com")

	contacts, err := a.services.Contacts.GetAllContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	bob := contacts[2]

	// Edit dialog is prefilled
	status, body = getPage(t, browser, srv.URL+"/ui/contacts/"+bob.ID.String()+"/edit")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Edit Contact")
	assert.Contains(t, body, `value="bob@example.com"`)

	// Update submits the whole record
	status, body = postForm(t, browser, srv.URL+"/ui/contacts/"+bob.ID.String(), contactForm("Robert", "Inactive"))
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Contact updated")

	updated, err := a.services.Contacts.GetContactByID(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.Name)
	assert.Equal(t, models.StatusInactive, updated.Status)

	// Unknown ids
	status, _ = getPage(t, browser, srv.URL+"/ui/contacts/missing/edit")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = postForm(t, browser, srv.URL+"/ui/contacts/missing", contactForm("Ghost", "Active"))
	assert.Equal(t, http.StatusNotFound, status)

	// Delete keeps the table state in the redirect
	resp, err := browser.PostForm(srv.URL+"/ui/contacts/"+bob.ID.String()+"/delete?q=rob", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "rob", resp.Request.URL.Query().Get("q"))

	count, err := a.services.Contacts.GetContactCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestExportCommand(t *testing.T) {
	c := testConfig(t)
	c.Audit.Enabled = false
	require.NoError(t, os.WriteFile(c.Store.Path, []byte(`[{"id":1,"name":"Numeric","status":"Active"}]`), 0o644))

	cfg, logger = c, zap.NewNop()
	t.Cleanup(func() { cfg, logger = nil, nil })

	var out bytes.Buffer
	exportCmd.SetOut(&out)
	exportCmd.SetContext(context.Background())
	t.Cleanup(func() { exportCmd.SetOut(nil) })
	require.NoError(t, runExport(exportCmd, nil))

	var contacts []models.Contact
	require.NoError(t, json.Unmarshal(out.Bytes(), &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, models.ContactID("1"), contacts[0].ID)
}

func TestImportCommand(t *testing.T) {
	c := testConfig(t)
	c.Audit.Enabled = false
	cfg, logger = c, zap.NewNop()
	t.Cleanup(func() { cfg, logger = nil, nil })

	file := filepath.Join(t.TempDir(), "seed.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"id":"x","name":"Ada"},{"name":"Grace","status":"Inactive"}]`), 0o644))

	var out bytes.Buffer
	importCmd.SetOut(&out)
	importCmd.SetContext(context.Background())
	t.Cleanup(func() { importCmd.SetOut(nil) })
	require.NoError(t, runImport(importCmd, []string{file}))
	assert.Contains(t, out.String(), "Imported 2 contacts")

	data, err := os.ReadFile(c.Store.Path)
	require.NoError(t, err)
	var stored []models.Contact
	require.NoError(t, json.Unmarshal(data, &stored))
	require.Len(t, stored, 2)
	assert.NotEqual(t, models.ContactID("x"), stored[0].ID)
	assert.Equal(t, models.StatusActive, stored[0].Status)
	assert.Equal(t, models.StatusInactive, stored[1].Status)
}
