package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blogem/contact-book/models"
)

// jsonContactRepository persists the collection as one flat JSON array.
// Every call re-reads the file; every mutation rewrites it wholesale.
type jsonContactRepository struct {
	mu   sync.Mutex
	path string
	ids  IDGenerator
}

// NewJSONContactRepository creates a repository backed by the file at path.
// A missing file (and its directory) is created holding an empty array.
func NewJSONContactRepository(path string, ids IDGenerator) (ContactRepository, error) {
	if err := ensureStoreFile(path); err != nil {
		return nil, err
	}
	return &jsonContactRepository{path: path, ids: ids}, nil
}

// ensureStoreFile creates path with an empty array unless it already exists
func ensureStoreFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat contact store %s: %w", path, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create contact store directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		return fmt.Errorf("failed to create contact store %s: %w", path, err)
	}
	return nil
}

// load reads and decodes the whole file
func (r *jsonContactRepository) load() ([]models.Contact, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contact store: %w", err)
	}

	contacts := []models.Contact{}
	if len(bytes.TrimSpace(data)) == 0 {
		return contacts, nil
	}
	if err := json.Unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptStore, r.path, err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// save encodes the whole collection with two-space indentation and overwrites the file
func (r *jsonContactRepository) save(contacts []models.Contact) error {
	data, err := json.MarshalIndent(contacts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write contact store: %w", err)
	}
	return nil
}

// GetAll retrieves all contacts in file order
func (r *jsonContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

// GetByID retrieves a contact by ID
func (r *jsonContactRepository) GetByID(ctx context.Context, id models.ContactID) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}

	i := findIndex(contacts, id)
	if i == -1 {
		return nil, fmt.Errorf("contact with ID %s: %w", id, ErrContactNotFound)
	}
	return &contacts[i], nil
}

// Create assigns an ID, appends the contact and rewrites the file
func (r *jsonContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return err
	}

	contact.ID = assignID(r.ids, contacts)
	contacts = append(contacts, *contact)

	if err := r.save(contacts); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// Update merges patch into the stored contact and rewrites the file
func (r *jsonContactRepository) Update(ctx context.Context, id models.ContactID, patch models.ContactPatch) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return nil, err
	}

	i := findIndex(contacts, id)
	if i == -1 {
		return nil, fmt.Errorf("contact with ID %s: %w", id, ErrContactNotFound)
	}
	patch.Apply(&contacts[i])

	if err := r.save(contacts); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	updated := contacts[i]
	return &updated, nil
}

// Delete filters the contact out and rewrites the file; an unknown id is a no-op
func (r *jsonContactRepository) Delete(ctx context.Context, id models.ContactID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts, err := r.load()
	if err != nil {
		return false, err
	}

	contacts, removed := removeID(contacts, id)
	if err := r.save(contacts); err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return removed, nil
}

// Count returns the total number of contacts
func (r *jsonContactRepository) Count(ctx context.Context) (int, error) {
	contacts, err := r.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(contacts), nil
}
