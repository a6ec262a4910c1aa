package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/blogem/contact-book/models"
)

// memoryContactRepository keeps the collection in a slice for the lifetime of the process
type memoryContactRepository struct {
	mu       sync.Mutex
	contacts []models.Contact
	ids      IDGenerator
}

// NewMemoryContactRepository creates an empty in-memory contact repository
func NewMemoryContactRepository(ids IDGenerator) ContactRepository {
	return &memoryContactRepository{
		contacts: []models.Contact{},
		ids:      ids,
	}
}

// GetAll returns a copy of every contact in insertion order
func (r *memoryContactRepository) GetAll(ctx context.Context) ([]models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contacts := make([]models.Contact, len(r.contacts))
	copy(contacts, r.contacts)
	return contacts, nil
}

// GetByID retrieves a contact by ID
func (r *memoryContactRepository) GetByID(ctx context.Context, id models.ContactID) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.contacts, id)
	if i == -1 {
		return nil, fmt.Errorf("contact with ID %s: %w", id, ErrContactNotFound)
	}
	contact := r.contacts[i]
	return &contact, nil
}

// Create assigns an ID and appends the contact
func (r *memoryContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	contact.ID = assignID(r.ids, r.contacts)
	r.contacts = append(r.contacts, *contact)
	return nil
}

// Update merges patch into the stored contact
func (r *memoryContactRepository) Update(ctx context.Context, id models.ContactID, patch models.ContactPatch) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.contacts, id)
	if i == -1 {
		return nil, fmt.Errorf("contact with ID %s: %w", id, ErrContactNotFound)
	}
	patch.Apply(&r.contacts[i])
	contact := r.contacts[i]
	return &contact, nil
}

// Delete removes the contact; an unknown id is a no-op
func (r *memoryContactRepository) Delete(ctx context.Context, id models.ContactID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed bool
	r.contacts, removed = removeID(r.contacts, id)
	return removed, nil
}

// Count returns the total number of contacts
func (r *memoryContactRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.contacts), nil
}
