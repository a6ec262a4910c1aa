package repositories

import (
	"context"
	"errors"

	"github.com/blogem/contact-book/models"
)

var (
	// ErrContactNotFound is returned when no contact has the requested id
	ErrContactNotFound = errors.New("contact not found")

	// ErrCorruptStore is returned when the backing file cannot be decoded
	ErrCorruptStore = errors.New("contact store is corrupt")
)

// ContactRepository interface defines contact storage operations.
// Every call works on the whole collection.
type ContactRepository interface {
	GetAll(ctx context.Context) ([]models.Contact, error)
	GetByID(ctx context.Context, id models.ContactID) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Update(ctx context.Context, id models.ContactID, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, id models.ContactID) (bool, error)
	Count(ctx context.Context) (int, error)
}

// findIndex returns the position of id in contacts or -1
func findIndex(contacts []models.Contact, id models.ContactID) int {
	for i := range contacts {
		if contacts[i].ID == id {
			return i
		}
	}
	return -1
}

// hasID reports whether id is already taken
func hasID(contacts []models.Contact, id models.ContactID) bool {
	return findIndex(contacts, id) != -1
}

// removeID filters id out of contacts, returning the new slice and whether anything matched
func removeID(contacts []models.Contact, id models.ContactID) ([]models.Contact, bool) {
	kept := contacts[:0]
	removed := false
	for _, c := range contacts {
		if c.ID == id {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	return kept, removed
}
