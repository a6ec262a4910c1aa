package services

import (
	"context"
	"fmt"

	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
)

// ContactService interface defines contact management operations
type ContactService interface {
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
	GetContactByID(ctx context.Context, id models.ContactID) (*models.Contact, error)
	CreateContact(ctx context.Context, form *models.ContactForm) (*models.Contact, error)
	UpdateContact(ctx context.Context, id models.ContactID, patch models.ContactPatch) (*models.Contact, error)
	DeleteContact(ctx context.Context, id models.ContactID) (bool, error)
	ImportContacts(ctx context.Context, contacts []models.Contact) (int, error)
	GetContactCount(ctx context.Context) (int, error)
}

// contactService implements ContactService interface
type contactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new contact service
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
	}
}

// GetAllContacts retrieves the whole collection
func (s *contactService) GetAllContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contactRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	return contacts, nil
}

// GetContactByID retrieves a single contact
func (s *contactService) GetContactByID(ctx context.Context, id models.ContactID) (*models.Contact, error) {
	return s.contactRepo.GetByID(ctx, id)
}

// CreateContact stores a new contact built from the form. Fields are taken as
// submitted; only an empty status falls back to Active.
func (s *contactService) CreateContact(ctx context.Context, form *models.ContactForm) (*models.Contact, error) {
	contact := form.ToContact()
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// UpdateContact merges the patch into an existing contact
func (s *contactService) UpdateContact(ctx context.Context, id models.ContactID, patch models.ContactPatch) (*models.Contact, error) {
	return s.contactRepo.Update(ctx, id, patch)
}

// DeleteContact removes a contact. Deleting an unknown id is not an error.
func (s *contactService) DeleteContact(ctx context.Context, id models.ContactID) (bool, error) {
	removed, err := s.contactRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return removed, nil
}

// ImportContacts appends every contact with a freshly assigned id
func (s *contactService) ImportContacts(ctx context.Context, contacts []models.Contact) (int, error) {
	imported := 0
	for _, c := range contacts {
		form := models.ContactFormFrom(&c)
		if _, err := s.CreateContact(ctx, form); err != nil {
			return imported, fmt.Errorf("failed to import contact %q: %w", c.Name, err)
		}
		imported++
	}
	return imported, nil
}

// GetContactCount returns the total number of contacts
func (s *contactService) GetContactCount(ctx context.Context) (int, error) {
	return s.contactRepo.Count(ctx)
}
