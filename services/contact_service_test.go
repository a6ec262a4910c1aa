package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/blogem/contact-book/models"
	"github.com/blogem/contact-book/repositories"
	"github.com/blogem/contact-book/repositories/mocks"
)

// ContactServiceTestSuite exercises the contact service against a mocked repository
type ContactServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	service         ContactService
	mockContactRepo *mocks.MockContactRepository
}

// SetupTest sets up the test suite before each test
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockContactRepo = mocks.NewMockContactRepository(suite.T())
	suite.service = NewContactService(suite.mockContactRepo)
}

func (suite *ContactServiceTestSuite) TestGetAllContacts_NilBecomesEmpty() {
	suite.mockContactRepo.EXPECT().GetAll(suite.ctx).Return(nil, nil)

	contacts, err := suite.service.GetAllContacts(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), contacts)
	assert.Empty(suite.T(), contacts)
}

func (suite *ContactServiceTestSuite) TestGetAllContacts_RepositoryError() {
	suite.mockContactRepo.EXPECT().GetAll(suite.ctx).Return(nil, repositories.ErrCorruptStore)

	contacts, err := suite.service.GetAllContacts(suite.ctx)

	assert.Nil(suite.T(), contacts)
	assert.ErrorIs(suite.T(), err, repositories.ErrCorruptStore)
}

func (suite *ContactServiceTestSuite) TestCreateContact_DefaultsStatusToActive() {
	suite.mockContactRepo.EXPECT().
		Create(suite.ctx, mock.MatchedBy(func(c *models.Contact) bool {
			return c.Name == "Ada" && c.Status == models.StatusActive
		})).
		Run(func(ctx context.Context, c *models.Contact) { c.ID = "42" }).
		Return(nil)

	contact, err := suite.service.CreateContact(suite.ctx, &models.ContactForm{Name: "Ada"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ContactID("42"), contact.ID)
	assert.Equal(suite.T(), models.StatusActive, contact.Status)
}

func (suite *ContactServiceTestSuite) TestCreateContact_KeepsSubmittedFieldsAsIs() {
	form := &models.ContactForm{Name: "  spaced  ", Email: "not-an-email", Status: models.StatusInactive}
	suite.mockContactRepo.EXPECT().
		Create(suite.ctx, &models.Contact{Name: "  spaced  ", Email: "not-an-email", Status: models.StatusInactive}).
		Return(nil)

	contact, err := suite.service.CreateContact(suite.ctx, form)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "  spaced  ", contact.Name)
}

func (suite *ContactServiceTestSuite) TestCreateContact_RepositoryError() {
	suite.mockContactRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(errors.New("disk full"))

	contact, err := suite.service.CreateContact(suite.ctx, models.NewContactForm())

	assert.Nil(suite.T(), contact)
	assert.Contains(suite.T(), err.Error(), "failed to create contact")
}

func (suite *ContactServiceTestSuite) TestUpdateContact_NotFound() {
	patch := models.NewContactForm().Patch()
	notFound := fmt.Errorf("contact with ID 7: %w", repositories.ErrContactNotFound)
	suite.mockContactRepo.EXPECT().Update(suite.ctx, models.ContactID("7"), patch).Return(nil, notFound)

	contact, err := suite.service.UpdateContact(suite.ctx, "7", patch)

	assert.Nil(suite.T(), contact)
	assert.ErrorIs(suite.T(), err, repositories.ErrContactNotFound)
}

func (suite *ContactServiceTestSuite) TestDeleteContact_UnknownIDIsNoOp() {
	suite.mockContactRepo.EXPECT().Delete(suite.ctx, models.ContactID("missing")).Return(false, nil)

	removed, err := suite.service.DeleteContact(suite.ctx, "missing")

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), removed)
}

func (suite *ContactServiceTestSuite) TestImportContacts_AssignsFreshIDs() {
	incoming := []models.Contact{
		{ID: "old-1", Name: "Ada", Status: models.StatusActive},
		{ID: "old-2", Name: "Grace"},
	}
	suite.mockContactRepo.EXPECT().
		Create(suite.ctx, mock.MatchedBy(func(c *models.Contact) bool { return c.ID == "" })).
		Return(nil).
		Times(2)

	imported, err := suite.service.ImportContacts(suite.ctx, incoming)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, imported)
}

func (suite *ContactServiceTestSuite) TestImportContacts_StopsOnFirstError() {
	suite.mockContactRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(nil).Once()
	suite.mockContactRepo.EXPECT().Create(suite.ctx, mock.Anything).Return(errors.New("boom")).Once()

	imported, err := suite.service.ImportContacts(suite.ctx, []models.Contact{{Name: "a"}, {Name: "b"}, {Name: "c"}})

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 1, imported)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
