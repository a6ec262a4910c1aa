package services

import (
	"github.com/blogem/contact-book/repositories"
)

// Services holds all service instances
type Services struct {
	Contacts ContactService
}

// NewServices creates and initializes all service instances
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		Contacts: NewContactService(repos.Contacts),
	}
}
