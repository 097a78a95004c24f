package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SallahBoussettah/portfolio-api/internal/models"
	"github.com/SallahBoussettah/portfolio-api/internal/repository"
)

var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrInvalidContactStatus = errors.New("invalid contact status")
)

// ContactService handles contact form submissions
type ContactService struct {
	contactRepo repository.ContactRepository
	mailer      Mailer
}

// NewContactService creates a new ContactService
func NewContactService(contactRepo repository.ContactRepository, mailer Mailer) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// SubmitContactInput represents a contact form submission
type SubmitContactInput struct {
	Name      string
	Email     string
	Subject   string
	Message   string
	IPAddress string
	UserAgent string
}

// SubmitContact persists the submission and then sends the admin
// notification and submitter auto-reply. Email delivery failures are logged
// by the mailer and never fail the submission.
func (s *ContactService) SubmitContact(input SubmitContactInput) (*models.Contact, error) {
	contact := &models.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    models.ContactStatusNew,
		IPAddress: input.IPAddress,
		UserAgent: input.UserAgent,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	go func(saved models.Contact) {
		s.mailer.SendContactNotification(&saved)
		s.mailer.SendAutoReply(&saved)
	}(*contact)

	return contact, nil
}

// ListContacts returns submissions matching the filter plus the total count
func (s *ContactService) ListContacts(status *models.ContactStatus, limit, offset int) ([]models.Contact, int64, error) {
	contacts, total, err := s.contactRepo.List(repository.ContactFilter{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, total, nil
}

// GetContact fetches one submission. A submission still in status "new"
// transitions to "read" on this first fetch; later fetches leave the status
// alone.
func (s *ContactService) GetContact(id uint) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	if contact.Status == models.ContactStatusNew {
		contact.Status = models.ContactStatusRead
		if err := s.contactRepo.Update(contact); err != nil {
			return nil, fmt.Errorf("failed to mark contact read: %w", err)
		}
	}

	return contact, nil
}

// UpdateContactStatus sets the triage status explicitly.
func (s *ContactService) UpdateContactStatus(id uint, status models.ContactStatus) (*models.Contact, error) {
	if !status.Valid() {
		return nil, ErrInvalidContactStatus
	}

	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	contact.Status = status
	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes a submission.
func (s *ContactService) DeleteContact(id uint) error {
	if err := s.contactRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}
