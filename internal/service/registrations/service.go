package registrations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kmlee/safety-edu-booking/internal/domain"
	registrationRepo "github.com/kmlee/safety-edu-booking/internal/infra/storage/registration"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

// Service covers the admin and lookup operations over the ledger that
// need no capacity accounting: listing, contact edits, deletion and the
// public search.
type Service struct {
	registrationRepo RegistrationRepository
	logger           Logger
}

// NewService creates the registrations service.
func NewService(registrationRepo RegistrationRepository, logger Logger) *Service {
	return &Service{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// ListByIndustry returns all registrations of one industry, newest first.
func (s *Service) ListByIndustry(ctx context.Context, industry domain.Industry) (*models.RegistrationListResponse, error) {
	if !industry.IsValid() {
		s.logger.Warn("ListByIndustry: unknown industry %q", industry)
		return nil, ErrUnknownIndustry
	}

	regs, err := s.registrationRepo.GetByIndustry(ctx, industry)
	if err != nil {
		s.logger.Error("ListByIndustry: repository error for industry=%s: %v", industry, err)
		return nil, fmt.Errorf("%w: ListByIndustry - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByIndustry: fetched %d registrations for industry=%s", len(regs), industry)
	return models.FromDomainRegistrationList(regs), nil
}

// Search returns the registrations matching the applicant name and phone
// exactly. Both fields are required; this is the public "look up my
// application" operation, so partial matches are deliberately not offered.
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.RegistrationListResponse, error) {
	applicant := strings.TrimSpace(req.Applicant)
	phone := strings.TrimSpace(req.Phone)

	if applicant == "" || phone == "" {
		s.logger.Warn("Search: missing applicant or phone")
		return nil, fmt.Errorf("%w: applicant and phone are required", ErrInvalidInput)
	}

	regs, err := s.registrationRepo.Search(ctx, applicant, phone)
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d registrations for applicant=%s", len(regs), applicant)
	return models.FromDomainRegistrationList(regs), nil
}

// UpdateContact replaces the contact fields of an existing registration.
func (s *Service) UpdateContact(ctx context.Context, id string, req *models.UpdateContactRequest) error {
	company := strings.TrimSpace(req.Company)
	applicant := strings.TrimSpace(req.Applicant)
	phone := strings.TrimSpace(req.Phone)

	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if company == "" || applicant == "" || phone == "" {
		s.logger.Warn("UpdateContact: missing required field for id=%s", id)
		return fmt.Errorf("%w: company, applicant and phone are required", ErrInvalidInput)
	}

	err := s.registrationRepo.UpdateContact(ctx, id, company, applicant, phone)
	if err != nil {
		if errors.Is(err, registrationRepo.ErrRegistrationNotFound) {
			s.logger.Warn("UpdateContact: registration id=%s not found", id)
			return ErrRegistrationNotFound
		}
		s.logger.Error("UpdateContact: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateContact - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateContact: updated registration id=%s", id)
	return nil
}

// Delete removes a registration. Idempotent: deleting an unknown id is
// a no-op, not an error.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: removed registration id=%s", id)
	return nil
}
