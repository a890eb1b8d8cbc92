package create_registration

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kmlee/safety-edu-booking/internal/domain"
)

// validateRequest checks the submission before any state is touched.
// Free-text fields are compared after trimming; whitespace-only input
// counts as missing.
func validateRequest(req *Request) error {
	if !req.Industry.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownIndustry, req.Industry)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Applicant) == "" {
		return fmt.Errorf("%w: applicant is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	// Caps are in characters, not bytes: Korean text is three bytes per
	// rune in UTF-8.
	if utf8.RuneCountInString(req.Company) > domain.MaxCompanyLength {
		return fmt.Errorf("%w: company exceeds %d characters", ErrInvalidInput, domain.MaxCompanyLength)
	}
	if utf8.RuneCountInString(req.Applicant) > domain.MaxApplicantLength {
		return fmt.Errorf("%w: applicant exceeds %d characters", ErrInvalidInput, domain.MaxApplicantLength)
	}
	if utf8.RuneCountInString(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	return nil
}
