package search_registrations

import (
	"errors"
	"net/http"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations/models"
)

const (
	msgMissingParams = "신청자 이름과 연락처를 모두 입력해 주세요"
)

type Handler struct {
	service RegistrationService
	logger  Logger
}

func NewHandler(service RegistrationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/registrations/search
// Query params: applicant (required), phone (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	applicant := r.URL.Query().Get("applicant")
	phone := r.URL.Query().Get("phone")

	result, err := h.service.Search(r.Context(), &models.SearchRequest{
		Applicant: applicant,
		Phone:     phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrInvalidInput):
			h.logger.Warn("GET /registrations/search - Missing applicant or phone")
			handlers.RespondBadRequest(w, msgMissingParams)

		default:
			h.logger.Error("GET /registrations/search - Search failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /registrations/search - Found %d registrations", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
