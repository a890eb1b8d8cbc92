package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/domain"
	getAvailability "github.com/kmlee/safety-edu-booking/internal/usecase/get_availability"
)

const (
	msgMissingYearMonth = "조회할 연도와 월을 입력해 주세요"
	msgInvalidYearMonth = "연도 또는 월이 올바르지 않습니다"
	msgUnknownIndustry  = "지원하지 않는 산업군입니다"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/industries/{industry}/availability
// Query params: year (required), month (required, 1-12)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	industry := vars["industry"]

	yearStr := r.URL.Query().Get("year")
	monthStr := r.URL.Query().Get("month")
	if yearStr == "" || monthStr == "" {
		h.logger.Warn("GET /industries/{industry}/availability - Missing year or month")
		handlers.RespondBadRequest(w, msgMissingYearMonth)
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		h.logger.Warn("GET /industries/{industry}/availability - Invalid year %q: %v", yearStr, err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil {
		h.logger.Warn("GET /industries/{industry}/availability - Invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Industry: domain.Industry(industry),
		Year:     year,
		Month:    month,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /industries/{industry}/availability - Invalid input: industry=%s, year=%d, month=%d",
				industry, year, month)
			if !domain.Industry(industry).IsValid() {
				handlers.RespondBadRequest(w, msgUnknownIndustry)
			} else {
				handlers.RespondBadRequest(w, msgInvalidYearMonth)
			}

		default:
			h.logger.Error("GET /industries/{industry}/availability - Failed to get availability: industry=%s, year=%d, month=%d, error=%v",
				industry, year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /industries/{industry}/availability - Availability retrieved: industry=%s, year=%d, month=%d, days=%d",
		industry, year, month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
