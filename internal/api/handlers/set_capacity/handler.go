package set_capacity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/service/capacity"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgUnknownIndustry    = "지원하지 않는 산업군입니다"
	msgInvalidDate        = "날짜 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidCapacity    = "정원은 0 이상의 정수여야 합니다"
)

type Handler struct {
	service CapacityService
	logger  Logger
}

func NewHandler(service CapacityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/industries/{industry}/capacity/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	industry := vars["industry"]
	date := vars["date"]

	var req SetCapacityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/industries/{industry}/capacity/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetOverride(r.Context(), domain.Industry(industry), date, req.TotalSeats)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrUnknownIndustry):
			h.logger.Warn("PUT /admin/industries/{industry}/capacity/{date} - Unknown industry: %q", industry)
			handlers.RespondBadRequest(w, msgUnknownIndustry)

		case errors.Is(err, capacity.ErrInvalidDate):
			h.logger.Warn("PUT /admin/industries/{industry}/capacity/{date} - Invalid date: %q", date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, capacity.ErrInvalidCapacity):
			h.logger.Warn("PUT /admin/industries/{industry}/capacity/{date} - Invalid capacity: %d", req.TotalSeats)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		default:
			h.logger.Error("PUT /admin/industries/{industry}/capacity/{date} - Failed to set override: industry=%s, date=%s, error=%v",
				industry, date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/industries/{industry}/capacity/{date} - Override set: industry=%s, date=%s, totalSeats=%d",
		industry, date, req.TotalSeats)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
