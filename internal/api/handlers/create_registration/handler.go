package create_registration

import (
	"errors"
	"net/http"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	createRegistration "github.com/kmlee/safety-edu-booking/internal/usecase/create_registration"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgInvalidDate        = "교육일자 형식이 올바르지 않습니다 (YYYY-MM-DD)"
	msgInvalidInput       = "회사명, 신청자, 연락처는 필수 입력 항목입니다"
	msgUnknownIndustry    = "지원하지 않는 산업군입니다"
	msgPastDate           = "지난 날짜에는 신청할 수 없습니다"
	msgSessionFull        = "해당 날짜의 교육 정원이 마감되었습니다"
)

type Handler struct {
	useCase CreateRegistrationUseCase
	logger  Logger
}

func NewHandler(useCase CreateRegistrationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/registrations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateRegistrationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /registrations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /registrations - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createRegistration.ErrSessionFull):
			h.logger.Warn("POST /registrations - Session full: industry=%s, date=%s", req.Industry, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSessionFull)

		case errors.Is(err, createRegistration.ErrUnknownIndustry):
			h.logger.Warn("POST /registrations - Unknown industry: %q", req.Industry)
			handlers.RespondBadRequest(w, msgUnknownIndustry)

		case errors.Is(err, createRegistration.ErrPastDate):
			h.logger.Warn("POST /registrations - Past date: %s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createRegistration.ErrInvalidInput):
			h.logger.Warn("POST /registrations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /registrations - Failed to create registration: industry=%s, date=%s, error=%v",
				req.Industry, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /registrations - Registration created: id=%s, industry=%s, date=%s, remaining=%d",
		result.ID, req.Industry, req.Date, result.RemainingSeats)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
