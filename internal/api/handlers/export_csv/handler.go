package export_csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/domain"
	"github.com/kmlee/safety-edu-booking/internal/service/registrations"
)

const (
	msgUnknownIndustry = "지원하지 않는 산업군입니다"
)

// utf8BOM makes Excel open the file as UTF-8; without it the Korean
// columns render as mojibake.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{"산업군", "교육일자", "회사명", "신청자", "연락처", "신청일시"}

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

// Handle GET /api/v1/admin/industries/{industry}/registrations/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	industry := vars["industry"]

	result, err := h.service.ListByIndustry(r.Context(), domain.Industry(industry))
	if err != nil {
		switch {
		case errors.Is(err, registrations.ErrUnknownIndustry):
			h.logger.Warn("GET /admin/industries/{industry}/registrations/export - Unknown industry: %q", industry)
			handlers.RespondBadRequest(w, msgUnknownIndustry)

		default:
			h.logger.Error("GET /admin/industries/{industry}/registrations/export - Failed to list: industry=%s, error=%v",
				industry, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape("교육신청_"+industry+".csv")))
	_, _ = w.Write(utf8BOM)

	writer := csv.NewWriter(w)
	_ = writer.Write(csvHeader)
	for _, reg := range result.Registrations {
		_ = writer.Write([]string{
			reg.Industry,
			reg.Date,
			reg.Company,
			reg.Applicant,
			reg.Phone,
			reg.CreatedAt,
		})
	}
	writer.Flush()

	h.logger.Info("GET /admin/industries/{industry}/registrations/export - Exported %d registrations: industry=%s",
		result.Total, industry)
}
