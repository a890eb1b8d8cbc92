package sync_code

import (
	"errors"
	"net/http"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/syncbundle"
)

const (
	msgInvalidRequestBody = "요청 본문이 올바르지 않습니다"
	msgInvalidSyncCode    = "동기화 코드가 올바르지 않습니다"
)

const mergeSourceCode = "code"

type Handler struct {
	service SyncService
	merges  MergeRecorder
	logger  Logger
}

func NewHandler(service SyncService, merges MergeRecorder, logger Logger) *Handler {
	return &Handler{
		service: service,
		merges:  merges,
		logger:  logger,
	}
}

// HandleExport POST /api/v1/admin/sync/export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	code, err := h.service.ExportCode(r.Context())
	if err != nil {
		h.logger.Error("POST /admin/sync/export - Failed to export: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/sync/export - Sync code exported")
	handlers.RespondJSON(w, http.StatusOK, ExportResponse{Code: code})
}

// HandleImport POST /api/v1/admin/sync/import
// A malformed code is rejected before any merge, so local state is
// untouched on failure.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/sync/import - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	added, err := h.service.ImportCode(r.Context(), req.Code)
	if err != nil {
		h.merges.ObserveMerge(mergeSourceCode, "error")
		switch {
		case errors.Is(err, syncbundle.ErrDecode):
			h.logger.Warn("POST /admin/sync/import - Invalid sync code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSyncCode)

		default:
			h.logger.Error("POST /admin/sync/import - Failed to import: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.merges.ObserveMerge(mergeSourceCode, "ok")
	h.logger.Info("POST /admin/sync/import - Sync code imported: %d registrations added", added)
	handlers.RespondJSON(w, http.StatusOK, ImportResponse{AddedRegistrations: added})
}
