package cloud_sync

import (
	"errors"
	"net/http"

	"github.com/kmlee/safety-edu-booking/internal/api/handlers"
	"github.com/kmlee/safety-edu-booking/internal/integrations/cloudstore"
	syncService "github.com/kmlee/safety-edu-booking/internal/service/sync"
)

const (
	msgCloudSyncDisabled = "공유 저장소 동기화가 설정되어 있지 않습니다"
	msgCloudUnavailable  = "공유 저장소에 연결할 수 없습니다"
	msgCloudBadDocument  = "공유 저장소의 데이터가 올바르지 않습니다"
)

const mergeSourceCloud = "cloud"

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

// HandlePush POST /api/v1/admin/sync/cloud/push
// Replaces the shared document with the full local state.
func (h *Handler) HandlePush(w http.ResponseWriter, r *http.Request) {
	err := h.service.CloudPush(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, syncService.ErrCloudSyncDisabled):
			h.logger.Warn("POST /admin/sync/cloud/push - Cloud sync disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCloudSyncDisabled)

		case errors.Is(err, cloudstore.ErrTransport):
			h.logger.Warn("POST /admin/sync/cloud/push - Transport error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCloudUnavailable)

		default:
			h.logger.Error("POST /admin/sync/cloud/push - Failed to push: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/sync/cloud/push - Local state pushed")
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// HandlePull POST /api/v1/admin/sync/cloud/pull
// Transport or schema failures leave local state untouched.
func (h *Handler) HandlePull(w http.ResponseWriter, r *http.Request) {
	added, err := h.service.CloudPull(r.Context())
	if err != nil {
		h.merges.ObserveMerge(mergeSourceCloud, "error")
		switch {
		case errors.Is(err, syncService.ErrCloudSyncDisabled):
			h.logger.Warn("POST /admin/sync/cloud/pull - Cloud sync disabled")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCloudSyncDisabled)

		case errors.Is(err, cloudstore.ErrTransport):
			h.logger.Warn("POST /admin/sync/cloud/pull - Transport error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCloudUnavailable)

		case errors.Is(err, cloudstore.ErrInvalidResponse):
			h.logger.Warn("POST /admin/sync/cloud/pull - Invalid document: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCloudBadDocument)

		default:
			h.logger.Error("POST /admin/sync/cloud/pull - Failed to pull: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.merges.ObserveMerge(mergeSourceCloud, "ok")
	h.logger.Info("POST /admin/sync/cloud/pull - Merged shared document: %d registrations added", added)
	handlers.RespondJSON(w, http.StatusOK, PullResponse{AddedRegistrations: added})
}
