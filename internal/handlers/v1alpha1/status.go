package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobforge/status-board/internal/handlers/v1alpha1/mappers"
	"github.com/jobforge/status-board/internal/service"
)

// ListStatuses serves the board: one summary per job type, aggregated
// from the current count snapshots.
func (h *ServiceHandler) ListStatuses(w http.ResponseWriter, r *http.Request) {
	aggregators, err := h.statusSrv.ListStatuses(r.Context())
	if err != nil {
		zap.S().Named("status_handler").Errorw("failed to list statuses", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list statuses: %v", err))
		return
	}
	render.JSON(w, r, mappers.SummaryListToApi(aggregators, h.tokens))
}

func (h *ServiceHandler) GetJobTypeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job type id: %v", err))
		return
	}

	aggregator, err := h.statusSrv.GetJobTypeStatus(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		default:
			zap.S().Named("status_handler").Errorw("failed to get job type status", "error", err)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get job type status: %v", err))
		}
		return
	}
	render.JSON(w, r, mappers.AggregatorToSummary(aggregator, h.tokens))
}
