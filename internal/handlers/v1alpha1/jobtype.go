package v1alpha1

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"go.uber.org/zap"

	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/handlers/v1alpha1/mappers"
	"github.com/jobforge/status-board/internal/service"
	servicemappers "github.com/jobforge/status-board/internal/service/mappers"
)

func (h *ServiceHandler) ListJobTypes(w http.ResponseWriter, r *http.Request) {
	jobTypes, err := h.jobTypeSrv.ListJobTypes(r.Context())
	if err != nil {
		zap.S().Named("jobtype_handler").Errorw("failed to list job types", "error", err)
		replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to list job types: %v", err))
		return
	}
	render.JSON(w, r, mappers.JobTypeListToApi(jobTypes))
}

func (h *ServiceHandler) CreateJobType(w http.ResponseWriter, r *http.Request) {
	var body api.JobTypeCreate
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode body: %v", err))
		return
	}

	jobType, err := h.jobTypeSrv.CreateJobType(r.Context(), servicemappers.JobTypeCreateForm{
		Name:    body.Name,
		Version: body.Version,
		Title:   body.Title,
	})
	if err != nil {
		switch err.(type) {
		case *service.ErrInvalidJobType:
			replyError(w, r, http.StatusBadRequest, err.Error())
		case *service.ErrJobTypeAlreadyExists:
			replyError(w, r, http.StatusConflict, err.Error())
		default:
			zap.S().Named("jobtype_handler").Errorw("failed to create job type", "error", err)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to create job type: %v", err))
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.JobTypeToApi(*jobType))
}

func (h *ServiceHandler) GetJobType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job type id: %v", err))
		return
	}

	jobType, err := h.jobTypeSrv.GetJobType(r.Context(), id)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to get job type: %v", err))
		}
		return
	}
	render.JSON(w, r, mappers.JobTypeToApi(*jobType))
}

func (h *ServiceHandler) DeleteJobType(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job type id: %v", err))
		return
	}

	if err := h.jobTypeSrv.DeleteJobType(r.Context(), id); err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		default:
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to delete job type: %v", err))
		}
		return
	}
	render.NoContent(w, r)
}

type jobCreateRequest struct {
	Status string `json:"status,omitempty"`
}

type jobStatusUpdateRequest struct {
	Status   string  `json:"status"`
	Category *string `json:"category,omitempty"`
}

func (h *ServiceHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job type id: %v", err))
		return
	}

	var body jobCreateRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode body: %v", err))
		return
	}

	job, err := h.jobTypeSrv.CreateJob(r.Context(), servicemappers.JobCreateForm{JobTypeID: id, Status: body.Status})
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		case *service.ErrInvalidJobStatus:
			replyError(w, r, http.StatusBadRequest, err.Error())
		default:
			zap.S().Named("jobtype_handler").Errorw("failed to create job", "error", err)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to create job: %v", err))
		}
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, mappers.JobToApi(*job))
}

func (h *ServiceHandler) UpdateJobStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid job id: %v", err))
		return
	}

	var body jobStatusUpdateRequest
	if err := render.DecodeJSON(r.Body, &body); err != nil {
		replyError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode body: %v", err))
		return
	}

	job, err := h.jobTypeSrv.UpdateJobStatus(r.Context(), id, body.Status, body.Category)
	if err != nil {
		switch err.(type) {
		case *service.ErrResourceNotFound:
			replyError(w, r, http.StatusNotFound, err.Error())
		case *service.ErrInvalidJobStatus:
			replyError(w, r, http.StatusBadRequest, err.Error())
		default:
			zap.S().Named("jobtype_handler").Errorw("failed to update job status", "error", err)
			replyError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to update job status: %v", err))
		}
		return
	}
	render.JSON(w, r, mappers.JobToApi(*job))
}
