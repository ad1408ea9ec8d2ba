package v1alpha1

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	api "github.com/jobforge/status-board/api/v1alpha1"
	"github.com/jobforge/status-board/internal/service"
	"github.com/jobforge/status-board/internal/status"
	"github.com/jobforge/status-board/pkg/requestid"
)

type ServiceHandler struct {
	jobTypeSrv *service.JobTypeService
	statusSrv  *service.StatusService
	tokens     status.TokenTable
}

func NewServiceHandler(jobTypeSrv *service.JobTypeService, statusSrv *service.StatusService, tokens status.TokenTable) *ServiceHandler {
	return &ServiceHandler{
		jobTypeSrv: jobTypeSrv,
		statusSrv:  statusSrv,
		tokens:     tokens,
	}
}

func (h *ServiceHandler) RegisterRoutes(router chi.Router) {
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", h.ListStatuses)
		r.Route("/jobtypes", func(r chi.Router) {
			r.Get("/", h.ListJobTypes)
			r.Post("/", h.CreateJobType)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetJobType)
				r.Delete("/", h.DeleteJobType)
				r.Get("/status", h.GetJobTypeStatus)
				r.Post("/jobs", h.CreateJob)
			})
		})
		r.Put("/jobs/{id}/status", h.UpdateJobStatus)
	})
}

func replyError(w http.ResponseWriter, r *http.Request, code int, message string) {
	render.Status(r, code)
	render.JSON(w, r, api.Error{Message: message, RequestId: requestid.FromContextPtr(r.Context())})
}
