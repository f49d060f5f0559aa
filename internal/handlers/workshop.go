package handlers

import (
	"net/http"
	"time"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/manager"
	"github.com/agenthub/hub/internal/model"
	hubcontext "github.com/agenthub/hub/utils/context"
)

func (h *Handler) ListWorkshops(w http.ResponseWriter, r *http.Request) {
	skip, top := pagination(r)

	filter := manager.WorkshopFilter{
		PublishedOnly: r.URL.Query().Get("published") == "true",
	}

	var ok bool

	filter.CreatedAfter, ok = timeParam(w, r, "since")
	if !ok {
		return
	}

	filter.CreatedBefore, ok = timeParam(w, r, "until")
	if !ok {
		return
	}

	workshops, count, err := h.manager.Workshop.List(r.Context(), filter, skip, top)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIWorkshopList(workshops, count, skip, top))
}

// timeParam reads an optional RFC 3339 query parameter. A malformed value
// writes the error response and reports false.
func timeParam(w http.ResponseWriter, r *http.Request, param string) (*time.Time, bool) {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return nil, true
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		write.ErrorResponse(r.Context(), w, apierrors.ParamsErrorMessage(param+" must be an RFC 3339 timestamp"))
		return nil, false
	}

	return &ts, true
}

// CreateWorkshop records the authenticated principal as the instructor.
func (h *Handler) CreateWorkshop(w http.ResponseWriter, r *http.Request) {
	var req hubapi.CreateWorkshopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	principal, err := hubcontext.ExtractPrincipal(r.Context())
	if err != nil {
		write.ErrorResponse(r.Context(), w, apierrors.UnauthorizedErrorMessage("Authentication required"))
		return
	}

	workshop := &model.Workshop{
		Title:        req.Title,
		Description:  req.Description,
		InstructorID: principal.UserID,
	}

	err = h.manager.Workshop.Create(r.Context(), workshop)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusCreated, toAPIWorkshop(workshop))
}

func (h *Handler) GetWorkshop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	workshop, err := h.manager.Workshop.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIWorkshop(workshop))
}

func (h *Handler) PatchWorkshop(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req hubapi.PatchWorkshopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Published == nil {
		write.ErrorResponse(r.Context(), w, apierrors.ParamsErrorMessage("published must be provided"))
		return
	}

	workshop, err := h.manager.Workshop.SetPublished(r.Context(), id, *req.Published)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIWorkshop(workshop))
}
