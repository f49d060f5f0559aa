package handlers

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/model"
)

func (h *Handler) ListLibrary(w http.ResponseWriter, r *http.Request) {
	skip, top := pagination(r)
	kind := model.ResourceKind(r.URL.Query().Get("kind"))

	resources, count, err := h.manager.Library.List(r.Context(), kind, skip, top)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPILibraryResourceList(resources, count, skip, top))
}

func (h *Handler) CreateLibraryResource(w http.ResponseWriter, r *http.Request) {
	var req hubapi.CreateLibraryResourceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resource := &model.LibraryResource{
		Title: req.Title,
		Kind:  model.ResourceKind(req.Kind),
		URL:   req.URL,
	}

	err := h.manager.Library.Create(r.Context(), resource)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusCreated, toAPILibraryResource(resource))
}

func (h *Handler) GetLibraryResource(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	resource, err := h.manager.Library.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPILibraryResource(resource))
}
