package handlers

import (
	"net/http"

	"github.com/agenthub/hub/internal/api/hubapi"
	"github.com/agenthub/hub/internal/api/write"
	"github.com/agenthub/hub/internal/apierrors"
	"github.com/agenthub/hub/internal/model"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, top := pagination(r)

	users, count, err := h.manager.User.List(r.Context(), skip, top)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIUserList(users, count, skip, top))
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req hubapi.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user := &model.User{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     model.Role(req.Role),
	}

	err := h.manager.User.Create(r.Context(), user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusCreated, toAPIUser(user))
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	user, err := h.manager.User.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIUser(user))
}

// PatchUser applies role and activation changes. Both take effect on the
// target user's next request, not at their next login.
func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	var req hubapi.PatchUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var (
		user *model.User
		err  error
	)

	if req.Role != nil {
		user, err = h.manager.User.UpdateRole(r.Context(), id, model.Role(*req.Role))
		if err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	if req.Active != nil {
		user, err = h.manager.User.SetActive(r.Context(), id, *req.Active)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
	}

	if user == nil {
		write.ErrorResponse(r.Context(), w, apierrors.ParamsErrorMessage("role or active must be provided"))
		return
	}

	write.JSONResponse(r.Context(), w, http.StatusOK, toAPIUser(user))
}
