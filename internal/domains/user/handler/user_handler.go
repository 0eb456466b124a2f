package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starter-backend/internal/domains/user"
	"starter-backend/internal/shared/response"
)

// MaxListLimit caps the limit query parameter for user listings.
const MaxListLimit = 1000

type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// List handles GET /users with active_only filtering and skip/limit
// pagination.
func (h *UserHandler) List(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 100)

	if skip < 0 {
		response.UnprocessableEntity(c, "skip must be non-negative")
		return
	}
	if limit < 1 || limit > MaxListLimit {
		response.UnprocessableEntity(c, fmt.Sprintf("limit must be between 1 and %d", MaxListLimit))
		return
	}

	users, err := h.service.List(c.Request.Context(), c.Query("active_only") == "true", skip, limit)
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// GetByUsername handles GET /users/search/by-username/:username.
func (h *UserHandler) GetByUsername(c *gin.Context) {
	u, err := h.service.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// GetByEmail handles GET /users/search/by-email/:email.
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.service.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// Create handles POST /users. Duplicate username/email surfaces as 400, a
// conflict rather than a validation failure.
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if user.IsConflict(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /users/:id. Changing username/email to a value held by
// another user is a conflict; keeping your own is not.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if user.IsConflict(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.SuccessWithMessage(c, http.StatusOK,
		fmt.Sprintf("User '%s' deleted successfully", deleted.Username),
		gin.H{"deleted_user_id": id},
	)
}

// Activate handles POST /users/:id/activate.
func (h *UserHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

// Deactivate handles POST /users/:id/deactivate.
func (h *UserHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var (
		u   *user.User
		err error
	)
	if active {
		u, err = h.service.Activate(c.Request.Context(), id)
	} else {
		u, err = h.service.Deactivate(c.Request.Context(), id)
	}
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, u)
}

// Stats handles GET /users/stats/summary.
func (h *UserHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.FromStatus(c, user.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, stats)
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		response.UnprocessableEntity(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
