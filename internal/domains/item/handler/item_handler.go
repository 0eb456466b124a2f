package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"starter-backend/internal/domains/item"
	"starter-backend/internal/shared/response"
)

// MaxListLimit caps the limit query parameter; anything above it is a client
// validation error, not a silent clamp.
const MaxListLimit = 1000

// MaxPageSize caps the size parameter of the paginated listing.
const MaxPageSize = 100

type ItemHandler struct {
	service item.Service
}

func NewItemHandler(svc item.Service) *ItemHandler {
	return &ItemHandler{service: svc}
}

// List handles GET /items with category/available_only filtering and
// skip/limit pagination. Filters apply before pagination.
func (h *ItemHandler) List(c *gin.Context) {
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

	filter := item.Filter{
		Category:      c.Query("category"),
		AvailableOnly: c.Query("available_only") == "true",
		Skip:          skip,
		Limit:         limit,
	}

	items, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// ListPaginated handles GET /items/paginated returning total and page counts
// alongside one page of records.
func (h *ItemHandler) ListPaginated(c *gin.Context) {
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	if page < 1 {
		response.UnprocessableEntity(c, "page must be at least 1")
		return
	}
	if size < 1 || size > MaxPageSize {
		response.UnprocessableEntity(c, fmt.Sprintf("size must be between 1 and %d", MaxPageSize))
		return
	}

	result, err := h.service.ListPaginated(
		c.Request.Context(),
		page, size,
		c.Query("category"),
		c.Query("available_only") == "true",
	)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	it, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, it)
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req item.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// CreateBulk handles POST /items/bulk: sequential inserts, all created
// records returned.
func (h *ItemHandler) CreateBulk(c *gin.Context) {
	var reqs []item.CreateItemRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	created, err := h.service.CreateBulk(c.Request.Context(), reqs)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// Update handles PUT /items/:id with a partial patch body.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req item.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete handles DELETE /items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	deleted, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.SuccessWithMessage(c, http.StatusOK,
		fmt.Sprintf("Item '%s' deleted successfully", deleted.Name),
		gin.H{"deleted_item_id": id},
	)
}

// SearchByName handles GET /items/search/by-name?name=...: case-insensitive
// substring match across the full table, no pagination.
func (h *ItemHandler) SearchByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.UnprocessableEntity(c, "query parameter 'name' is required")
		return
	}

	items, err := h.service.Search(c.Request.Context(), name, "name")
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// SearchByCategory handles GET /items/search/by-category/:category with exact
// matching.
func (h *ItemHandler) SearchByCategory(c *gin.Context) {
	items, err := h.service.SearchByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Stats handles GET /items/stats/summary over the entire table.
func (h *ItemHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.FromStatus(c, item.HTTPStatus(err), err.Error())
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
