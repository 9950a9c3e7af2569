package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog-api/internal/domains/author/model"
	"bookcatalog-api/internal/domains/author/service"
	"bookcatalog-api/internal/shared/response"
	"bookcatalog-api/pkg/logger"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// GetAll - GET /api/v1/authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	logger.Debug("attempted get all authors")

	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get all authors failed", err)
		response.InternalServerError(c)
		return
	}

	resp := make([]model.AuthorResponse, len(authors))
	for i := range authors {
		resp[i] = *authors[i].ToResponse()
	}

	logger.Info("authors retrieved", map[string]interface{}{"count": len(resp)})
	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/v1/authors/:id
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			logger.Warn("author not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("get author failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, a.ToResponse())
}

// Create - POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("create author: malformed body", map[string]interface{}{"error": err.Error()})
		response.BadRequest(c, "request body is missing or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("create author: validation failed", map[string]interface{}{"error": err.Error()})
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("create author failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("author created", map[string]interface{}{"id": created.ID})
	c.Header("Location", fmt.Sprintf("/api/v1/authors/%d", created.ID))
	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Update - PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("update author: malformed body", map[string]interface{}{"error": err.Error()})
		response.BadRequest(c, "request body is missing or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("update author: validation failed", map[string]interface{}{"error": err.Error()})
		response.ValidationFailed(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			logger.Warn("update author: not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("update author failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("author updated", map[string]interface{}{"id": id})
	response.NoContent(c)
}

// Delete - DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			logger.Warn("delete author: not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("delete author failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("author deleted", map[string]interface{}{"id": id})
	response.NoContent(c)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid id parameter")
		return 0, false
	}
	return id, true
}
