package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookcatalog-api/internal/domains/book/model"
	"bookcatalog-api/internal/domains/book/service"
	"bookcatalog-api/internal/shared/response"
	"bookcatalog-api/pkg/logger"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// GetAll - GET /api/v1/books
func (h *BookHandler) GetAll(c *gin.Context) {
	logger.Debug("attempted get all books")

	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		logger.Error("get all books failed", err)
		response.InternalServerError(c)
		return
	}

	resp := make([]model.BookResponse, len(books))
	for i := range books {
		resp[i] = *books[i].ToResponse()
	}

	logger.Info("books retrieved", map[string]interface{}{"count": len(resp)})
	response.Success(c, http.StatusOK, resp)
}

// GetByID - GET /api/v1/books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			logger.Warn("book not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("get book failed", err)
		response.InternalServerError(c)
		return
	}

	response.Success(c, http.StatusOK, b.ToResponse())
}

// Create - POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("create book: malformed body", map[string]interface{}{"error": err.Error()})
		response.BadRequest(c, "request body is missing or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("create book: validation failed", map[string]interface{}{"error": err.Error()})
		response.ValidationFailed(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		logger.Error("create book failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("book created", map[string]interface{}{"id": created.ID})
	c.Header("Location", fmt.Sprintf("/api/v1/books/%d", created.ID))
	response.Success(c, http.StatusCreated, created.ToResponse())
}

// Update - PUT /api/v1/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("update book: malformed body", map[string]interface{}{"error": err.Error()})
		response.BadRequest(c, "request body is missing or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		logger.Warn("update book: validation failed", map[string]interface{}{"error": err.Error()})
		response.ValidationFailed(c, err)
		return
	}

	if err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			logger.Warn("update book: not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("update book failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("book updated", map[string]interface{}{"id": id})
	response.NoContent(c)
}

// Delete - DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			logger.Warn("delete book: not found", map[string]interface{}{"id": id})
			response.NotFound(c)
			return
		}
		logger.Error("delete book failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("book deleted", map[string]interface{}{"id": id})
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
