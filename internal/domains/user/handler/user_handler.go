package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-api/internal/domains/user/model"
	"bookcatalog-api/internal/domains/user/service"
	"bookcatalog-api/internal/shared/response"
	"bookcatalog-api/pkg/logger"
)

type UserHandler struct {
	service service.ServiceInterface
}

func NewUserHandler(svc service.ServiceInterface) *UserHandler {
	return &UserHandler{service: svc}
}

// Login - POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "request body is missing or malformed")
		return
	}

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			logger.Warn("login rejected", map[string]interface{}{"email": req.Email})
			response.Unauthorized(c, "invalid email or password")
			return
		}
		logger.Error("login failed", err)
		response.InternalServerError(c)
		return
	}

	logger.Info("login succeeded", map[string]interface{}{"email": req.Email})
	response.Success(c, http.StatusOK, resp)
}
