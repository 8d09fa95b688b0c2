package handlers

import (
	"errors"
	"net/http"

	"github.com/foliochat/foliochat/internal/api/middleware"
	"github.com/foliochat/foliochat/internal/models"
	"github.com/foliochat/foliochat/internal/utils"
	"github.com/gin-gonic/gin"
)

type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: http.StatusText(status),
	})
}

func requireCaller(c *gin.Context) (models.CallerIdentity, bool) {
	if v, ok := c.Get(middleware.CallerKey); ok {
		if id, ok := v.(models.CallerIdentity); ok && id.UserID != "" {
			return id, true
		}
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "unauthorized", nil))
	return models.CallerIdentity{}, false
}
