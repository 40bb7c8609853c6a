// Package controller holds helpers shared by the gin handlers.
package controller

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/service"
	"github.com/rs/zerolog/log"
)

// StatusFor maps an application error to its HTTP status.
func StatusFor(err error) int {
	var (
		stateErr *domain.StateError
		indexErr *domain.IndexError
	)
	switch {
	case errors.As(err, &stateErr):
		return http.StatusConflict
	case errors.As(err, &indexErr):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrTestNotFound), errors.Is(err, service.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse. Internal errors are logged
// and their details hidden.
func RespondError(ctx *gin.Context, err error, message string) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(message)
		ctx.JSON(status, dto.ErrorResponse{Message: message})
		return
	}
	log.Debug().Err(err).Int("status", status).Str("path", ctx.FullPath()).Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// ParseTestID reads the test_id path parameter, writing a 400 when it is not
// a positive integer.
func ParseTestID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("test_id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid Test ID format"})
		return 0, false
	}
	return uint(id), true
}

func BindError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}
