package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors onto HTTP responses. Controllers
// funnel every service error through here so status codes and error
// payloads stay uniform across the API.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrPropertyNotFound),
		errors.Is(err, apperrors.ErrClientNotFound),
		errors.Is(err, apperrors.ErrMessageNotFound),
		errors.Is(err, apperrors.ErrAppointmentNotFound),
		errors.Is(err, apperrors.ErrThemeNotFound),
		errors.Is(err, apperrors.ErrNoActiveTheme):
		c.JSON(404, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, notFoundMessage(err)),
		})
		return
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied"),
		})
		return
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
		return
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
		return
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidFormat),
		errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, validationMessage(err)),
		})
		return
	case errors.Is(err, apperrors.ErrThemeNameTaken):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Theme name already in use"),
		})
		return
	case errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		})
		return
	default:
		c.JSON(500, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
		return
	}
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, apperrors.ErrPropertyNotFound):
		return "Property not found"
	case errors.Is(err, apperrors.ErrClientNotFound):
		return "Client not found"
	case errors.Is(err, apperrors.ErrMessageNotFound):
		return "Message not found"
	case errors.Is(err, apperrors.ErrAppointmentNotFound):
		return "Appointment not found"
	case errors.Is(err, apperrors.ErrThemeNotFound):
		return "Theme not found"
	case errors.Is(err, apperrors.ErrNoActiveTheme):
		return "No active theme configured"
	default:
		return "Resource not found"
	}
}

// validationMessage surfaces the wrapped detail when the service
// attached one, so the client sees which check failed.
func validationMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "Validation failed"
}
