package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"rental-admin/internal/domain/auth"
	"rental-admin/internal/pkg/errs"
	"rental-admin/internal/pkg/jwt"
	"rental-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError names one rejected input field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// FromError maps a use case error onto its status by category.
func FromError(c *gin.Context, err error) {
	status, msg, detail := classify(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err,
			"stack", errs.ExtractStackLines(err, 8),
		)
	}
	AbortWithError(c, status, err, msg, detail)
}

// BindError reports a request that failed binding or struct validation.
func BindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fields)
		return
	}
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
}

// BadParam reports a malformed path or query parameter.
func BadParam(c *gin.Context, field string, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid "+field, []FieldError{{Field: field}})
}

// is also honours errs.Mark, which the standard errors.Is cannot see.
func is(err, target error) bool {
	return errors.Is(err, target) || errs.Is(err, target)
}

func classify(err error) (int, string, any) {
	var verr *errs.ValidationError
	switch {
	case errors.As(err, &verr):
		var detail any
		if verr.Field != "" {
			detail = []FieldError{{Field: verr.Field}}
		}
		return http.StatusBadRequest, verr.Err.Error(), detail
	case is(err, errs.ErrValidation):
		return http.StatusBadRequest, err.Error(), nil
	case is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid email or password", nil
	case is(err, auth.ErrSessionExpired),
		is(err, commands.ErrTokenValidation),
		is(err, jwt.ErrInvalidToken),
		is(err, jwt.ErrExpiredToken):
		return http.StatusUnauthorized, "Invalid or expired token", nil
	case is(err, errs.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
