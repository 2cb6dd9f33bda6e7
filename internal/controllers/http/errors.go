package http

import (
	"errors"
	"fmt"
	"net/http"

	"ecommerce-msv/internal/clients"
	"ecommerce-msv/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the uniform error payload every service returns.
type ErrorResponse struct {
	Code     int    `json:"code"`
	Response string `json:"response"`
}

// errInvalidID marks a path id that is not a positive integer.
var errInvalidID = errors.New("the id must be a positive integer")

// Translate maps every failure mode, local or remote, to the status code and
// message the caller sees. It is the single mapping point: services and
// clients raise typed errors and never shape HTTP responses themselves.
func Translate(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusBadRequest, firstFieldError(validationErrs)
	}

	if errors.Is(err, errInvalidID) {
		return http.StatusBadRequest, errInvalidID.Error()
	}

	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound, "no information found for the given identifier"
	}

	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return http.StatusConflict, conflict.Reason
	}

	// Remote outcomes. "The remote said no" mirrors the remote's intent;
	// "no response at all" blames the dependency, not the caller.
	if errors.Is(err, clients.ErrNotFound) {
		return http.StatusNotFound, "resource not found on the remote service"
	}
	if errors.Is(err, clients.ErrUnavailable) {
		return http.StatusServiceUnavailable, "the remote service is not available or not responding"
	}
	if errors.Is(err, clients.ErrBadResponse) {
		return http.StatusBadGateway, "invalid response from the remote service"
	}

	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Code {
		case http.StatusBadRequest:
			return http.StatusBadRequest, "invalid request sent to the remote service"
		case http.StatusUnauthorized:
			return http.StatusUnauthorized, "not authorized to access the remote service"
		case http.StatusForbidden:
			return http.StatusForbidden, "access to the remote service is forbidden"
		case http.StatusServiceUnavailable:
			return http.StatusServiceUnavailable, "the remote service is not available"
		default:
			return http.StatusBadGateway, "error communicating with the remote service"
		}
	}

	return http.StatusInternalServerError, "internal server error"
}

// respondError translates err and writes the uniform payload. Unrecognized
// causes are logged here and never echoed to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	code, message := Translate(err)
	if code == http.StatusInternalServerError {
		logger.Error("unhandled error", zap.Error(err))
	} else {
		logger.Warn("request failed",
			zap.Int("status", code),
			zap.String("reason", message),
		)
	}
	c.JSON(code, ErrorResponse{Code: code, Response: message})
}

// respondBindError distinguishes field validation failures, which carry the
// first failing field, from plain malformed bodies.
func respondBindError(c *gin.Context, logger *zap.Logger, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:     http.StatusBadRequest,
		Response: "malformed request body",
	})
}

func firstFieldError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "validation failed"
	}
	fe := errs[0]
	if fe.Param() != "" {
		return fmt.Sprintf("%s: failed on rule '%s=%s'", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed on rule '%s'", fe.Field(), fe.Tag())
}
