package http

import (
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const kindUnauthorized = "unauthorized"

// statusFor maps an error kind to a status. Only the not-found status differs
// between operations: pricing and registration answer 400, lookups by id 404.
func statusFor(kind errs.Kind, notFoundStatus int) int {
	switch kind {
	case errs.KindValidation, errs.KindPreconditionFailed, errs.KindConflict, errs.KindWriteFailed:
		return http.StatusBadRequest
	case errs.KindNotFound:
		return notFoundStatus
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an Error body. Internal errors are logged and
// replaced by a generic message.
func respondError(ctx echo.Context, logger *slog.Logger, err error, notFoundStatus int) error {
	kind := errs.KindOf(err)
	status := statusFor(kind, notFoundStatus)

	message := err.Error()
	if kind == errs.KindInternal {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"request_id", ctx.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Kind:    kind.String(),
		Message: message,
	})
}

func respondBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Kind:    errs.KindValidation.String(),
		Message: err.Error(),
	})
}

// bindError reports a body that could not be decoded.
func bindError(err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return errs.NewValueIsInvalidErrorWithCause("request body", errors.New(msg))
		}
	}
	return errs.NewValueIsInvalidErrorWithCause("request body", err)
}

// errorHandler renders errors that never reached a use case (unknown routes,
// wrong methods, recovered panics) in the same Error shape.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := http.StatusText(status)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		}

		kind := errs.KindInternal.String()
		switch {
		case status == http.StatusNotFound:
			kind = errs.KindNotFound.String()
		case status < http.StatusInternalServerError:
			kind = errs.KindValidation.String()
		default:
			logger.ErrorContext(ctx.Request().Context(), "unhandled error", "path", ctx.Path(), "error", err)
		}

		if writeErr := ctx.JSON(status, Error{Code: status, Kind: kind, Message: message}); writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
