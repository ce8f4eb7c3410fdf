package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/goserg/darts/internal/darts"
	"github.com/goserg/darts/internal/service"
	"github.com/goserg/darts/internal/storage"
)

type errorResponse struct {
	Errors []string `json:"errors"`
}

type multierr interface {
	Unwrap() []error
}

// unwrap flattens joined errors into their leaves.
func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}

func newErrorResponse(err error) errorResponse {
	resp := errorResponse{Errors: []string{}}
	for _, err := range unwrap(err) {
		resp.Errors = append(resp.Errors, err.Error())
	}
	return resp
}

func statusOf(err error) int {
	var ferr *fiber.Error
	switch {
	case errors.As(err, &ferr):
		return ferr.Code
	case errors.Is(err, storage.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrBadRequest),
		errors.Is(err, darts.ErrInvalidConfiguration),
		errors.Is(err, darts.ErrInvalidTarget),
		errors.Is(err, service.ErrInvalidPeriod):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
