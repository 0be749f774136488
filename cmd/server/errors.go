package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ko-stant/dungeon-bsp/internal/dungeon"
	"github.com/Ko-stant/dungeon-bsp/internal/protocol"
)

const (
	CodeBadRequest    = "bad_request"
	CodeInvalidConfig = "invalid_config"
	CodeUnknownIntent = "unknown_intent"
)

// RequestError represents a rejected client request
type RequestError struct {
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func badRequest(format string, v ...any) *RequestError {
	return &RequestError{Code: CodeBadRequest, Message: fmt.Sprintf(format, v...)}
}

// asRequestError classifies err for the client; anything unrecognised is reported as internal.
func asRequestError(err error) *RequestError {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr
	}
	if errors.Is(err, dungeon.ErrInvalidConfig) {
		return &RequestError{Code: CodeInvalidConfig, Message: err.Error()}
	}
	return &RequestError{Code: "internal", Message: err.Error()}
}

func statusFor(err *RequestError) int {
	switch err.Code {
	case CodeBadRequest, CodeInvalidConfig, CodeUnknownIntent:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorPatch(err error) protocol.ErrorPatch {
	reqErr := asRequestError(err)
	return protocol.ErrorPatch{Code: reqErr.Code, Message: reqErr.Message}
}
