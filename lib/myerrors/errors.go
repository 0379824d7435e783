package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type messager interface {
	Message() string
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

// Message returns the text of the wrapped error, without the status prefix.
func (e httpError) Message() string {
	return e.err.Error()
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewMethodNotAllowedError(err error) *httpError {
	return newError(http.StatusMethodNotAllowed, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewInternalErrorf(format string, args ...any) *httpError {
	return NewInternalError(fmt.Errorf(format, args...))
}

func GetHTTPStatus(err error) int {
	if err != nil {
		var coder httpErrorCoder
		if errors.As(err, &coder) {
			return coder.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}

// GetMessage returns the human readable part of err, suitable for a response body.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var m messager
	if errors.As(err, &m) {
		return m.Message()
	}
	return err.Error()
}
