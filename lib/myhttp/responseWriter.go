package myhttp

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/hatua/futuretech/lib/myerrors"
	"github.com/hatua/futuretech/lib/mylog"
)

type ResponseWriter interface {
	WriteError(c context.Context, w http.ResponseWriter, err error)
	Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any)
	WritePlain(c context.Context, w http.ResponseWriter, httpStatus int, text string)
}

// ErrorResponse is the failure envelope of every json endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewWriter(logger mylog.Logger) ResponseWriter {
	return &responseWriter{
		logger: logger,
	}
}

type responseWriter struct {
	logger mylog.Logger
}

func (rw responseWriter) WriteError(c context.Context, w http.ResponseWriter, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)
	severity := mylog.SeverityWarn
	if httpStatus >= http.StatusInternalServerError {
		severity = mylog.SeverityError
	}
	rw.logger.Log(c, "", severity, "Error response: http-status:%d, error-msg:%s", httpStatus, err)
	rw.write(w, httpStatus, ErrorResponse{
		Error: myerrors.GetMessage(err),
	})
}

func (rw responseWriter) Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Success response: http-status:%d", httpStatus)
	rw.write(w, httpStatus, resp)
}

func (rw responseWriter) WritePlain(c context.Context, w http.ResponseWriter, httpStatus int, text string) {
	rw.logger.Log(c, "", mylog.SeverityInfo, "Plain response: http-status:%d", httpStatus)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(httpStatus)
	_, err := w.Write([]byte(text))
	if err != nil {
		log.Printf("Error writing plain response: %s", err)
	}
}

func (rw responseWriter) write(w http.ResponseWriter, httpStatus int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	err := encoder.Encode(resp)
	if err != nil {
		log.Printf("Error writing response: %s", err)
		return
	}
}
