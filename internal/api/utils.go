package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"pdf-api/pkg/api"
)

const internalErrorMessage = "Erro interno do servidor"

type codedError struct {
	err  error
	code int
}

func (e *codedError) Error() string {
	return e.err.Error()
}

func (e *codedError) Unwrap() error {
	return e.err
}

func CodedError(code int, err error) error {
	return &codedError{err: err, code: code}
}

func CodedErrorf(code int, format string, args ...any) error {
	return &codedError{err: fmt.Errorf(format, args...), code: code}
}

// errorStatus picks the response status and the message shown to the client.
func errorStatus(err error) (int, string) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	var cerr *codedError
	if errors.As(err, &cerr) {
		if cerr.code == http.StatusInternalServerError {
			slog.Error("internal server error received in endpoint", "error", err)
		}
		return cerr.code, err.Error()
	}

	slog.Error("recieved non coded error from endpoint", "error", err)
	return http.StatusInternalServerError, internalErrorMessage
}

func RestHandler(handler func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				slog.Error("recovered panic in endpoint", "panic", rec, "path", r.URL.Path)
				WriteJsonResponse(w, http.StatusInternalServerError, api.ErrorResponse{Success: false, Error: internalErrorMessage})
			}
		}()

		res, err := handler(r)
		if err != nil {
			WriteError(w, err)
			return
		}

		if res == nil {
			res = struct{}{}
		}

		WriteJsonResponse(w, http.StatusOK, res)
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, message := errorStatus(err)
	WriteJsonResponse(w, code, api.ErrorResponse{Success: false, Error: message})
}

func WriteJsonResponse(w http.ResponseWriter, code int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("error serializing response body", "error", err)
		code = http.StatusInternalServerError
		body, _ = json.Marshal(api.ErrorResponse{Success: false, Error: internalErrorMessage})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Error("error writing response body", "error", err)
	}
}
