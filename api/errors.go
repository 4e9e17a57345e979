package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/orbinum/groth16-prover/log"
)

// Error satisfies the error interface and carries the numeric code and HTTP
// status written to the client. Codes in the 40001-49999 range are the
// client's fault, 50001-59999 the server's. Never change an existing code,
// only append.
type Error struct {
	Err        error
	Code       int
	HTTPstatus int
}

var (
	ErrMalformedBody       = Error{Code: 40001, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed JSON body")}
	ErrMalformedWitness    = Error{Code: 40002, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed witness value")}
	ErrCircuitNotFound     = Error{Code: 40003, HTTPstatus: http.StatusNotFound, Err: fmt.Errorf("circuit not found")}
	ErrInsufficientWitness = Error{Code: 40004, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("witness shorter than the public-signal count demands")}
	ErrMalformedParam      = Error{Code: 40005, HTTPstatus: http.StatusBadRequest, Err: fmt.Errorf("malformed parameter")}

	ErrMarshalingServerJSONFailed = Error{Code: 50001, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("marshaling (server-side) JSON failed")}
	ErrGenericInternalServerError = Error{Code: 50002, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("internal server error")}
	ErrProvingKeyUnavailable      = Error{Code: 50003, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("proving key unavailable")}
	ErrProofGenerationFailed      = Error{Code: 50004, HTTPstatus: http.StatusInternalServerError, Err: fmt.Errorf("proof generation failed")}
)

// Error returns the Message and Code found in Error
func (e Error) Error() string {
	return fmt.Sprintf("%v (%d)", e.Err, e.Code)
}

// Unwrap returns the wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// WithErr returns a copy of Error with the passed error wrapped into Err.
func (e Error) WithErr(err error) Error {
	e.Err = fmt.Errorf("%w: %v", e.Err, err)
	return e
}

// Withf returns a copy of Error with the formatted message appended to Err.
func (e Error) Withf(format string, args ...any) Error {
	e.Err = fmt.Errorf("%w: %v", e.Err, fmt.Sprintf(format, args...))
	return e
}

// Write serializes the error as the JSON error envelope and sends it with the
// proper HTTP status.
func (e Error) Write(w http.ResponseWriter) {
	msg := e.Err.Error()
	data, err := json.Marshal(map[string]any{
		"error": msg,
		"code":  e.Code,
	})
	if err != nil {
		log.Warnw("failed to marshal error response", "error", err)
		http.Error(w, msg, e.HTTPstatus)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.HTTPstatus)
	if _, err := w.Write(data); err != nil {
		log.Warnw("failed to write error response", "error", err)
	}
}
