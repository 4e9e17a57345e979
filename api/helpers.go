package api

import (
	"encoding/json"
	"net/http"

	"github.com/orbinum/groth16-prover/log"
)

// httpWriteJSON marshals v and writes it with a 200 status. Marshaling
// failures are reported to the client as a server-side error.
func httpWriteJSON(w http.ResponseWriter, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		ErrMarshalingServerJSONFailed.WithErr(err).Write(w)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(data, '\n')); err != nil {
		log.Warnw("failed to write response", "error", err)
	}
}
