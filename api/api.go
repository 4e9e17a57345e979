// Package api exposes the proof pipeline over HTTP. It is a thin adapter: a
// single POST endpoint decodes the request envelope, looks up the named
// circuit and hands everything to the pipeline.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/orbinum/groth16-prover/log"
	"github.com/orbinum/groth16-prover/pipeline"
	"github.com/orbinum/groth16-prover/prover"
	"github.com/orbinum/groth16-prover/witness"
)

// ProofsEndpoint is the path proof requests are POSTed to. The circuit name
// is a URL parameter so each configured circuit gets its own resource.
const ProofsEndpoint = "/proofs/{circuit}"

// Circuit binds a name to the key material the prover needs for it.
type Circuit struct {
	Key              prover.KeySource
	NumPublicSignals int
}

// Config groups the parameters of the HTTP API.
type Config struct {
	// Circuits maps circuit names to their key material.
	Circuits map[string]Circuit
	// Backend produces proofs for every configured circuit.
	Backend prover.Backend
	// KeyCacheSize bounds the number of proving keys kept in memory.
	// Zero disables caching.
	KeyCacheSize int
}

// API is the service that handles the HTTP requests.
type API struct {
	router   *chi.Mux
	circuits map[string]Circuit
	pipe     *pipeline.Pipeline
}

// ProofRequest is the JSON envelope accepted by the proofs endpoint.
type ProofRequest struct {
	Witness          []string `json:"witness"`
	Encoding         string   `json:"encoding,omitempty"`
	NumPublicSignals *int     `json:"num_public_signals,omitempty"`
}

// New creates the API from its config. It does not start listening.
func New(conf *Config) (*API, error) {
	if conf == nil {
		return nil, fmt.Errorf("missing API configuration")
	}
	if conf.Backend == nil {
		return nil, fmt.Errorf("missing prover backend")
	}
	if len(conf.Circuits) == 0 {
		return nil, fmt.Errorf("no circuits configured")
	}
	var loader prover.KeyLoader = conf.Backend
	if conf.KeyCacheSize > 0 {
		cache, err := prover.NewKeyCache(conf.Backend, conf.KeyCacheSize)
		if err != nil {
			return nil, fmt.Errorf("key cache: %w", err)
		}
		loader = cache
	}
	a := &API{
		circuits: conf.Circuits,
		pipe:     pipeline.New(conf.Backend, loader),
	}
	a.initRouter()
	return a, nil
}

// Router returns the configured HTTP handler, for use with a custom server.
func (a *API) Router() http.Handler {
	return a.router
}

// ListenAndServe blocks serving the API until the context is cancelled, then
// shuts the server down gracefully.
func (a *API) ListenAndServe(ctx context.Context, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Infow("API server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (a *API) initRouter() {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Throttle(32))
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		httpWriteJSON(w, map[string]string{"status": "ok"})
	})
	log.Infow("register handler", "endpoint", ProofsEndpoint, "method", "POST")
	r.Post(ProofsEndpoint, a.proveHandler)

	a.router = r
}

// proveHandler generates a proof for the named circuit from the witness in
// the request body.
func (a *API) proveHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "circuit")
	circ, ok := a.circuits[name]
	if !ok {
		ErrCircuitNotFound.Withf("%q", name).Write(w)
		return
	}
	req := &ProofRequest{}
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrMalformedBody.WithErr(err).Write(w)
		return
	}
	enc := witness.EncodingHex
	if req.Encoding != "" {
		var err error
		if enc, err = witness.ParseEncoding(req.Encoding); err != nil {
			ErrMalformedParam.WithErr(err).Write(w)
			return
		}
	}
	start := time.Now()
	resp, err := a.pipe.Run(&pipeline.Request{
		WitnessValues:    req.Witness,
		Encoding:         enc,
		Key:              circ.Key,
		NumPublicSignals: witness.ResolveCount(req.NumPublicSignals, nil, circ.NumPublicSignals),
	})
	if err != nil {
		switch {
		case errors.Is(err, witness.ErrDecode):
			ErrMalformedWitness.WithErr(err).Write(w)
		case errors.Is(err, witness.ErrInsufficientWitness):
			ErrInsufficientWitness.WithErr(err).Write(w)
		case errors.Is(err, prover.ErrKeyLoad):
			ErrProvingKeyUnavailable.WithErr(err).Write(w)
		case errors.Is(err, prover.ErrProver), errors.Is(err, prover.ErrSerialization):
			ErrProofGenerationFailed.WithErr(err).Write(w)
		default:
			ErrGenericInternalServerError.WithErr(err).Write(w)
		}
		return
	}
	log.Infow("proof generated", "circuit", name, "took", time.Since(start).String())
	httpWriteJSON(w, resp)
}
