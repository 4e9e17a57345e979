// Command generate-proof-from-witness reads a JSON witness file and a Groth16
// proving key, generates a proof and prints the proof plus public signals as
// a single JSON line on stdout. Diagnostics go to stderr so stdout stays
// machine-parsable.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/orbinum/groth16-prover/log"
	"github.com/orbinum/groth16-prover/pipeline"
	"github.com/orbinum/groth16-prover/prover"
	"github.com/orbinum/groth16-prover/types"
	"github.com/orbinum/groth16-prover/witness"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	conf, args, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	log.Init(conf.Log.Level, conf.Log.Output)
	log.Infow("starting prover", "version", Version, "backend", conf.Backend)

	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: generate-proof-from-witness [flags] <witness-file> <proving-key-file> [num-public-signals]")
		os.Exit(1)
	}
	witnessPath, keyPath := args[0], args[1]

	var explicit *int
	if len(args) == 3 {
		n, err := strconv.Atoi(args[2])
		if err != nil || n < 0 {
			log.Fatalf("invalid public signal count %q", args[2])
		}
		explicit = &n
	}

	enc, err := witness.ParseEncoding(conf.Encoding)
	if err != nil {
		log.Fatalf("invalid encoding: %v", err)
	}

	req, err := readWitnessFile(witnessPath)
	if err != nil {
		log.Fatalf("could not read witness file: %v", err)
	}

	backend, key, err := buildBackend(conf, keyPath)
	if err != nil {
		log.Fatalf("could not set up backend: %v", err)
	}

	resp, err := pipeline.New(backend, nil).Run(&pipeline.Request{
		WitnessValues: req.Witness,
		Encoding:      enc,
		Key:           key,
		NumPublicSignals: witness.ResolveCount(
			explicit, req.NumPublicSignals, witness.DefaultNumPublicSignals),
	})
	if err != nil {
		log.Fatalf("proof generation failed: %v", err)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		log.Fatalf("could not marshal response: %v", err)
	}
	fmt.Println(string(out))
}

// readWitnessFile parses the JSON witness envelope. A bare JSON array of
// strings is accepted too, for compatibility with raw witness dumps.
func readWitnessFile(path string) (*types.ProofRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	req := &types.ProofRequest{}
	if err := json.Unmarshal(data, req); err == nil && len(req.Witness) > 0 {
		return req, nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("%w: not a witness envelope nor a string array", witness.ErrDecode)
	}
	return &types.ProofRequest{Witness: values}, nil
}

// buildBackend wires the configured backend and its key source. The gnark
// backend needs the compiled constraint system next to the proving key; the
// rapidsnark backend takes a single zkey file.
func buildBackend(conf *Config, keyPath string) (prover.Backend, prover.KeySource, error) {
	switch conf.Backend {
	case "gnark":
		if conf.R1CS == "" {
			return nil, prover.KeySource{}, fmt.Errorf("gnark backend requires --r1cs")
		}
		return prover.GnarkBackend{}, prover.KeySource{
			KeyPath:              keyPath,
			ConstraintSystemPath: conf.R1CS,
		}, nil
	case "rapidsnark":
		return prover.RapidsnarkBackend{}, prover.KeySource{KeyPath: keyPath}, nil
	default:
		return nil, prover.KeySource{}, fmt.Errorf("unknown backend %q", conf.Backend)
	}
}
