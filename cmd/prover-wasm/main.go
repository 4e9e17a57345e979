//go:build js && wasm
// +build js,wasm

// Command prover-wasm exposes proof generation to JavaScript. It registers a
// Groth16Prover global with a generateProof function taking the circuit type,
// the witness as a JSON array of hex strings and the proving key bytes, and
// returns the proof envelope as a JSON string.
package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/orbinum/groth16-prover/pipeline"
	"github.com/orbinum/groth16-prover/prover"
	"github.com/orbinum/groth16-prover/types"
	"github.com/orbinum/groth16-prover/witness"
)

const (
	jsClassName     = "Groth16Prover"
	jsGenerateProof = "generateProof"
	nArgs           = 3 // circuit type, witness JSON, proving key bytes
)

var pipe = pipeline.New(prover.RapidsnarkBackend{}, nil)

func generateProof(args []js.Value) any {
	if len(args) != nArgs {
		return JSResult(nil, fmt.Errorf("invalid number of arguments, expected %d got %d", nArgs, len(args)))
	}
	ct := types.CircuitType(args[0].String())
	values, err := FromJSONValue[[]string](args[1])
	if err != nil {
		return JSResult(nil, fmt.Errorf("invalid witness: %v", err))
	}
	keyBytes, err := BytesFromJSValue(args[2])
	if err != nil {
		return JSResult(nil, fmt.Errorf("invalid proving key: %v", err))
	}
	resp, err := pipe.RunWithCircuitType(ct, values, witness.EncodingHex,
		prover.KeySource{KeyBytes: keyBytes})
	if err != nil {
		return JSResult(nil, fmt.Errorf("proof generation failed: %v", err))
	}
	out, err := json.Marshal(&types.WasmProofResponse{
		Proof:         resp.Proof,
		PublicSignals: resp.PublicSignals,
	})
	if err != nil {
		return JSResult(nil, fmt.Errorf("error marshaling result: %v", err))
	}
	return JSResult(string(out))
}

// main sets up the JavaScript interface and keeps the module alive.
func main() {
	proverClass := js.ValueOf(map[string]any{})
	proverClass.Set(jsGenerateProof, js.FuncOf(func(this js.Value, args []js.Value) any {
		return generateProof(args)
	}))
	js.Global().Set(jsClassName, proverClass)
	select {}
}
