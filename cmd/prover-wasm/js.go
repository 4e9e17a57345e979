//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"syscall/js"
)

// FromJSONValue converts a JavaScript value to a Go value of type T. It
// expects a JSON string that can be unmarshaled into T.
func FromJSONValue[T any](v js.Value) (T, error) {
	if v.IsNull() || v.IsUndefined() {
		return *new(T), fmt.Errorf("value is null or undefined")
	}
	if v.Type() != js.TypeString {
		return *new(T), fmt.Errorf("expected value encoded into JSON string")
	}
	var result T
	if err := json.Unmarshal([]byte(v.String()), &result); err != nil {
		return *new(T), fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	return result, nil
}

// BytesFromJSValue copies a JavaScript Uint8Array into a Go byte slice.
func BytesFromJSValue(v js.Value) ([]byte, error) {
	if v.IsNull() || v.IsUndefined() {
		return nil, fmt.Errorf("value is null or undefined")
	}
	if v.Type() != js.TypeObject {
		return nil, fmt.Errorf("expected Uint8Array")
	}
	b := make([]byte, v.Get("length").Int())
	if n := js.CopyBytesToGo(b, v); n != len(b) {
		return nil, fmt.Errorf("short copy: %d of %d bytes", n, len(b))
	}
	return b, nil
}

// JSResult creates a JavaScript object with data and/or error fields,
// compatible with both browser and Node.js environments.
func JSResult(data any, err ...error) js.Value {
	res := map[string]any{}
	if data != nil {
		res["data"] = data
	}
	if len(err) > 0 {
		strErr := make([]string, len(err))
		for i, e := range err {
			strErr[i] = e.Error()
		}
		res["error"] = strings.Join(strErr, ", ")
	}
	return js.ValueOf(res)
}
