// Copyright 2026 Jacob Maynard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// acvphash processes ACVP secure-hash vector sets offline. It reads a
// request document, a single vector set or an array of vector sets with an
// optional version preamble, runs every test case against the bundled
// standard-library module, and writes the response document.
//
// Usage:
//
//	acvphash [-in request.json] [-out response.json]
//	acvphash -algorithms
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jacobmaynard/goacvp/acvp"
	"github.com/jacobmaynard/goacvp/hash"
	"github.com/jacobmaynard/goacvp/stdmodule"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("acvphash", flag.ContinueOnError)
	flags.SetOutput(stderr)
	inPath := flags.String("in", "-", "vector-set request file, - for stdin")
	outPath := flags.String("out", "-", "response file, - for stdout")
	listAlgorithms := flags.Bool("algorithms", false, "list supported algorithms and exit")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if *listAlgorithms {
		for _, alg := range hash.Algorithms() {
			fmt.Fprintln(stdout, alg)
		}
		return 0
	}

	registry := acvp.NewRegistry()
	if err := stdmodule.Register(registry); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	request, err := readInput(*inPath, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	response, err := process(registry, request)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	if err := writeOutput(*outPath, stdout, response); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// process handles both document shapes ACVP delivers: a single vector-set
// object, or an array of vector sets. Array elements without an algorithm
// field, such as the acvVersion preamble, are passed through unchanged.
func process(registry *acvp.Registry, request []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(request)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return hash.ProcessVectorSet(registry, trimmed)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, fmt.Errorf("%w: %v", acvp.ErrMalformedInput, err)
	}
	responses := make([]json.RawMessage, 0, len(elements))
	for _, element := range elements {
		var probe struct {
			Algorithm *string `json:"algorithm"`
		}
		if err := json.Unmarshal(element, &probe); err != nil {
			return nil, fmt.Errorf("%w: %v", acvp.ErrMalformedInput, err)
		}
		if probe.Algorithm == nil {
			responses = append(responses, element)
			continue
		}
		response, err := hash.ProcessVectorSet(registry, element)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return json.Marshal(responses)
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, stdout io.Writer, response []byte) error {
	response = append(response, '\n')
	if path == "-" {
		_, err := stdout.Write(response)
		return err
	}
	return os.WriteFile(path, response, 0o644)
}
