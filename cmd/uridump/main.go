/*
Copyright 2026 Uriparse Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command uridump splits URI references into their RFC 3986 components
// and prints one JSON object per input, with null for absent parts.
// URIs are taken from the command line, or from standard input one per
// line when no arguments are given.
package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/jplu/uriparse/uri"
)

func main() {
	flags := pflag.NewFlagSet("uridump", pflag.ExitOnError)
	idn := flags.Bool("idn", true, "validate internationalized hosts via IDNA")
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	os.Exit(run(flags.Args(), *idn, os.Stdin, os.Stdout, log))
}

// run parses every URI and encodes its components to out. The exit
// status is non-zero when any input failed to parse.
func run(args []string, idn bool, in io.Reader, out io.Writer, log zerolog.Logger) int {
	var opts []uri.Option
	if !idn {
		opts = append(opts, uri.WithoutIDN())
	}
	parser := uri.New(opts...)

	uris := args
	if len(uris) == 0 {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			uris = append(uris, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			log.Error().Err(err).Msg("Failed to read standard input")
			return 1
		}
	}

	status := 0
	enc := json.NewEncoder(out)
	for _, u := range uris {
		components, err := parser.Parse(u)
		if err != nil {
			log.Error().Err(err).Str("uri", u).Msg("Failed to parse URI")
			status = 1
			continue
		}
		if err := enc.Encode(components); err != nil {
			log.Error().Err(err).Msg("Failed to encode components")
			return 1
		}
	}
	return status
}
