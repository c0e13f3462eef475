/*
Copyright 2025 Trident Authors

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

// Command squeeze reads lines from standard input, runs the configured
// finders over each line, and writes one match per output line.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ogier/pflag"

	"github.com/go-squeeze/squeeze/codetag"
	"github.com/go-squeeze/squeeze/finder"
	"github.com/go-squeeze/squeeze/internal/tokenize"
	"github.com/go-squeeze/squeeze/mirror"
	"github.com/go-squeeze/squeeze/uri"
)

// urlSchemes is the scheme filter installed by the --url alias.
var urlSchemes = []string{"data", "ftp", "ftps", "http", "https", "mailto", "sftp", "ws", "wss"}

// options carries the parsed command line. The uriSet and codetagSet
// fields record whether the flag appeared at all, since both flags take an
// optional value and an empty value is meaningful ("enabled, no filter").
type options struct {
	first bool
	open  bool

	codetagValue string
	codetagSet   bool
	hideMnemonic bool
	fixme        bool
	todo         bool

	mirror bool

	uriValue string
	uriSet   bool
	strict   bool
	url      bool
	http     bool
	https    bool
}

func parseArgs(args []string) *options {
	var opts options

	fs := pflag.NewFlagSet("squeeze", pflag.ExitOnError)
	fs.BoolVarP(&opts.first, "first", "1", false, "only show the first result")
	fs.BoolVar(&opts.open, "open", false, "open the results")

	fs.StringVar(&opts.codetagValue, "codetag", "", "search for codetags")
	fs.BoolVar(&opts.hideMnemonic, "hide-mnemonic", false, "whether to show the mnemonics in the results")
	fs.BoolVar(&opts.fixme, "fixme", false, "alias for: --codetag=fixme")
	fs.BoolVar(&opts.todo, "todo", false, "alias for: --codetag=todo")

	fs.BoolVar(&opts.mirror, "mirror", false, "[debug] mirror the input")

	fs.StringVar(&opts.uriValue, "uri", "", "search for uris")
	fs.BoolVar(&opts.strict, "strict", false, "strictly respect the URI RFC in regards to closing ' and )")
	fs.BoolVar(&opts.url, "url", false, "alias for: --uri="+strings.Join(urlSchemes, ","))
	fs.BoolVar(&opts.http, "http", false, "alias for: --uri=http")
	fs.BoolVar(&opts.https, "https", false, "alias for: --uri=https")

	fs.Parse(normalizeArgs(args))
	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "uri":
			opts.uriSet = true
		case "codetag":
			opts.codetagSet = true
		}
	})
	return &opts
}

// normalizeArgs rewrites a bare --uri or --codetag into --uri= / --codetag=
// so that both flags can take an optional inline value: the flag package
// would otherwise swallow the next argument as the flag's value.
func normalizeArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		if arg == "--" {
			copy(out[i:], args[i:])
			break
		}
		if arg == "--uri" || arg == "--codetag" {
			arg += "="
		}
		out[i] = arg
	}
	return out
}

// codetagFinder converts the options into a configured codetag finder, or
// (nil, nil) when none of the codetag flags were given.
func (o *options) codetagFinder() (finder.Finder, error) {
	if !(o.codetagSet || o.fixme || o.todo) {
		return nil, nil
	}
	cfg := codetag.Config{HideMnemonic: o.hideMnemonic}
	if o.codetagValue != "" {
		cfg.Mnemonics = append(cfg.Mnemonics, strings.Split(o.codetagValue, ",")...)
	}
	if o.fixme {
		cfg.Mnemonics = append(cfg.Mnemonics, "fixme")
	}
	if o.todo {
		cfg.Mnemonics = append(cfg.Mnemonics, "todo")
	}
	return codetag.New(cfg)
}

// mirrorFinder converts the options into a mirror finder, or nil when
// --mirror was not given.
func (o *options) mirrorFinder() finder.Finder {
	if !o.mirror {
		return nil
	}
	return mirror.New()
}

// uriFinder converts the options into a configured URI finder, or nil when
// none of the URI flags were given.
func (o *options) uriFinder() finder.Finder {
	if !(o.uriSet || o.url || o.http || o.https) {
		return nil
	}
	schemes := uri.NewSchemeSet()
	if o.uriValue != "" {
		for _, s := range strings.Split(o.uriValue, ",") {
			schemes.Add(s)
		}
	}
	if o.url {
		for _, s := range urlSchemes {
			schemes.Add(s)
		}
	}
	if o.http {
		schemes.Add("http")
	}
	if o.https {
		schemes.Add("https")
	}
	return uri.New(uri.Config{Schemes: schemes, Strict: o.strict})
}

func main() {
	opts := parseArgs(os.Args[1:])

	var finders []finder.Finder
	ct, err := opts.codetagFinder()
	if err != nil {
		fmt.Fprintln(os.Stderr, "squeeze:", err)
		os.Exit(1)
	}
	if ct != nil {
		finders = append(finders, ct)
	}
	if m := opts.mirrorFinder(); m != nil {
		finders = append(finders, m)
	}
	if u := opts.uriFinder(); u != nil {
		finders = append(finders, u)
	}
	if len(finders) == 0 {
		return
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		for _, f := range finders {
			stopped := tokenize.Each(line, f, func(token []byte) bool {
				fmt.Fprintf(out, "%s\n", token)
				if opts.open {
					if err := openViewer(string(token)); err != nil {
						out.Flush()
						fmt.Fprintln(os.Stderr, "squeeze: failed to open result:", err)
						os.Exit(1)
					}
				}
				return !opts.first
			})
			if stopped {
				return
			}
		}
	}
}
