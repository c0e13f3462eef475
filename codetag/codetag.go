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

// Package codetag implements a finder for mnemonic-prefixed source-code
// annotations such as "TODO: ..." or "FIXME(ticket): ...". A codetag is a
// mnemonic word, an optional parenthesized annotation, and a terminating
// colon; the match extends from the mnemonic (or just past the colon, see
// Config.HideMnemonic) to the end of the input line.
package codetag

import (
	"strings"

	"github.com/coregx/coregex"
	"golang.org/x/text/unicode/norm"

	"github.com/go-squeeze/squeeze/finder"
)

// defaultMnemonics is the built-in mnemonic list used when the caller
// supplies none, grouped by codetag family.
var defaultMnemonics = []string{
	// todo
	"TODO", "MILESTONE", "MLSTN", "DONE", "YAGNI", "TBD", "TOBEDONE",
	// fixme
	"FIXME", "XXX", "DEBUG", "BROKEN", "REFACTOR", "REFACT", "RFCTR",
	"OOPS", "SMELL", "NEEDSWORK", "INSPECT",
	// bug
	"BUG", "BUGFIX",
	// nobug
	"NOBUG", "NOFIX", "WONTFIX", "DONTFIX", "NEVERFIX", "UNFIXABLE", "CANTFIX",
	// req
	"REQ", "REQUIREMENT", "STORY",
	// rfe
	"RFE", "FEETCH", "NYI", "FR", "FTRQ", "FTR",
	// idea
	"IDEA",
	// ???
	"???", "QUESTION", "QUEST", "QSTN", "WTF",
	// !!!
	"!!!", "ALERT",
	// hack
	"HACK", "CLEVER", "MAGIC",
	// port
	"PORT", "PORTABILITY", "WKRD",
	// caveat
	"CAVEAT", "CAV", "CAVT", "WARNING", "CAUTION",
	// note
	"NOTE", "HELP",
	// faq
	"FAQ",
	// gloss
	"GLOSS", "GLOSSARY",
	// see
	"SEE", "REF", "REFERENCE",
	// todoc
	"TODOC", "DOCDO", "DODOC", "NEEDSDOC", "EXPLAIN", "DOCUMENT",
	// cred
	"CRED", "CREDIT", "THANKS",
	// stat
	"STAT", "STATUS",
	// rvd
	"RVD", "REVIEWED", "REVIEW",
}

// Config configures a Finder.
type Config struct {
	// Mnemonics is a case-insensitive set of mnemonic words. Empty means
	// the built-in default list.
	Mnemonics []string

	// HideMnemonic shifts the start of the emitted range past the
	// mnemonic, its optional "(...)" annotation and the colon. When
	// false, the range starts at the mnemonic itself.
	HideMnemonic bool
}

// Finder locates the first codetag in a byte string. A Finder is immutable
// after New and safe for concurrent use.
type Finder struct {
	re           *coregex.Regex
	hideMnemonic bool
}

// New builds a Finder from cfg, compiling the mnemonic set into a single
// regular expression of the shape (?:M1|M2|...)(?:\([^)]*\))?: where each
// alternative matches its mnemonic case-insensitively. It returns a
// *ConfigError if the pattern fails to compile.
func New(cfg Config) (*Finder, error) {
	mnemonics := cfg.Mnemonics
	if len(mnemonics) == 0 {
		mnemonics = defaultMnemonics
	}

	var pattern strings.Builder
	pattern.Grow(len(mnemonics) * 16)
	pattern.WriteString("(?:")
	seen := make(map[string]struct{}, len(mnemonics))
	first := true
	for _, m := range mnemonics {
		// Normalize to NFC first so that visually identical mnemonics
		// supplied in different normalization forms collapse into one
		// alternative; the set itself is case-insensitive.
		m = norm.NFC.String(m)
		key := strings.ToUpper(m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !first {
			pattern.WriteByte('|')
		}
		first = false
		appendMnemonic(&pattern, m)
	}
	pattern.WriteString(`)(?:\([^)]*\))?:`)

	re, err := coregex.Compile(pattern.String())
	if err != nil {
		return nil, newConfigError("invalid codetag mnemonic pattern", err)
	}
	return &Finder{re: re, hideMnemonic: cfg.HideMnemonic}, nil
}

// appendMnemonic writes one regex alternative matching m
// case-insensitively. The engine has no case-insensitivity flag, so each
// ASCII letter is expanded into a two-character bracket class ("t" becomes
// "[Tt]"); digits, "_" and non-ASCII runes are written as-is, and every
// other ASCII byte is backslash-escaped.
func appendMnemonic(pattern *strings.Builder, m string) {
	for _, r := range m {
		switch {
		case r >= 'a' && r <= 'z':
			pattern.WriteByte('[')
			pattern.WriteByte(byte(r) - 'a' + 'A')
			pattern.WriteByte(byte(r))
			pattern.WriteByte(']')
		case r >= 'A' && r <= 'Z':
			pattern.WriteByte('[')
			pattern.WriteByte(byte(r))
			pattern.WriteByte(byte(r) + 'a' - 'A')
			pattern.WriteByte(']')
		case r >= '0' && r <= '9' || r == '_' || r > 0x7F:
			pattern.WriteRune(r)
		default:
			pattern.WriteByte('\\')
			pattern.WriteRune(r)
		}
	}
}

// ID returns "codetag".
func (f *Finder) ID() string {
	return "codetag"
}

// Find returns the range of the first codetag in input, extending to the
// end of the line, or ok == false if input holds none. An empty trailing
// match (a hidden mnemonic with nothing after the colon) is discarded, as
// is a codetag whose matched span carries bidirectional formatting
// characters that could conceal its rendered content.
func (f *Finder) Find(input []byte) (finder.Range, bool) {
	m := f.re.FindIndex(input)
	if m == nil {
		return finder.Range{}, false
	}
	if containsBidiFormatting(input[m[0]:m[1]]) {
		return finder.Range{}, false
	}
	from := m[0]
	if f.hideMnemonic {
		from = m[1]
	}
	to := len(input)
	if from >= to {
		return finder.Range{}, false
	}
	return finder.Range{Start: from, End: to}, true
}
