// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package argsh implements the standard argument parsing pattern for command
line tools: long options (--verbose), short options (-v), bundled short
options (-vn), options with a required value, the '--' terminator, and
positional arguments, with a fixed POSIX style exit code vocabulary.

It operates on any given slice of strings and returns the parse result or a
single fatal error; reporting and process termination belong to the caller.

Usage

	opt := argsh.New()
	opt.Flag("verbose", "v")
	opt.Flag("dryrun", "n")
	opt.Value("output", "o")
	opt.TerminalFlag("help", "h")

	res, err := opt.Parse(os.Args[1:])
	if err != nil {
		var perr *argsh.ParseError
		if errors.As(err, &perr) {
			msg.Die(perr.Code, "%s", perr.Message)
		}
		msg.Die(argsh.ExitFailure, "%s", err)
	}
	if res.Terminal == "help" {
		// print help and return
	}
	if res.Called("verbose") {
		// ...
	}

Bundled short options are expanded in place: '-vn' is rewritten into '-v'
'-n' and rescanned, so '-vn file' and '-v -n file' parse identically. A
token is only treated as a bundle when every character after the dash is a
single character flag; a bundle containing any other character, including a
value taking option, is rejected whole as an invalid option rather than
partially expanded.

Parsing recovers from nothing: the first invalid option or missing argument
terminates the parse with a ParseError carrying one of the exit vocabulary
codes.

Panic

The package panics if the programmer defines the same option or alias twice.
*/
package argsh

import (
	"io"
	"log"
	"strings"

	"github.com/OkusiAssociates/argsh/disagg"
	"github.com/OkusiAssociates/argsh/internal/tokenqueue"
	"github.com/OkusiAssociates/argsh/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Kind - Indicates what recognizing an option does.
type Kind int

// Option kinds
const (
	Flag      Kind = iota // set a boolean
	ValueFlag             // set a value consumed from the following token
	Terminal              // end the parse immediately (version, help)
)

// OptionSpec - static definition of one option: a canonical name, its
// spellings and its kind. Aliases are stored without leading dashes; a single
// character alias is a short option, anything longer is a long option.
type OptionSpec struct {
	Name    string
	Aliases []string
	Kind    Kind
}

// TakesValue - reports whether recognizing the option consumes a value token.
func (s OptionSpec) TakesValue() bool {
	return s.Kind == ValueFlag
}

// bundleChar - the single character spelling eligible for bundling, 0 when
// the option has none. Value taking options are never bundle members.
func (s OptionSpec) bundleChar() byte {
	if s.Kind == ValueFlag {
		return 0
	}
	for _, alias := range s.Aliases {
		if len(alias) == 1 {
			return alias[0]
		}
	}
	return 0
}

// Parser - option table plus per parser configuration.
// Build one with New, populate it with Flag/Value/TerminalFlag and call Parse.
type Parser struct {
	specs         []*OptionSpec
	table         map[string]*OptionSpec // spelling (no dashes) -> spec
	disaggregator disagg.Strategy
}

// New - returns an empty Parser using the in process bundle expansion.
func New() *Parser {
	return &Parser{
		table:         map[string]*OptionSpec{},
		disaggregator: disagg.Default,
	}
}

// Flag - define a boolean option and its aliases.
func (p *Parser) Flag(name string, aliases ...string) *Parser {
	p.add(Flag, name, aliases)
	return p
}

// Value - define an option that requires a value and its aliases.
// The value is consumed from the following token or from '--name=value'.
func (p *Parser) Value(name string, aliases ...string) *Parser {
	p.add(ValueFlag, name, aliases)
	return p
}

// TerminalFlag - define an option that ends the parse immediately when
// recognized, such as version or help.
func (p *Parser) TerminalFlag(name string, aliases ...string) *Parser {
	p.add(Terminal, name, aliases)
	return p
}

// SetDisaggregator - selects the bundle expansion strategy.
// The default, disagg.Walk, is the right choice outside of benchmarks.
func (p *Parser) SetDisaggregator(s disagg.Strategy) {
	p.disaggregator = s
}

func (p *Parser) add(kind Kind, name string, aliases []string) {
	spellings := append([]string{name}, aliases...)
	p.failIfDefined(spellings)
	spec := &OptionSpec{Name: name, Aliases: spellings, Kind: kind}
	p.specs = append(p.specs, spec)
	for _, spelling := range spellings {
		p.table[spelling] = spec
	}
}

// failIfDefined will *panic* if an option is defined twice.
// This is not an error because the programmer has to fix this!
func (p *Parser) failIfDefined(spellings []string) {
	for _, spelling := range spellings {
		if spelling == "" {
			panic("Option/Alias name can't be empty")
		}
		if prev, ok := p.table[spelling]; ok {
			panic("Option/Alias '" + spelling + "' is already defined in option '" + prev.Name + "'")
		}
	}
}

// BundleAlphabet - the set of single character options valid as bundle
// members, in definition order.
func (p *Parser) BundleAlphabet() string {
	var alphabet strings.Builder
	for _, spec := range p.specs {
		if c := spec.bundleChar(); c != 0 {
			alphabet.WriteByte(c)
		}
	}
	return alphabet.String()
}

// Result - outcome of a successful parse.
// Flags holds true for flags and the string value for value taking options,
// keyed by canonical name. Terminal names the terminal option that ended the
// parse, empty when the token stream was exhausted normally.
type Result struct {
	Flags       map[string]interface{}
	Positionals []string
	Terminal    string
}

// Called - Indicates if the option was passed on the command line.
func (r *Result) Called(name string) bool {
	_, ok := r.Flags[name]
	return ok
}

// StringValue - the value of a value taking option, empty when unset.
func (r *Result) StringValue(name string) string {
	if v, ok := r.Flags[name].(string); ok {
		return v
	}
	return ""
}

// Parse - walks the token stream left to right, once, without backtracking.
//
// Bundled tokens are rewritten into their expansion at the front of the
// pending queue and rescanned. Everything after a bare '--' is positional.
// The first error of any kind is fatal and returned as a *ParseError; no
// partial result accompanies it.
func (p *Parser) Parse(args []string) (*Result, error) {
	if args == nil {
		args = []string{}
	}
	Logger.Printf("Parse args: %v(%d)\n", args, len(args))
	res := &Result{
		Flags:       map[string]interface{}{},
		Positionals: []string{},
	}
	alphabet := p.BundleAlphabet()
	queue := tokenqueue.New(args)

	for {
		token, ok := queue.Next()
		if !ok {
			break
		}
		Logger.Printf("Parse input arg: %s\n", token)

		// Option parsing termination: everything after '--' is positional
		// regardless of shape.
		if token == "--" {
			res.Positionals = append(res.Positionals, queue.Drain()...)
			break
		}

		// Handle lonesome dash: a conventional stdin placeholder, not an option.
		if token == "-" {
			res.Positionals = append(res.Positionals, token)
			continue
		}

		if !strings.HasPrefix(token, "-") {
			res.Positionals = append(res.Positionals, token)
			continue
		}

		// Bundled short options are expanded in place and rescanned. The shape
		// check requires every character to be in the alphabet, so a mixed
		// token like '-vqz' falls through and is rejected whole below.
		if disagg.IsBundle(token, alphabet) {
			expanded, err := p.disaggregator.Expand(strings.TrimPrefix(token, "-"))
			if err != nil {
				return nil, newParseError(ExitFailure, ErrorDisaggregation, text.ErrorDisaggregation, token, err)
			}
			Logger.Printf("Parse expanded %s into %v\n", token, expanded)
			queue.PushFront(expanded...)
			continue
		}

		shape, isOpt := shapeOf(token)
		if !isOpt {
			return nil, newParseError(ExitInvalidOption, ErrorInvalidOption, text.ErrorUnknownOption, token)
		}
		spec, known := p.table[shape.body]
		if !known {
			return nil, newParseError(ExitInvalidOption, ErrorInvalidOption, text.ErrorUnknownOption, token)
		}

		switch spec.Kind {
		case Terminal:
			res.Flags[spec.Name] = true
			res.Terminal = spec.Name
			Logger.Printf("Parse terminal option %s, done\n", spec.Name)
			return res, nil
		case ValueFlag:
			if shape.hasValue {
				res.Flags[spec.Name] = shape.value
				continue
			}
			next, hasNext := queue.Peek()
			if err := noarg(token, next, hasNext); err != nil {
				return nil, err
			}
			queue.Next()
			res.Flags[spec.Name] = next
		default:
			if shape.hasValue {
				return nil, newParseError(ExitInvalidOption, ErrorInvalidOption, text.ErrorFlagWithArgument, spec.Name, token)
			}
			res.Flags[spec.Name] = true
		}
	}

	Logger.Printf("Parse flags: %v, positionals: %v\n", res.Flags, res.Positionals)
	return res, nil
}

// noarg - guards a value taking option against being left without a value.
// Fails when there is no next token or when the next token is itself option
// shaped; the lone dash counts as a value.
func noarg(optToken string, next string, hasNext bool) error {
	if !hasNext {
		return newParseError(ExitInvalidOption, ErrorMissingArgument, text.ErrorMissingArgument, optToken)
	}
	if IsOptionShaped(next) {
		return newParseError(ExitInvalidOption, ErrorMissingArgument, text.ErrorArgumentWithDash, optToken)
	}
	return nil
}

// Parse - one shot parse of args against a static option table.
func Parse(args []string, table []OptionSpec) (*Result, error) {
	p := New()
	for _, spec := range table {
		aliases := spec.Aliases
		if len(aliases) > 0 && aliases[0] == spec.Name {
			aliases = aliases[1:]
		}
		p.add(spec.Kind, spec.Name, aliases)
	}
	return p.Parse(args)
}
