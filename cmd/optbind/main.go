// Package main provides the CLI entrypoint for optbind.
//
// optbind loads Go packages, finds contract interfaces, and writes a
// <contract>_optbind.go file next to each one. The file holds the wrapper
// type that answers the contract from parsed command-line arguments and
// registers it with the bind runtime:
//
//	optbind [--type T1,T2] [--config file] [--suffix s] [--dryRun] [--jsonSchema] [--verbose] [packages...]
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"optbind/bind"
	"optbind/internal/analyze"
	"optbind/internal/config"
	"optbind/internal/diagnostic"
	"optbind/internal/gen"
)

const programName = "optbind"

// Exit codes.
const (
	ExitSuccess    = 0
	ExitFailure    = 1
	ExitUsageError = 2
)

func main() {
	os.Exit(Main(os.Args[1:], os.Stdout, os.Stderr))
}

// Main is the canonical entrypoint for the optbind CLI.
// args should exclude argv[0].
func Main(args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	helped := false

	parser, err := newOptionsParser(
		bind.WithProgramName(programName),
		bind.WithCallbacks[options](bind.CallbackFuncs[options]{
			Help: func(p *bind.Parser[options]) {
				_ = p.PrintHelp(stdout)
				helped = true
			},
			Error: func(p *bind.Parser[options], message string) {
				fmt.Fprintf(stderr, "Error: %s\n", message)
				_ = p.PrintHelp(stderr)
			},
		}),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitFailure
	}

	opts, err := parser.Parse(args...)
	if err != nil {
		return ExitUsageError
	}
	if helped {
		return ExitSuccess
	}

	cfg, err := config.Load(opts.Config())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	applyOptions(cfg, opts)

	logger := newLogger(stderr, cfg.Verbose)
	logger.Debug("configuration",
		slog.Any("types", cfg.Types),
		slog.Any("packages", cfg.Packages),
		slog.String("suffix", cfg.Suffix))

	res, err := analyze.NewAnalyzer(analyze.WithLogger(logger)).Load(cfg.Packages, cfg.Types)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	report(stderr, logger, &res.Diagnostics)
	if res.Diagnostics.HasErrors() {
		return ExitFailure
	}

	if len(res.Contracts) == 0 {
		fmt.Fprintln(stderr, "Error: no contracts found; mark an interface with //optbind:contract or pass --type")
		return ExitFailure
	}

	if opts.JSONSchema() {
		return printSchemas(stdout, stderr, res.Contracts)
	}

	files, err := gen.NewGenerator(cfg.GeneratorConfig()).Generate(res.Contracts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	if cfg.DryRun {
		for _, f := range files {
			fmt.Fprintf(stdout, "// %s\n%s\n", f.Path(), f.Content)
		}
		return ExitSuccess
	}

	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	for _, f := range files {
		logger.Info("wrote binding", slog.String("contract", f.Contract.String()), slog.String("file", f.Path()))
	}

	return ExitSuccess
}

// applyOptions lays the command-line options over the loaded configuration.
func applyOptions(cfg *config.Config, opts options) {
	if t := opts.Type(); t != "" {
		cfg.Types = config.SplitList(t)
	}

	if s := opts.Suffix(); s != "" {
		cfg.Suffix = s
	}

	if opts.DryRun() {
		cfg.DryRun = true
	}

	if opts.Verbose() {
		cfg.Verbose = true
	}

	if pkgs := bind.Args(opts); len(pkgs) > 0 {
		cfg.Packages = pkgs
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// report prints errors and warnings; notes only show up in debug logs.
func report(w io.Writer, logger *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Errors {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	for _, d := range diags.Infos {
		logger.Debug(d.Message, slog.String("code", d.Code), slog.String("contract", d.Contract))
	}
}

func printSchemas(stdout, stderr io.Writer, contracts []*analyze.Contract) int {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	for _, c := range contracts {
		if err := enc.Encode(gen.JSONSchema(c)); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitFailure
		}
	}

	return ExitSuccess
}
