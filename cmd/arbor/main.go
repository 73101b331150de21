// Copyright 2026 The Arbor Authors
// SPDX-License-Identifier: Apache-2.0

// arbor is an interactive terminal editor for JSON documents. It loads
// a file into a lazily-built tree, supports inline scalar edits, node
// deletion with one-step undo, and both incremental and exhaustive
// search over the visible structure.
//
// Three modes of operation:
//
// TUI mode (default): opens the document in the full-screen tree
// editor. Transparently reads gzip-compressed files and JSONC input
// (comments and trailing commas are normalized away on load).
//
// Query mode (--query): evaluates a gjson path expression against the
// document and prints the result to stdout. No TUI is started.
//
// Set mode (--set): applies a path=value assignment to the document
// and writes it back (or to --output). Values use the same inference
// as interactive edits: integers, booleans, and null are typed, and
// everything else becomes a string.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/arbor-foundation/arbor/lib/codec"
	"github.com/arbor-foundation/arbor/lib/config"
	"github.com/arbor-foundation/arbor/lib/editor"
	"github.com/arbor-foundation/arbor/lib/treeui"
	"github.com/arbor-foundation/arbor/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configPath string
	var logOutput string
	var outputPath string
	var queryExpr string
	var setExpr string

	flagSet := pflag.NewFlagSet("arbor", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config file (default: $ARBOR_CONFIG, else built-in defaults)")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.StringVarP(&outputPath, "output", "o", "", "write path for --set and save-as (default: the input file)")
	flagSet.StringVarP(&queryExpr, "query", "q", "", "print the value at this gjson path and exit")
	flagSet.StringVar(&setExpr, "set", "", "apply a path=value assignment and exit")
	flagSet.BoolP("help", "h", false, "show help")

	// Handle --version before flag parsing to match other binaries.
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		version.Print("arbor")
		return nil
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	args := flagSet.Args()
	if len(args) != 1 {
		printHelp(flagSet)
		return fmt.Errorf("expected exactly one JSON file argument")
	}
	filePath := args[0]

	if queryExpr != "" {
		return runQuery(filePath, queryExpr)
	}
	if setExpr != "" {
		return runSet(filePath, outputPath, setExpr)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	return runEditor(cfg, filePath, outputPath, logOutput)
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `Arbor is an interactive terminal editor for JSON documents.

Opens the file in a lazy tree view: containers materialize their
children on expansion, scalar leaves are edited inline, and deletes
can be undone one step. Gzip-compressed files (by content, any name)
and JSONC input are read transparently.

Usage:
  arbor [flags] <file>

Examples:
  # Open a document in the editor
  arbor config.json

  # Open a compressed document
  arbor snapshot.json.gz

  # Print a value without opening the editor
  arbor --query servers.0.host config.json

  # Set a value in place
  arbor --set servers.0.port=8080 config.json

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}

func loadConfig(configPath string) (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

// runQuery evaluates a gjson path against the document and prints the
// raw result. Missing paths exit non-zero so scripts can test for
// presence.
func runQuery(filePath, queryExpr string) error {
	data, err := codec.ReadFile(filePath)
	if err != nil {
		return err
	}
	result := gjson.GetBytes(jsonc.ToJSON(data), queryExpr)
	if !result.Exists() {
		return fmt.Errorf("no value at %q", queryExpr)
	}
	fmt.Println(result.Raw)
	return nil
}

var integerPattern = regexp.MustCompile(`^-?[0-9]+$`)

// runSet applies a single path=value assignment and writes the result.
// The value side uses the editor's scalar inference.
func runSet(filePath, outputPath, setExpr string) error {
	path, rawValue, found := strings.Cut(setExpr, "=")
	if !found || path == "" {
		return fmt.Errorf("--set wants path=value, got %q", setExpr)
	}

	data, err := codec.ReadFile(filePath)
	if err != nil {
		return err
	}
	normalized := jsonc.ToJSON(data)

	var updated []byte
	switch {
	case integerPattern.MatchString(rawValue):
		number, parseErr := strconv.ParseInt(rawValue, 10, 64)
		if parseErr != nil {
			return fmt.Errorf("integer out of range: %q", rawValue)
		}
		updated, err = sjson.SetBytes(normalized, path, number)
	case strings.EqualFold(rawValue, "true"):
		updated, err = sjson.SetBytes(normalized, path, true)
	case strings.EqualFold(rawValue, "false"):
		updated, err = sjson.SetBytes(normalized, path, false)
	case strings.EqualFold(rawValue, "null"):
		updated, err = sjson.SetBytes(normalized, path, nil)
	default:
		updated, err = sjson.SetBytes(normalized, path, rawValue)
	}
	if err != nil {
		return fmt.Errorf("setting %q: %w", path, err)
	}

	if outputPath == "" {
		outputPath = filePath
	}
	formatted := pretty.PrettyOptions(updated, &pretty.Options{Indent: "  "})
	return codec.WriteFile(outputPath, formatted)
}

// runEditor starts the full-screen TUI over the document.
func runEditor(cfg *config.Config, filePath, outputPath, logOutput string) error {
	logger, closeLogger, err := buildLogger(logOutput)
	if err != nil {
		return err
	}
	defer closeLogger()

	if err := cfg.EnsurePaths(); err != nil {
		return err
	}
	state, err := editor.LoadState(cfg.StateFile())
	if err != nil {
		logger.Warn("discarding unreadable UI state", "error", err)
		state = &editor.UIState{}
	}

	session := editor.NewSession(logger)
	session.Backup = cfg.Editor.BackupOnSave
	if err := session.Open(filePath); err != nil {
		return err
	}
	if outputPath != "" {
		// Save-as target: saves go to the new path, nothing is
		// written until the user saves.
		session.Retarget(outputPath)
	}

	model := treeui.NewModel(session, editor.NewRunner(), cfg)
	model.SetQuery(state.LastQuery)

	program := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	state.Touch(filePath)
	if final, ok := finalModel.(treeui.Model); ok {
		state.LastQuery = final.Query()
	}
	if err := editor.SaveState(cfg.StateFile(), state); err != nil {
		logger.Warn("cannot persist UI state", "error", err)
	}
	return nil
}

// buildLogger returns the session logger. Without --log-output all
// records are discarded: the TUI owns the terminal, and stray stderr
// writes would corrupt the alt-screen display.
func buildLogger(logOutput string) (*slog.Logger, func(), error) {
	if logOutput == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.Create(logOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file %s: %w", logOutput, err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), func() { file.Close() }, nil
}
