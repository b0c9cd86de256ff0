package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	formstate "github.com/goliatone/go-formstate"
	"github.com/goliatone/go-formstate/internal/config"
	"github.com/goliatone/go-formstate/internal/logger"
	"github.com/goliatone/go-formstate/internal/server"
	"github.com/goliatone/go-formstate/pkg/definition"
	"github.com/goliatone/go-formstate/pkg/form"
	pkgopenapi "github.com/goliatone/go-formstate/pkg/openapi"
	"github.com/goliatone/go-formstate/pkg/orchestrator"
	"github.com/goliatone/go-formstate/pkg/prompt"
	"github.com/goliatone/go-formstate/pkg/render"
)

const (
	exitOK      = 0
	exitConfig  = 1
	exitInvalid = 2
)

// assignments collects repeated -set name=value flags.
type assignments map[string]string

func (a assignments) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k+"="+a[k])
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

func (a assignments) Set(raw string) error {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", raw)
	}
	a[name] = value
	return nil
}

type options struct {
	definitions string
	formID      string
	openapi     string
	operation   string
	values      assignments
	interactive bool
	serve       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}

// run executes the CLI. A nil driver selects the survey terminal driver.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver prompt.Driver) int {
	errLog := log.New(stderr, "formstate: ", 0)

	opts, err := parseFlags(args, stderr)
	if err != nil {
		return exitConfig
	}

	cfg, err := config.Load()
	if err != nil {
		errLog.Printf("load config: %v", err)
		return exitConfig
	}
	appLog, err := logger.NewZapLogger(cfg.Logger())
	if err != nil {
		errLog.Printf("init logger: %v", err)
		return exitConfig
	}

	var store *definition.Store
	if opts.definitions != "" {
		store, err = formstate.LoadDefinitions(os.DirFS(opts.definitions))
		if err != nil {
			errLog.Printf("load definitions: %v", err)
			return exitConfig
		}
		appLog.Debug("definitions loaded", logger.String("dir", opts.definitions), logger.Strings("forms", store.IDs()))
	}

	if opts.serve {
		if store.Empty() {
			errLog.Printf("-serve requires -definitions with at least one form")
			return exitConfig
		}
		router := server.NewRouter(server.RouterDependencies{Store: store, Logger: appLog})
		if err := server.NewServer(cfg.HTTP, appLog, router).Run(ctx); err != nil {
			errLog.Printf("serve: %v", err)
			return exitConfig
		}
		return exitOK
	}

	req := orchestrator.Request{FormID: opts.formID, OperationID: opts.operation}
	if opts.formID == "" && opts.openapi != "" {
		req.Source, err = pkgopenapi.ParseSource(opts.openapi)
		if err != nil {
			errLog.Printf("%v", err)
			return exitConfig
		}
	}

	orch := orchestrator.New(
		orchestrator.WithDefinitions(store),
		orchestrator.WithLoader(formstate.NewLoader(pkgopenapi.WithHTTPFallback(cfg.OpenAPI.Timeout))),
	)
	result, err := orch.Resolve(ctx, req)
	if err != nil {
		errLog.Printf("resolve form: %v", err)
		return exitConfig
	}
	formLog := appLog.With(logger.String("form", result.ID))

	f := applyValues(result.Form, opts.values, formLog)

	if opts.interactive {
		session := prompt.NewSession(
			prompt.WithDriver(driver),
			prompt.WithLabels(result.Label),
			prompt.WithSecrets(result.Secret),
		)
		f, err = session.Run(ctx, f)
		if errors.Is(err, prompt.ErrAborted) {
			formLog.Warn("prompt aborted")
			return exitConfig
		}
		if err != nil && !errors.Is(err, prompt.ErrRoundsExhausted) {
			errLog.Printf("prompt: %v", err)
			return exitConfig
		}
	}

	if err := writeState(stdout, f); err != nil {
		errLog.Printf("write state: %v", err)
		return exitConfig
	}

	if !f.Valid() {
		for _, name := range f.InvalidFields() {
			fmt.Fprintf(stderr, "%s: %s\n", name, render.DisplayString(f.Errors(name)))
		}
		formLog.Info("form invalid", logger.Strings("invalid_fields", f.InvalidFields()))
		return exitInvalid
	}
	formLog.Info("form valid")
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{values: assignments{}}

	fs := flag.NewFlagSet("formstate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.definitions, "definitions", "", "directory of form definition files (JSON/YAML)")
	fs.StringVar(&opts.formID, "form", "", "form id from -definitions")
	fs.StringVar(&opts.openapi, "openapi", "", "OpenAPI document path or URL")
	fs.StringVar(&opts.operation, "operation", "", "OpenAPI operation id")
	fs.Var(opts.values, "set", "field value as name=value (repeatable)")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for every field in the terminal")
	fs.BoolVar(&opts.serve, "serve", false, "serve live validation over HTTP for -definitions")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// applyValues applies -set assignments, warning about names the form lacks.
func applyValues(f form.Form, values map[string]string, log logger.Logger) form.Form {
	known := make(map[string]string, len(values))
	for name, value := range values {
		if _, ok := f.Field(name); !ok {
			log.Warn("ignoring unknown field", logger.String("field", name))
			continue
		}
		known[name] = value
	}
	return f.UpdateInputs(known)
}

func writeState(w io.Writer, f form.Form) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(f.Snapshot())
}
