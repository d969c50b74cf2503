package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/goliatone/go-modelmap"
	"github.com/goliatone/go-modelmap/pkg/catalog"
	"github.com/goliatone/go-modelmap/pkg/diag"
	"github.com/goliatone/go-modelmap/pkg/model"
	pkgopenapi "github.com/goliatone/go-modelmap/pkg/openapi"
	"github.com/goliatone/go-modelmap/pkg/orchestrator"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	httpTimeout = 30 * time.Second
)

var errUsage = errors.New("usage")

// chooser picks one of options, used for interactive model selection.
type chooser func(message string, options []string) (string, error)

type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	choose chooser
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{stdin: stdin, stdout: stdout, stderr: stderr, choose: surveySelect}
}

func surveySelect(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

// session carries what every subcommand needs once flags are parsed.
type session struct {
	cfg     *viper.Viper
	log     *logrus.Logger
	metrics *prometheus.Registry
	sink    diag.Sink
	counts  *diag.Collector
}

type command struct {
	name    string
	summary string
	flags   func(fs *flag.FlagSet)
	run     func(a *app, ctx context.Context, s *session) error
}

var commands = []command{
	{
		name:    "catalog",
		summary: "extract a model catalog from an OpenAPI document",
		flags: func(fs *flag.FlagSet) {
			fs.String("source", "", "OpenAPI document path or URL")
			fs.String("out", "", "output file (stdout if empty)")
			fs.String("patch", "", "catalog patch document applied after extraction")
			fs.Bool("partial", false, "accept documents without paths")
		},
		run: (*app).runCatalog,
	},
	{
		name:    "generate",
		summary: "render typed Go models from a catalog or OpenAPI document",
		flags: func(fs *flag.FlagSet) {
			fs.String("catalog", "", "catalog file")
			fs.String("source", "", "OpenAPI document path or URL, used when -catalog is empty")
			fs.String("package", "models", "package name of the generated file")
			fs.String("out", "", "output file (stdout if empty)")
			fs.String("patch", "", "catalog patch document applied before generation")
			fs.Bool("partial", false, "accept documents without paths")
		},
		run: (*app).runGenerate,
	},
	{
		name:    "hydrate",
		summary: "normalise a JSON payload through a catalog model",
		flags: func(fs *flag.FlagSet) {
			fs.String("catalog", "", "catalog file")
			fs.String("model", "", "model to hydrate")
			fs.String("input", "-", "JSON payload file (- for stdin)")
			fs.Bool("interactive", false, "prompt for the model when -model is empty")
			fs.Bool("strict", false, "fail when any diagnostic is reported")
		},
		run: (*app).runHydrate,
	},
}

func (a *app) usage() {
	fmt.Fprintf(a.stderr, "Usage: modelmap <command> [flags]\n\nCommands:\n")
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %-9s %s\n", c.name, c.summary)
	}
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return exitUsage
	}
	var cmd *command
	for i := range commands {
		if commands[i].name == args[0] {
			cmd = &commands[i]
		}
	}
	if cmd == nil {
		if args[0] != "help" && args[0] != "-h" && args[0] != "-help" {
			fmt.Fprintf(a.stderr, "modelmap: unknown command %q\n", args[0])
		}
		a.usage()
		return exitUsage
	}

	fs := flag.NewFlagSet("modelmap "+cmd.name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "config file (default modelmap.yaml if present)")
	fs.String("log-level", "", "log level (debug, info, warn, error)")
	fs.String("log-format", "", "log format (json or text)")
	fs.String("metrics-out", "", "write diagnostic counters to this Prometheus textfile")
	cmd.flags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(fs, *configPath)
	if err != nil {
		fmt.Fprintf(a.stderr, "modelmap: %v\n", err)
		return exitError
	}

	s, err := a.newSession(cfg)
	if err != nil {
		fmt.Fprintf(a.stderr, "modelmap: %v\n", err)
		return exitError
	}

	err = cmd.run(a, ctx, s)
	if path := cfg.GetString("metrics.out"); path != "" {
		if werr := prometheus.WriteToTextfile(path, s.metrics); werr != nil {
			s.log.WithError(werr).Error("write metrics")
			if err == nil {
				err = werr
			}
		}
	}
	switch {
	case errors.Is(err, errUsage):
		s.log.Error(err.Error())
		fs.Usage()
		return exitUsage
	case err != nil:
		s.log.WithField("command", cmd.name).Error(err.Error())
		return exitError
	default:
		return exitOK
	}
}

func (a *app) newSession(cfg *viper.Viper) (*session, error) {
	logger := diag.NewLogger(cfg.GetString("log.format"), cfg.GetString("log.level"))
	logger.SetOutput(a.stderr)

	registry := prometheus.NewRegistry()
	metrics, err := diag.NewMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	counts := &diag.Collector{}
	return &session{
		cfg:     cfg,
		log:     logger,
		metrics: registry,
		sink:    diag.Tee(diag.NewLogrusSink(logger), metrics, counts),
		counts:  counts,
	}, nil
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errUsage}, args...)...)
}

func (s *session) orchestrator() (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithLogger(s.log),
		orchestrator.WithLoader(modelmap.NewLoader(pkgopenapi.WithHTTPFallback(httpTimeout))),
		orchestrator.WithExtractor(modelmap.NewExtractor(
			pkgopenapi.WithPartialDocuments(s.cfg.GetBool("partial")),
			pkgopenapi.WithExtractLogger(s.log),
		)),
	}
	if path := s.cfg.GetString("patch"); path != "" {
		patch, err := orchestrator.NewPatchTransformerFromFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithCatalogTransformer(patch))
	}
	return orchestrator.New(options...), nil
}

func (s *session) source() (pkgopenapi.Source, error) {
	raw := s.cfg.GetString("source")
	if raw == "" {
		return nil, usageError("-source is required")
	}
	return pkgopenapi.ParseSource(raw)
}

func (a *app) runCatalog(ctx context.Context, s *session) error {
	src, err := s.source()
	if err != nil {
		return err
	}
	orch, err := s.orchestrator()
	if err != nil {
		return err
	}
	c, err := orch.Catalog(ctx, orchestrator.Request{Source: src})
	if err != nil {
		return err
	}
	data, err := catalog.Encode(c)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"source": src.Location(), "models": len(c.Models)}).Info("catalog extracted")
	return a.write(s.cfg.GetString("out"), data)
}

func (a *app) runGenerate(ctx context.Context, s *session) error {
	req := orchestrator.Request{Package: s.cfg.GetString("package")}
	if path := s.cfg.GetString("catalog"); path != "" {
		c, err := catalog.LoadFile(path)
		if err != nil {
			return err
		}
		req.Catalog = c
		req.SourceName = filepath.Base(path)
	} else {
		if s.cfg.GetString("source") == "" {
			return usageError("-catalog or -source is required")
		}
		src, err := s.source()
		if err != nil {
			return err
		}
		req.Source = src
	}

	orch, err := s.orchestrator()
	if err != nil {
		return err
	}
	out, err := orch.Generate(ctx, req)
	if err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"package": req.Package, "bytes": len(out)}).Info("models generated")
	return a.write(s.cfg.GetString("out"), out)
}

func (a *app) runHydrate(ctx context.Context, s *session) error {
	path := s.cfg.GetString("catalog")
	if path == "" {
		return usageError("-catalog is required")
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	reg, err := c.Registry()
	if err != nil {
		return err
	}

	name := s.cfg.GetString("model")
	if name == "" {
		if !s.cfg.GetBool("interactive") {
			return usageError("-model is required unless -interactive is set")
		}
		names := reg.Names()
		sort.Strings(names)
		name, err = a.choose("Model to hydrate", names)
		if err != nil {
			return fmt.Errorf("select model: %w", err)
		}
	}

	data, err := a.read(s.cfg.GetString("input"))
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	mapper := model.NewMapper(reg, model.WithSink(s.sink))
	rec, err := mapper.Decode(name, data)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(rec.ToMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	diagnostics := len(s.counts.Diagnostics())
	s.log.WithFields(logrus.Fields{
		"model":       rec.Name(),
		"diagnostics": diagnostics,
	}).Info("payload hydrated")
	if err := a.write("", append(out, '\n')); err != nil {
		return err
	}
	if diagnostics > 0 && s.cfg.GetBool("strict") {
		return fmt.Errorf("%d diagnostics reported for %s", diagnostics, rec.Name())
	}
	return nil
}

func (a *app) read(path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil, errors.New("read stdin: input is empty")
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func (a *app) write(path string, data []byte) error {
	if strings.TrimSpace(path) == "" {
		_, err := a.stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
