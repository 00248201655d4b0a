package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/vedro-universe/vedro-gitlab-reporter/internal/config"
	"github.com/vedro-universe/vedro-gitlab-reporter/internal/gitlab"
	"github.com/vedro-universe/vedro-gitlab-reporter/internal/printing"
	"github.com/vedro-universe/vedro-gitlab-reporter/internal/scenario"
)

// ReportCmd returns a subcommand that formats a scenario-run event stream
// for a GitLab CI job log.
func ReportCmd() subcommands.Command {
	return &reportCmd{
		out: os.Stdout,
		in:  os.Stdin,
		log: printing.NewLogWriter(os.Stderr),
	}
}

type reportCmd struct {
	out io.Writer
	in  io.Reader
	log *printing.LogWriter

	mode           string
	input          string
	configPath     string
	tbMaxFrames    int
	tbShowInternal bool
	noColor        bool
}

func (*reportCmd) Name() string {
	return "report"
}

func (*reportCmd) Synopsis() string {
	return "format a scenario run for a GitLab CI job log"
}

func (*reportCmd) Usage() string {
	return `report -mode <steps|vars|scope> [-input <path>] [-config <path>]:
  Read host-engine lifecycle events (one JSON object per line) and print a
  GitLab CI job log with collapsible detail sections for failed scenarios.
`
}

func (t *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&t.mode, "mode", "", "collapsable mode: steps, vars, or scope")
	f.StringVar(&t.input, "input", "", "read lifecycle events from this file instead of stdin")
	f.StringVar(&t.configPath, "config", "", "read defaults from this YAML config file")
	f.IntVar(&t.tbMaxFrames, "tb-max-frames", 8, "max traceback frames to show (min 4)")
	f.BoolVar(&t.tbShowInternal, "tb-show-internal-calls", false, "show internal calls in the traceback output")
	f.BoolVar(&t.noColor, "no-color", false, "disable ANSI color (section markers are still emitted)")
}

//revive:disable:unused-parameter
func (t *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return executeNoArgs(f, func() error { return t.impl(f) })
}

func (t *reportCmd) impl(f *flag.FlagSet) error {
	cfg, err := t.resolveConfig(f)
	if err != nil {
		return err
	}
	mode, err := gitlab.ParseCollapsableMode(cfg.CollapsableMode)
	if err != nil {
		return err
	}

	in := t.in
	src := "stdin"
	if t.input != "" {
		file, err := os.Open(t.input)
		if err != nil {
			return fmt.Errorf("failed to open input %q: %w", t.input, err)
		}
		defer func() { _ = file.Close() }()
		in, src = file, t.input
	}
	t.log.Logf("reading lifecycle events from %s", src)

	reporter := gitlab.NewReporter(t.out, mode,
		gitlab.WithTracebackMaxFrames(cfg.TbMaxFrames),
		gitlab.WithInternalCalls(cfg.TbShowInternalCalls),
		gitlab.WithColor(!cfg.NoColor),
	)
	summary, err := scenario.Parse(in, reporter)
	if err != nil {
		return fmt.Errorf("failed to read event stream: %w", err)
	}
	if err := reporter.Finish(summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if summary.Failed > 0 {
		return errScenariosFailed
	}
	return nil
}

// resolveConfig merges the config file (if any) under any explicitly set
// flags. Flags win.
func (t *reportCmd) resolveConfig(f *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if t.configPath != "" {
		loaded, err := config.Load(t.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "mode":
			cfg.CollapsableMode = t.mode
		case "tb-max-frames":
			cfg.TbMaxFrames = t.tbMaxFrames
		case "tb-show-internal-calls":
			cfg.TbShowInternalCalls = t.tbShowInternal
		case "no-color":
			cfg.NoColor = t.noColor
		}
	})

	if cfg.CollapsableMode == "" {
		return config.Config{}, errModeRequired
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
