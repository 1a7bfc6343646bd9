package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/just-hms/bandcheck/band"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errViolations = errors.New("values out of band")

type options struct {
	config  string
	rules   []string
	exec    string
	jobs    int
	verbose bool
	noColor bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "bandcheck",
		Short: "Check numeric JSON values against inclusive bands",
		Long: `bandcheck reads JSON documents from files, stdin or a command's output and
checks the numbers found at gjson paths against inclusive [min, max] bands.

Rules come from a YAML file (--config, $BANDCHECK_CONFIG or .bandcheck.yml) and
from --rule flags of the form [name:]path=min..max.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "YAML file with band rules")
	flags.StringArrayVarP(&opts.rules, "rule", "r", nil, "band rule [name:]path=min..max (repeatable)")
	flags.StringVarP(&opts.exec, "exec", "x", "", "command whose stdout is checked as a document")
	flags.IntVarP(&opts.jobs, "jobs", "j", runtime.NumCPU(), "documents loaded concurrently")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newCheckCommand(opts), newClampCommand(opts))
	return rootCmd
}

// Execute runs bandcheck and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return exitCode(NewRootCommand().ExecuteContext(ctx))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errViolations):
		return 1
	}
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	return 2
}

// scan gathers the rules and sources selected by the flags and checks them.
// "-" and an empty source list read stdin, once.
func (o *options) scan(ctx context.Context, stdin io.Reader, args []string) ([]band.Finding, error) {
	var rules []band.Rule

	cfg, err := band.LoadConfig(band.ConfigPath(o.config))
	if err != nil {
		return nil, err
	}
	if cfg != nil {
		rules = append(rules, cfg.Rules...)
	}

	for _, s := range o.rules {
		rule, err := band.ParseRule(s)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("no rules: pass --rule or --config")
	}

	var sources []band.Source
	if cmdline := strings.Fields(o.exec); len(cmdline) > 0 {
		sources = append(sources, band.CommandSource(cmdline))
	}
	if len(sources) == 0 && len(args) == 0 {
		args = []string{"-"}
	}
	seenStdin := false
	for _, arg := range args {
		if arg != "-" {
			sources = append(sources, band.FileSource(arg))
			continue
		}
		if !seenStdin {
			sources = append(sources, band.ReaderSource("stdin", stdin))
			seenStdin = true
		}
	}

	log.Debugf("checking %d sources against %d rules", len(sources), len(rules))
	return band.Scan(ctx, sources, rules, o.jobs)
}

func (o *options) paint(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if o.noColor {
		c.DisableColor()
	}
	return c
}
