package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/just-hms/bandcheck/band"
	"github.com/spf13/cobra"
)

func newCheckCommand(opts *options) *cobra.Command {
	var all bool

	checkCmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Report values outside their band",
		Long:  `Report every value outside its band. Exits 1 when at least one value is out of band, missing or not a number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := opts.scan(cmd.Context(), cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			violations := 0
			for _, f := range findings {
				if !f.OK() {
					violations++
				} else if !all {
					continue
				}
				report(cmd.OutOrStdout(), opts, f)
			}

			if violations > 0 {
				return fmt.Errorf("%d %w", violations, errViolations)
			}
			return nil
		},
	}

	checkCmd.Flags().BoolVarP(&all, "all", "a", false, "also print values inside their band")
	return checkCmd
}

func report(w io.Writer, opts *options, f band.Finding) {
	switch f.Status {
	case band.InBand:
		opts.paint(color.FgGreen).Fprintf(w, "%s:%s: %s is in band\n", f.Source, f.Path, f.Raw)
	case band.Below:
		opts.paint(color.FgRed).Fprintf(w, "%s:%s: %s is below band (min %s)\n", f.Source, f.Path, f.Raw, formatFloat(f.Clamped))
	case band.Above:
		opts.paint(color.FgRed).Fprintf(w, "%s:%s: %s is above band (max %s)\n", f.Source, f.Path, f.Raw, formatFloat(f.Clamped))
	case band.Missing:
		opts.paint(color.FgYellow).Fprintf(w, "%s:%s: missing\n", f.Source, f.Path)
	case band.NotNumber:
		opts.paint(color.FgYellow).Fprintf(w, "%s:%s: %s is not a number\n", f.Source, f.Path, f.Raw)
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
