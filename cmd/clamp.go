package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/just-hms/bandcheck/band"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newClampCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "clamp [file...]",
		Short: "Print every value clamped into its band",
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := opts.scan(cmd.Context(), cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, f := range findings {
				switch f.Status {
				case band.Missing, band.NotNumber:
					log.Warnf("%s:%s: %s, skipped", f.Source, f.Path, f.Status)
				case band.InBand:
					fmt.Fprintf(w, "%s:%s: %s\n", f.Source, f.Path, f.Raw)
				default:
					opts.paint(color.FgYellow).Fprintf(w, "%s:%s: %s -> %s\n", f.Source, f.Path, f.Raw, formatFloat(f.Clamped))
				}
			}
			return nil
		},
	}
}
