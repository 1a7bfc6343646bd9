package band

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Scan loads and checks the sources concurrently, at most limit at a time when
// limit > 0. Findings keep the order of sources. The first error stops the scan.
func Scan(ctx context.Context, sources []Source, rules []Rule, limit int) ([]Finding, error) {
	results := make([][]Finding, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, src := range sources {
		g.Go(func() error {
			doc, err := src.Load(ctx)
			if err != nil {
				return err
			}
			log.Debugf("loaded %s (%d bytes)", src.Name, len(doc))

			findings, err := Check(src.Name, doc, rules)
			if err != nil {
				return err
			}
			results[i] = findings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var findings []Finding
	for _, r := range results {
		findings = append(findings, r...)
	}
	return findings, nil
}
