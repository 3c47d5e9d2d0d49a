// Package validate sweeps the conversion engine's two tiers against
// each other. For every day of the requested solar years it converts
// through the year-code table and through the astronomical algorithm
// and reports any disagreement. Years are checked concurrently.
package validate

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vnlunar/amlich/internal/calendar"
	"github.com/vnlunar/amlich/internal/logger"
)

// astroConvert is an indirection for the astronomical tier; tests can
// override this to force mismatches.
var astroConvert = calendar.SolarToLunarAstro

// Run checks every day of the solar years [fromYear, toYear] for
// agreement between the lookup and astronomical tiers.
//
// Behavior:
//   - Clamps the range to the year-code table's span (1800–2099);
//     outside it there is nothing to compare.
//   - Uses a concurrency limit based on CPU count, or the provided
//     parallel value when positive.
//   - On the first mismatch, cancels the remaining years and returns
//     an error describing the offending day.
//
// Returns:
//   - error: first mismatch or conversion failure encountered (if any).
func Run(ctx context.Context, fromYear, toYear, parallel int, timezone float64) error {
	const tableFirst, tableLast = 1800, 2099

	if fromYear < tableFirst {
		fromYear = tableFirst
	}
	if toYear > tableLast {
		toYear = tableLast
	}
	if fromYear > toYear {
		return fmt.Errorf("empty year range %d-%d after clamping to table span", fromYear, toYear)
	}

	maxParallel := runtime.NumCPU()
	if parallel > 0 {
		maxParallel = parallel
	}

	logger.L().Info().
		Int("from", fromYear).
		Int("to", toYear).
		Int("max_parallel", maxParallel).
		Msg("validation start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	start := time.Now()
	for y := fromYear; y <= toYear; y++ {
		year := y
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			days, err := checkYear(year, timezone)
			if err != nil {
				logger.L().Error().Int("year", year).Err(err).Msg("year failed")
				return err
			}
			logger.L().Debug().Int("year", year).Int("days", days).Msg("year ok")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.L().Info().
		Int("years", toYear-fromYear+1).
		Dur("elapsed", time.Since(start)).
		Msg("validation completed")
	return nil
}

// checkYear compares both tiers for every day of one solar year and
// returns the number of days checked.
func checkYear(year int, timezone float64) (int, error) {
	startJD := calendar.JDFromDate(1, 1, year)
	endJD := calendar.JDFromDate(31, 12, year)

	for jd := startJD; jd <= endJD; jd++ {
		d, m, y := calendar.JDToDate(jd)

		table, err := calendar.SolarToLunar(d, m, y, timezone)
		if err != nil {
			return 0, fmt.Errorf("table tier %02d/%02d/%04d: %w", d, m, y, err)
		}
		astro, err := astroConvert(d, m, y, timezone)
		if err != nil {
			return 0, fmt.Errorf("astro tier %02d/%02d/%04d: %w", d, m, y, err)
		}
		if table != astro {
			return 0, fmt.Errorf("tier mismatch on %02d/%02d/%04d: table=%v astro=%v", d, m, y, table, astro)
		}
	}
	return endJD - startJD + 1, nil
}
