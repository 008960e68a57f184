package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Flarenzy/subnetsplit/internal/cidrfile"
	"github.com/Flarenzy/subnetsplit/internal/console"
	"github.com/Flarenzy/subnetsplit/internal/db"
	"github.com/Flarenzy/subnetsplit/internal/domain"
)

// Run executes one split over cfg.InputFile and writes cfg.OutputFile.
// The output file is only touched once every input has been split.
func Run(ctx context.Context, cfg Config, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	var runs domain.RunRepository
	if cfg.DSN != "" {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		runs = db.NewRunRepository(pool)
	}
	return runSplit(ctx, cfg, logger, runs, stdin, stdout)
}

// runSplit records the run in runs only after the output file has been
// written, so a stored run always has a matching output file.
func runSplit(ctx context.Context, cfg Config, logger *slog.Logger, runs domain.RunRepository, stdin io.Reader, stdout io.Writer) error {
	printer := console.NewPrinter(stdout)
	printer.Banner()

	lines, err := cidrfile.Read(cfg.InputFile)
	if err != nil {
		return err
	}
	logger.DebugContext(ctx, "read input", "file", cfg.InputFile, "valid", len(lines.Valid), "rejected", lines.Rejected)

	svc := domain.NewLoggingSplitService(logger, domain.NewSplitService(nil, cfg.TargetBits))
	result, err := svc.Split(ctx, domain.SplitInput{Lines: lines.Valid, Discarded: lines.Rejected})
	if err != nil {
		return fmt.Errorf("split %s: %w", cfg.InputFile, err)
	}

	if err := cidrfile.Write(cfg.OutputFile, result.Subnets); err != nil {
		return err
	}

	if runs != nil {
		if err := runs.Save(ctx, result); err != nil {
			return fmt.Errorf("save run %s: %w", result.RunID, err)
		}
		logger.InfoContext(ctx, "run stored", "run_id", result.RunID.String())
	}

	printer.Subnets(result.Subnets)
	printer.Summary(cfg.OutputFile)

	if !cfg.NoWait {
		return printer.WaitForEnter(stdin)
	}
	return nil
}
