package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"

	"github.com/Flarenzy/subnetsplit/internal/console"
	"github.com/Flarenzy/subnetsplit/internal/domain"
	"github.com/spf13/cobra"
)

type cli struct {
	cfg    Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

// Execute runs the command line and returns the process exit code. It is
// the only place that decides how a failure ends the process.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{
		cfg:    LoadConfig(),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	return c.exitCode(root.ExecuteContext(ctx))
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "subnetsplit",
		Short:         "Split IPv4 CIDR blocks into /24 subnets",
		Long:          "Reads CIDR blocks from the input file, splits each into /24 subnets,\nremoves duplicates and writes them in address order to the output file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: c.cfg.LogLevel}))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return Run(cmd.Context(), c.cfg, c.logger, c.stdin, c.stdout)
		},
	}

	root.PersistentFlags().StringVar(&c.cfg.DSN, "db", c.cfg.DSN, "postgres DSN; when set every run is stored")
	root.Flags().StringVarP(&c.cfg.InputFile, "input", "i", c.cfg.InputFile, "file with one CIDR per line")
	root.Flags().StringVarP(&c.cfg.OutputFile, "output", "o", c.cfg.OutputFile, "file the /24 subnets are written to")
	root.Flags().BoolVar(&c.cfg.NoWait, "no-wait", c.cfg.NoWait, "exit without waiting for Enter")

	root.AddCommand(c.serveCommand())
	return root
}

func (c *cli) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the splitter over HTTP",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			c.logger = slog.New(slog.NewJSONHandler(c.stderr, &slog.HandlerOptions{Level: c.cfg.LogLevel}))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			listener, err := net.Listen("tcp", net.JoinHostPort("", c.cfg.Port))
			if err != nil {
				return err
			}
			return Serve(cmd.Context(), c.cfg, c.logger, listener)
		},
	}
	cmd.Flags().StringVarP(&c.cfg.Port, "port", "p", c.cfg.Port, "port to listen on")
	return cmd
}

// exitCode reports a missing or empty input file to the user and exits 0,
// matching how an empty run has always been treated. Everything else is a
// failure.
func (c *cli) exitCode(err error) int {
	if err == nil {
		return 0
	}

	printer := console.NewPrinter(c.stdout)
	switch {
	case errors.Is(err, domain.ErrInputNotFound):
		printer.InputMissing(c.cfg.InputFile)
	case errors.Is(err, domain.ErrNoValidCIDR):
		printer.InputEmpty(c.cfg.InputFile)
	default:
		if c.logger == nil {
			c.logger = slog.New(slog.NewTextHandler(c.stderr, nil))
		}
		c.logger.Error("subnetsplit failed", "err", err)
		return 1
	}

	if !c.cfg.NoWait {
		_ = printer.WaitForEnter(c.stdin)
	}
	return 0
}
