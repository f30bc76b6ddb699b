package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"domainage/internal/config"
	"domainage/internal/metrics"
	"domainage/internal/resolver"
	"domainage/pkg/domain"
	"domainage/pkg/logger"
	"domainage/pkg/wayback/archiveorg"
	"domainage/pkg/whois/likexianwhois"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const metricsShutdownTimeout = 5 * time.Second

// resolveCommand resolves a single domain's age and oldest archive snapshot
// and prints a human-readable report to stdout.
func resolveCommand(cfg *config.Config) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "resolve <domain>",
		Short: "Looks up a domain's registration age and its oldest Wayback snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logger.Setup(cfg.Environment, true)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			ctx = logger.WithFields(ctx, zap.String("resolveId", uuid.NewString()))

			if cfg.Metrics.Addr != "" {
				stopMetrics := setupMetrics(ctx, cfg)
				defer stopMetrics()
			}

			whoisClient := likexianwhois.New(likexianwhois.Options{
				Timeout: cfg.Whois.Timeout,
				Server:  cfg.Whois.Server,
			})
			waybackClient := archiveorg.New(&http.Client{Timeout: cfg.Wayback.Timeout}, archiveorg.Options{
				BaseURL:   cfg.Wayback.BaseURL,
				UserAgent: cfg.Wayback.UserAgent,
			})

			r := resolver.New(whoisClient, waybackClient, resolver.NewOptions(cfg))

			res, err := r.Resolve(ctx, args[0])
			if err != nil {
				return err
			}

			render(cmd.OutOrStdout(), res, verbose)

			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and diagnostic output")

	return cmd
}

// setupMetrics starts the optional Prometheus listener and returns a stop
// function for it. Useful when the tool is driven in a loop by a supervisor.
func setupMetrics(ctx context.Context, cfg *config.Config) func() {
	errCh := make(chan error, 1)
	server := metrics.Serve(cfg.Metrics.Addr, cfg.Metrics.Path, errCh)
	logger.Info(ctx, "serving metrics", zap.String("addr", cfg.Metrics.Addr), zap.String("path", cfg.Metrics.Path))

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "could not stop metrics listener", zap.Error(err))
		}
		select {
		case err := <-errCh:
			logger.Warn(ctx, "metrics listener failed", zap.Error(err))
		default:
		}
	}
}

// render writes the human-readable report. Partial results are expected:
// each line degrades on its own when its lookup produced nothing.
func render(w io.Writer, res *domain.AgeResult, verbose bool) {
	fmt.Fprintf(w, "Domain: %s\n", res.Domain)

	switch {
	case res.AgeDays != nil:
		fmt.Fprintf(w, "Age: %d days (created %s)\n",
			*res.AgeDays, res.Whois.CreationDate.Format("2006-01-02"))
	case res.Whois.CreationDate != nil:
		fmt.Fprintf(w, "Age: unknown (creation date %s is in the future)\n",
			res.Whois.CreationDate.Format("2006-01-02"))
	case res.WhoisErr != "":
		fmt.Fprintf(w, "Age: unknown (whois lookup failed: %s)\n", res.WhoisErr)
	default:
		fmt.Fprintf(w, "Age: unknown (no creation date in whois response)\n")
	}

	if res.Whois.Registrar != "" {
		fmt.Fprintf(w, "Registrar: %s\n", res.Whois.Registrar)
	}

	switch {
	case res.OldestArchiveURL != "":
		fmt.Fprintf(w, "Oldest archive snapshot: %s", res.OldestArchiveURL)
		if !res.Wayback.Timestamp.IsZero() {
			fmt.Fprintf(w, " (captured %s)", res.Wayback.Timestamp.Format("2006-01-02"))
		}
		fmt.Fprintln(w)
	case res.WaybackErr != "":
		fmt.Fprintf(w, "Oldest archive snapshot: unknown (wayback lookup failed: %s)\n", res.WaybackErr)
	default:
		fmt.Fprintln(w, "Oldest archive snapshot: not archived")
	}

	if verbose && res.Whois.CreationDate == nil && res.Whois.Raw != "" {
		fmt.Fprintf(w, "\nRaw whois response:\n%s\n", res.Whois.Raw)
	}
}
