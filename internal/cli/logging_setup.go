package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/depfetch/depfetch/internal/config"
	"github.com/depfetch/depfetch/internal/logging"
)

// setupLogging loads configuration and configures logging based on config
// file, environment, and CLI flags, then attaches the logger and a trace ID
// to the command context.
func setupLogging(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg = loaded

	loggingCfg := cfg.Logging
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	// Piped stderr gets machine-readable logs unless the config says otherwise.
	if loggingCfg.Format == "" && !isTerminal(os.Stderr) {
		loggingCfg.Format = "json"
	}

	base := logging.New(loggingCfg.ToLoggingConfig())
	logger = logging.ComponentLogger(base, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)

	base = base.With().Str("trace_id", traceID).Logger()
	ctx = base.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")
	return nil
}
