package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mpin_check/pkg/contextx"
	"mpin_check/pkg/logx"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "mpincheck",
		Short:        "mpincheck - MPIN strength checker",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if debug {
				level = slog.LevelDebug
			}

			log := logx.New(cmd.ErrOrStderr(), level)
			cmd.SetContext(contextx.WithLogger(cmd.Context(), log))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")

	cmd.AddCommand(checkCmd(), selfTestCmd(), remoteCmd())

	return cmd
}
