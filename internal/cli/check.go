package cli

import (
	"github.com/spf13/cobra"

	service "mpin_check/internal/domain/service/pin"
	"mpin_check/internal/server"
)

func checkCmd() *cobra.Command {
	var flags pinFlags

	c := &cobra.Command{
		Use:   "check",
		Short: "Classify an MPIN locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := service.NewPinService(nil).Check(cmd.Context(), service.CheckInput{
				PIN:         flags.pin,
				UserDOB:     flags.dob,
				SpouseDOB:   flags.spouseDOB,
				Anniversary: flags.anniversary,
			})
			if err != nil {
				return userError(err)
			}

			return printVerdict(cmd.OutOrStdout(), server.NewRESTPinVerdict(result), flags.asJSON)
		},
	}

	flags.register(c)

	return c
}

func selfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the built-in classification table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := service.NewPinService(nil).SelfTest(cmd.Context())

			return printSelfTest(cmd.OutOrStdout(), report.Lines, report.Passed, report.Failed)
		},
	}
}
