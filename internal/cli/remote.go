package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mpin_check/internal/client"
	"mpin_check/pkg/httpx"
	"mpin_check/pkg/logx"
	"mpin_check/pkg/rest"
)

const remoteLogFieldMaxLen = 4096

func remoteCmd() *cobra.Command {
	var (
		flags    pinFlags
		url      string
		selfTest bool
	)

	c := &cobra.Command{
		Use:   "remote",
		Short: "Classify an MPIN through a running mpin-check service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient := client.New(
				url,
				httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
				httpx.WithLogFieldMaxLen(remoteLogFieldMaxLen),
			)

			if selfTest {
				report, err := apiClient.SelfTest(cmd.Context())
				if err != nil {
					return fmt.Errorf("client.SelfTest: %w", err)
				}

				return printSelfTest(cmd.OutOrStdout(), report.Lines, report.Passed, report.Failed)
			}

			verdict, err := apiClient.Check(cmd.Context(), rest.PinCheckRequest{
				Pin:         flags.pin,
				UserDob:     flags.dob,
				SpouseDob:   flags.spouseDOB,
				Anniversary: flags.anniversary,
			})
			if err != nil {
				return userError(err)
			}

			return printVerdict(cmd.OutOrStdout(), verdict, flags.asJSON)
		},
	}

	flags.register(c)
	c.Flags().StringVar(&url, "url", "http://localhost:8080", "service base URL")
	c.Flags().BoolVar(&selfTest, "selftest", false, "run the service self-test instead of a check")

	return c
}
