package cli

import (
	"errors"
	"fmt"
	"io"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"mpin_check/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var ErrSelfTestFailed = errors.New("self-test failed")

// pinFlags даты и PIN из флагов, общие для check и remote.
type pinFlags struct {
	pin         string
	dob         string
	spouseDOB   string
	anniversary string
	asJSON      bool
}

func (f *pinFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&f.pin, "pin", "", "MPIN, 4 or 6 digits")
	flags.StringVar(&f.dob, "dob", "", "own birth date, YYYY-MM-DD or DD/MM/YYYY")
	flags.StringVar(&f.spouseDOB, "spouse-dob", "", "spouse birth date")
	flags.StringVar(&f.anniversary, "anniversary", "", "wedding anniversary")
	flags.BoolVar(&f.asJSON, "json", false, "print the verdict as JSON")
}

func printVerdict(w io.Writer, verdict rest.PinVerdict, asJSON bool) error {
	if asJSON {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		if err := encoder.Encode(verdict); err != nil {
			return fmt.Errorf("json.Encode: %w", err)
		}

		return nil
	}

	fmt.Fprintf(w, "MPIN strength: %s\n", verdict.Strength)

	if verdict.FormattedReasons != "" {
		fmt.Fprintf(w, "Reasons: %s\n", verdict.FormattedReasons)
	}

	return nil
}

func printSelfTest(w io.Writer, lines []string, passed, failed int) error {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\npassed: %d, failed: %d\n", passed, failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSelfTestFailed, failed, passed+failed)
	}

	return nil
}

// userError заменяет ошибку валидации её текстом для пользователя.
func userError(err error) error {
	if failure.IsInvalidArgumentError(err) {
		return errors.New(failure.Description(err)) //nolint:err113
	}

	return err
}
