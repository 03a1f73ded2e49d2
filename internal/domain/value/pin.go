package value

import (
	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"

	"mpin_check/pkg/errcodes"
)

const (
	MessageEmptyPIN         = "please enter an MPIN."
	MessageInvalidPINFormat = "MPIN must be a 4 or 6 digit number."
)

// number в validator - только ASCII-цифры (^[0-9]+$).
const pinRule = "number,len=4|len=6"

var validate = validator.New() //nolint:gochecknoglobals

// PIN провалидированный PIN: только ASCII-цифры, длина 4 или 6.
type PIN string

func (p PIN) String() string {
	return string(p)
}

func ParsePIN(s string) (PIN, error) {
	if s == "" {
		return "", failure.NewInvalidArgumentError(
			"pin is empty",
			failure.WithCode(errcodes.EmptyPIN),
			failure.WithDescription(MessageEmptyPIN),
		)
	}

	if err := validate.Var(s, pinRule); err != nil {
		return "", failure.NewInvalidArgumentError(
			"pin must be 4 or 6 digits: "+err.Error(),
			failure.WithCode(errcodes.InvalidPINFormat),
			failure.WithDescription(MessageInvalidPINFormat),
		)
	}

	return PIN(s), nil
}
