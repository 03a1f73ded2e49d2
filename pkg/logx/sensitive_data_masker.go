package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// PIN и даты никогда не попадают в лог в открытом виде. JSON-декодер
// сравнивает ключи без учёта регистра, поэтому и маскер тоже; значение
// любого типа (строка, число, массив, объект) заменяется целиком.
//
//nolint:gochecknoglobals
var sensitiveDataPattern = regexp.MustCompile(
	`(?i)("(?:pin|userDob|spouseDob|anniversary)"\s*:\s*)` +
		`(?:"(?:[^"\\]|\\.)*"|\[[^\]]*\]|\{[^}]*\}|[^\s,}\]]+)`,
)

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	return sensitiveDataPattern.ReplaceAll(input, []byte(`${1}"[MASKED]"`))
}
