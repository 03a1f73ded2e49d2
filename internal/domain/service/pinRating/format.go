package pinRating

import (
	"strings"

	"mpin_check/internal/domain/entity"
)

const reasonBullet = "\n• "

// FormatReasons строка для показа пользователю: коды по алфавиту, первый
// без маркера, остальные с новой строки через "• ".
func FormatReasons(reasons entity.Reasons) string {
	sorted := reasons.Sorted()
	if len(sorted) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(sorted[0].String())

	for _, code := range sorted[1:] {
		sb.WriteString(reasonBullet)
		sb.WriteString(code.String())
	}

	return sb.String()
}
