package pinRating

import "strings"

// IsRepeatedPattern проверяет, собран ли PIN из повторов одного блока:
// 1111 (блок 1), 121212 (блок 12), 123123 (блок 123).
// Блоки перебираются от самого короткого.
func IsRepeatedPattern(pin string) bool {
	n := len(pin)

	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}

		if strings.Repeat(pin[:size], n/size) == pin {
			return true
		}
	}

	return false
}
