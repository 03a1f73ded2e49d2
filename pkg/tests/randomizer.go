package tests

import (
	"math/rand"
	"strings"
	"time"
)

type Randomizer struct {
	Bool func() bool

	// Digits возвращает строку из n случайных цифр, ведущие нули допустимы.
	Digits func(n int) string
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Bool: func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Digits: func(n int) string {
			var sb strings.Builder

			for range n {
				sb.WriteByte(byte('0' + random.Intn(10))) //nolint:mnd // skip
			}

			return sb.String()
		},
	}
}
