package pinRating_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mpin_check/internal/domain/service/pinRating"
)

func TestIsRepeatedPattern(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		pin      string
		expected bool
	}{
		{name: "Solid 4", pin: "1111", expected: true},
		{name: "Solid 6", pin: "000000", expected: true},
		{name: "Pair 4", pin: "6969", expected: true},
		{name: "Pair 6", pin: "121212", expected: true},
		{name: "Pair with zero", pin: "101010", expected: true},
		{name: "Triple", pin: "123123", expected: true},
		{name: "Ladder", pin: "123456", expected: false},
		{name: "Random 4", pin: "3749", expected: false},
		{name: "Random 6", pin: "827364", expected: false},
		{name: "Palindrome", pin: "1221", expected: false},
		{name: "Doubled digits", pin: "112233", expected: false},
		{name: "Almost repeated", pin: "121213", expected: false},
		{name: "Odd length", pin: "123", expected: false},
		{name: "Single digit", pin: "7", expected: false},
		{name: "Empty", pin: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.expected, pinRating.IsRepeatedPattern(tc.pin))
		})
	}
}
