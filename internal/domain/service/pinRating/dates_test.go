package pinRating_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mpin_check/internal/domain/service/pinRating"
)

func TestDeriveCandidates(t *testing.T) {
	rq := require.New(t)

	candidates19980102 := pinRating.Candidates{
		"0201": {}, "9801": {}, "0198": {}, "0298": {}, "9802": {},
		"020198": {}, "980102": {}, "010298": {}, "019802": {}, "1998": {},
	}

	testCases := []struct {
		name     string
		date     string
		expected pinRating.Candidates
	}{
		{
			name:     "Day first with slashes",
			date:     "02/01/1998",
			expected: candidates19980102,
		},
		{
			name:     "ISO",
			date:     "1998-01-02",
			expected: candidates19980102,
		},
		{
			name:     "Without leading zeros",
			date:     "2/1/1998",
			expected: candidates19980102,
		},
		{
			name: "Same digits collapse",
			date: "11/11/2011",
			expected: pinRating.Candidates{
				"1111": {}, "111111": {}, "2011": {},
			},
		},
		{
			name: "Leap day",
			date: "29/02/2020",
			expected: pinRating.Candidates{
				"2902": {}, "2002": {}, "0220": {}, "2920": {}, "2029": {},
				"290220": {}, "200229": {}, "022920": {}, "022029": {}, "2020": {},
			},
		},
		{
			name: "Year padded to four digits",
			date: "0999-01-02",
			expected: pinRating.Candidates{
				"0201": {}, "9901": {}, "0199": {}, "0299": {}, "9902": {},
				"020199": {}, "990102": {}, "010299": {}, "019902": {}, "0999": {},
			},
		},
		{name: "Empty", date: "", expected: pinRating.Candidates{}},
		{name: "Not a date", date: "not-a-date", expected: pinRating.Candidates{}},
		{name: "Unknown separator", date: "02.01.1998", expected: pinRating.Candidates{}},
		{name: "Day first with hyphens", date: "02-01-1998", expected: pinRating.Candidates{}},
		{name: "ISO with slashes", date: "1998/01/02", expected: pinRating.Candidates{}},
		{name: "April 31", date: "31/04/2020", expected: pinRating.Candidates{}},
		{name: "February 29 in common year", date: "2019-02-29", expected: pinRating.Candidates{}},
		{name: "Month 13", date: "01/13/2020", expected: pinRating.Candidates{}},
		{name: "Two digit year", date: "02/01/98", expected: pinRating.Candidates{}},
		{name: "Trailing space", date: "02/01/1998 ", expected: pinRating.Candidates{}},
		{name: "Year zero", date: "0000-01-01", expected: pinRating.Candidates{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.expected, pinRating.DeriveCandidates(tc.date))
		})
	}
}

func TestDeriveCandidatesDayMonthOrder(t *testing.T) {
	rq := require.New(t)

	candidates := pinRating.DeriveCandidates("02/01/1998")

	rq.True(candidates.Has("0201"))
	rq.True(candidates.Has("9802"))
	rq.False(candidates.Has("0102"))
}
