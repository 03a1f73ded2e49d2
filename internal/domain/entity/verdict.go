package entity

import (
	"slices"
)

// Strength итоговая оценка PIN
type Strength string

const (
	StrengthStrong Strength = "STRONG"
	StrengthWeak   Strength = "WEAK"
)

func (s Strength) String() string {
	return string(s)
}

// ReasonCode правило, по которому PIN признан слабым
type ReasonCode string

const (
	ReasonCommonlyUsed           ReasonCode = "COMMONLY_USED"
	ReasonRepeatedPattern        ReasonCode = "REPEATED_PATTERN"
	ReasonDemographicDOBSelf     ReasonCode = "DEMOGRAPHIC_DOB_SELF"
	ReasonDemographicDOBSpouse   ReasonCode = "DEMOGRAPHIC_DOB_SPOUSE"
	ReasonDemographicAnniversary ReasonCode = "DEMOGRAPHIC_ANNIVERSARY"
)

func (r ReasonCode) String() string {
	return string(r)
}

// Reasons множество сработавших правил, без повторов
type Reasons map[ReasonCode]struct{}

func (r Reasons) Add(code ReasonCode) {
	r[code] = struct{}{}
}

func (r Reasons) Has(code ReasonCode) bool {
	_, ok := r[code]
	return ok
}

// Sorted возвращает коды в лексикографическом порядке (порядок отображения).
func (r Reasons) Sorted() []ReasonCode {
	codes := make([]ReasonCode, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}

	slices.Sort(codes)

	return codes
}

// Verdict результат классификации PIN.
// Strength == StrengthWeak тогда и только тогда, когда Reasons не пуст.
type Verdict struct {
	Strength Strength
	Reasons  Reasons
}

func NewVerdict(reasons Reasons) Verdict {
	if reasons == nil {
		reasons = Reasons{}
	}

	strength := StrengthStrong
	if len(reasons) > 0 {
		strength = StrengthWeak
	}

	return Verdict{
		Strength: strength,
		Reasons:  reasons,
	}
}
