package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"mpin_check/internal/domain/entity"
	"mpin_check/internal/domain/value"
	"mpin_check/pkg/logx"
)

type SelfTestReport struct {
	Passed int
	Failed int
	Lines  []string
}

func (r SelfTestReport) OK() bool {
	return r.Failed == 0
}

func (r *SelfTestReport) assertEqual(expected, actual, name string) {
	if expected == actual {
		r.Passed++
		r.Lines = append(r.Lines, "PASS: "+name)

		return
	}

	r.Failed++
	r.Lines = append(r.Lines, fmt.Sprintf("FAIL: %s - Expected: %s, Got: %s", name, expected, actual))
}

type selfTestCase struct {
	pin         string
	userDOB     string
	spouseDOB   string
	anniversary string
	strength    entity.Strength
	reasons     []entity.ReasonCode
	rejected    bool
}

//nolint:gochecknoglobals
var (
	weak   = entity.StrengthWeak
	strong = entity.StrengthStrong

	common   = entity.ReasonCommonlyUsed
	repeated = entity.ReasonRepeatedPattern
	self     = entity.ReasonDemographicDOBSelf
	spouse   = entity.ReasonDemographicDOBSpouse
	anniv    = entity.ReasonDemographicAnniversary
)

//nolint:gochecknoglobals
var selfTestCases = []selfTestCase{
	{pin: "1234", strength: weak, reasons: []entity.ReasonCode{common}},
	{pin: "0000", strength: weak, reasons: []entity.ReasonCode{common, repeated}},
	{pin: "9999", strength: weak, reasons: []entity.ReasonCode{common, repeated}},
	{pin: "6789", strength: weak, reasons: []entity.ReasonCode{common}},
	{pin: "3749", strength: strong},
	{pin: "0201", userDOB: "02/01/1998", strength: weak, reasons: []entity.ReasonCode{self}},
	{pin: "9802", userDOB: "02/01/1998", strength: weak, reasons: []entity.ReasonCode{self}},
	{pin: "0102", userDOB: "02/01/1998", strength: strong},
	{pin: "0201", spouseDOB: "02/01/1999", strength: weak, reasons: []entity.ReasonCode{spouse}},
	{pin: "3110", anniversary: "31/10/2020", strength: weak, reasons: []entity.ReasonCode{anniv}},
	{
		pin:         "1111",
		userDOB:     "11/11/2011",
		spouseDOB:   "11/11/2012",
		anniversary: "11/11/2013",
		strength:    weak,
		reasons:     []entity.ReasonCode{common, repeated, self, spouse, anniv},
	},
	{pin: "123456", strength: weak, reasons: []entity.ReasonCode{common}},
	{pin: "111111", strength: weak, reasons: []entity.ReasonCode{common, repeated}},
	{pin: "101010", strength: weak, reasons: []entity.ReasonCode{common, repeated}},
	{pin: "654321", strength: weak, reasons: []entity.ReasonCode{common}},
	{
		pin:         "827364",
		userDOB:     "01/01/2000",
		spouseDOB:   "02/02/2002",
		anniversary: "03/03/2003",
		strength:    strong,
	},
	// 3 цифры до классификатора не доходят
	{pin: "123", rejected: true},
}

// SelfTest прогоняет встроенную таблицу проверок через классификатор и
// возвращает построчный отчёт PASS/FAIL. Метрики не трогает.
func (s *PinService) SelfTest(ctx context.Context) SelfTestReport {
	var report SelfTestReport

	for i, tc := range selfTestCases {
		name := fmt.Sprintf("Test case %d - MPIN: %s", i+1, tc.pin)

		if tc.rejected {
			_, err := value.ParsePIN(tc.pin)
			report.assertEqual("rejected", lo.Ternary(err != nil, "rejected", "accepted"), name+" - Validation")

			continue
		}

		verdict := s.classifier.Classify(tc.pin, tc.userDOB, tc.spouseDOB, tc.anniversary)

		expected := entity.Reasons{}
		for _, code := range tc.reasons {
			expected.Add(code)
		}

		report.assertEqual(tc.strength.String(), verdict.Strength.String(), name+" - Strength")
		report.assertEqual(fmt.Sprint(expected.Sorted()), fmt.Sprint(verdict.Reasons.Sorted()), name+" - Reasons")
	}

	logger(ctx).Info(
		"self-test finished",
		slog.Int(logx.FieldSelfTestPassed, report.Passed),
		slog.Int(logx.FieldSelfTestFailed, report.Failed),
	)

	return report
}
