package server

import (
	"github.com/samber/lo"

	"mpin_check/internal/domain/entity"
	service "mpin_check/internal/domain/service/pin"
	"mpin_check/pkg/rest"
)

func newCheckInput(request rest.PinCheckRequest) service.CheckInput {
	return service.CheckInput{
		PIN:         request.Pin,
		UserDOB:     request.UserDob,
		SpouseDOB:   request.SpouseDob,
		Anniversary: request.Anniversary,
	}
}

// NewRESTPinVerdict вердикт в формате API. Причины отсортированы, пустой
// список сериализуется как [], а не null. Используется и CLI.
func NewRESTPinVerdict(result service.CheckResult) rest.PinVerdict {
	return rest.PinVerdict{
		Strength: result.Verdict.Strength.String(),
		Reasons: lo.Map(result.Verdict.Reasons.Sorted(), func(code entity.ReasonCode, _ int) string {
			return code.String()
		}),
		FormattedReasons: result.FormattedReasons,
	}
}

func newRESTSelfTestReport(report service.SelfTestReport) rest.SelfTestReport {
	return rest.SelfTestReport{
		Passed: report.Passed,
		Failed: report.Failed,
		Lines:  lo.Ternary(report.Lines == nil, []string{}, report.Lines),
	}
}
