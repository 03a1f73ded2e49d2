package pinRating

import (
	"mpin_check/internal/domain/entity"
)

// CandidateSource источник кандидатов для даты. По умолчанию DeriveCandidates,
// сервис подставляет свою версию с кэшем.
type CandidateSource func(date string) Candidates

// Classifier оценивает PIN. Состояния не хранит, безопасен для
// конкурентного использования.
type Classifier struct {
	candidates CandidateSource
}

func NewClassifier() Classifier {
	return Classifier{
		candidates: DeriveCandidates,
	}
}

func (c Classifier) WithCandidateSource(source CandidateSource) Classifier {
	if source != nil {
		c.candidates = source
	}

	return c
}

// Classify прогоняет PIN через все пять проверок, без раннего выхода.
// Формат PIN не проверяется: это делает вызывающая сторона.
func (c Classifier) Classify(pin, userDOB, spouseDOB, anniversary string) entity.Verdict {
	reasons := entity.Reasons{}

	if IsCommonlyUsed(pin) {
		reasons.Add(entity.ReasonCommonlyUsed)
	}

	if IsRepeatedPattern(pin) {
		reasons.Add(entity.ReasonRepeatedPattern)
	}

	demographic := []struct {
		date   string
		reason entity.ReasonCode
	}{
		{userDOB, entity.ReasonDemographicDOBSelf},
		{spouseDOB, entity.ReasonDemographicDOBSpouse},
		{anniversary, entity.ReasonDemographicAnniversary},
	}

	for _, d := range demographic {
		if c.candidates(d.date).Has(pin) {
			reasons.Add(d.reason)
		}
	}

	return entity.NewVerdict(reasons)
}

// Classify классифицирует PIN без кэша кандидатов.
func Classify(pin, userDOB, spouseDOB, anniversary string) entity.Verdict {
	return NewClassifier().Classify(pin, userDOB, spouseDOB, anniversary)
}
