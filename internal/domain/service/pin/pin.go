package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"mpin_check/internal/domain/entity"
	"mpin_check/internal/domain/service/pinRating"
	"mpin_check/internal/domain/value"
	"mpin_check/internal/metrics"
	"mpin_check/pkg/logx"
)

const (
	candidateCacheTTL     = 10 * time.Minute
	candidateCacheCleanup = 30 * time.Minute
)

// CheckInput четыре строки от пользователя, как пришли из формы/CLI/бота
type CheckInput struct {
	PIN         string
	UserDOB     string
	SpouseDOB   string
	Anniversary string
}

func (in CheckInput) trimmed() CheckInput {
	return CheckInput{
		PIN:         strings.TrimSpace(in.PIN),
		UserDOB:     strings.TrimSpace(in.UserDOB),
		SpouseDOB:   strings.TrimSpace(in.SpouseDOB),
		Anniversary: strings.TrimSpace(in.Anniversary),
	}
}

type CheckResult struct {
	Verdict          entity.Verdict
	FormattedReasons string
}

type PinService struct {
	classifier     pinRating.Classifier
	candidateCache *cache.Cache
	metrics        *metrics.Metrics
}

func NewPinService(m *metrics.Metrics) *PinService {
	s := &PinService{
		metrics: m,
	}

	return s.WithCandidateCache(candidateCacheTTL, candidateCacheCleanup)
}

// WithCandidateCache задаёт TTL кэша кандидатов. Ключ кэша - строка даты,
// сами PIN в кэш не попадают.
func (s *PinService) WithCandidateCache(ttl, cleanupInterval time.Duration) *PinService {
	s.candidateCache = cache.New(ttl, cleanupInterval)
	s.classifier = pinRating.NewClassifier().WithCandidateSource(s.candidates)

	return s
}

// Check валидирует PIN и классифицирует его. Ошибка возвращается только
// для невалидного PIN (failure.InvalidArgument), даты не валидируются.
func (s *PinService) Check(ctx context.Context, in CheckInput) (CheckResult, error) {
	in = in.trimmed()

	pin, err := value.ParsePIN(in.PIN)
	if err != nil {
		s.metrics.IncrementRejected(failure.Code(err).String())

		return CheckResult{}, fmt.Errorf("value.ParsePIN: %w", err)
	}

	start := time.Now()
	verdict := s.classifier.Classify(pin.String(), in.UserDOB, in.SpouseDOB, in.Anniversary)
	s.metrics.ObserveClassifyLatency(time.Since(start))

	reasons := lo.Map(verdict.Reasons.Sorted(), func(code entity.ReasonCode, _ int) string {
		return code.String()
	})

	s.metrics.ObserveVerdict(verdict.Strength.String(), reasons)

	logger(ctx).Debug(
		"pin classified",
		slog.Int(logx.FieldPINLength, len(pin)),
		logx.Stringer(logx.FieldStrength, verdict.Strength),
		slog.Any(logx.FieldReasons, reasons),
	)

	return CheckResult{
		Verdict:          verdict,
		FormattedReasons: pinRating.FormatReasons(verdict.Reasons),
	}, nil
}

func (s *PinService) candidates(date string) pinRating.Candidates {
	if date == "" {
		return pinRating.Candidates{}
	}

	if cached, ok := s.candidateCache.Get(date); ok {
		if candidates, ok := cached.(pinRating.Candidates); ok {
			return candidates
		}
	}

	candidates := pinRating.DeriveCandidates(date)

	// Мусорные строки не кэшируем, иначе кэш растёт на любом вводе.
	if len(candidates) > 0 {
		s.candidateCache.Set(date, candidates, cache.DefaultExpiration)
	}

	return candidates
}
