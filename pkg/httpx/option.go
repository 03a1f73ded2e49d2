package httpx

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen обрезает дамп запроса/ответа до n байт, 0 - без ограничений.
func WithLogFieldMaxLen(n int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = n
	}
}

func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = masker
	}
}
