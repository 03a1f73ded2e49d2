package logx

// Truncate обрезает b до maxLen байт, maxLen <= 0 - без ограничения.
func Truncate(b []byte, maxLen int) []byte {
	if maxLen > 0 && len(b) > maxLen {
		return b[:maxLen]
	}

	return b
}
