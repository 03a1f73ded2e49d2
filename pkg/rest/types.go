// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

// PinCheckRequest PIN и три необязательные даты (YYYY-MM-DD или DD/MM/YYYY)
type PinCheckRequest struct {
	Pin         string `json:"pin" validate:"max=16"`
	UserDob     string `json:"userDob" validate:"max=32"`
	SpouseDob   string `json:"spouseDob" validate:"max=32"`
	Anniversary string `json:"anniversary" validate:"max=32"`
}

// PinVerdict Результат проверки
type PinVerdict struct {
	// Strength STRONG или WEAK
	Strength string `json:"strength"`

	// Reasons Сработавшие правила, по алфавиту
	Reasons []string `json:"reasons"`

	// FormattedReasons Reasons одной строкой для отображения
	FormattedReasons string `json:"formattedReasons"`
}

// SelfTestReport Результат встроенного самотеста
type SelfTestReport struct {
	Passed int      `json:"passed"`
	Failed int      `json:"failed"`
	Lines  []string `json:"lines"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI)
	Message string `json:"message"`

	// SupportID trace id запроса
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
