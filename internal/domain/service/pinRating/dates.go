package pinRating

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Ведущий ноль у дня и месяца необязателен: 1998-1-2 и 2/1/1998 тоже валидны.
	layoutISO = "2006-1-2"
	layoutDMY = "2/1/2006"

	yearCandidateLen = 6
)

// Candidates множество строк, которые человек мог собрать из даты
type Candidates map[string]struct{}

func (c Candidates) Has(pin string) bool {
	_, ok := c[pin]
	return ok
}

func (c Candidates) add(values ...string) {
	for _, v := range values {
		c[v] = struct{}{}
	}
}

// DeriveCandidates разбирает дату (YYYY-MM-DD или DD/MM/YYYY) и возвращает
// 4- и 6-значные комбинации дня, месяца и года.
// Пустая строка, чужой формат или несуществующая дата дают пустое множество.
func DeriveCandidates(date string) Candidates {
	candidates := Candidates{}

	t, ok := parseDate(date)
	if !ok {
		return candidates
	}

	day := fmt.Sprintf("%02d", t.Day())
	month := fmt.Sprintf("%02d", int(t.Month()))
	yearFull := fmt.Sprintf("%04d", t.Year())
	yearShort := yearFull[len(yearFull)-2:]

	candidates.add(
		day+month,
		yearShort+month,
		month+yearShort,
		day+yearShort,
		yearShort+day,
	)

	candidates.add(
		day+month+yearShort,
		yearShort+month+day,
		month+day+yearShort,
		month+yearShort+day,
		yearCandidate(yearFull),
	)

	return candidates
}

func parseDate(date string) (time.Time, bool) {
	var layout string

	switch {
	case date == "":
		return time.Time{}, false
	case strings.Contains(date, "-"):
		layout = layoutISO
	case strings.Contains(date, "/"):
		layout = layoutDMY
	default:
		return time.Time{}, false
	}

	// time.Parse сам отбрасывает 31/04 и 29/02 в невисокосный год,
	// нулевого года в календаре нет.
	t, err := time.Parse(layout, date)
	if err != nil || t.Year() == 0 {
		return time.Time{}, false
	}

	return t, true
}

// yearCandidate последние шесть символов года; короче шести - год целиком.
func yearCandidate(year string) string {
	if len(year) < yearCandidateLen {
		return year
	}

	return year[len(year)-yearCandidateLen:]
}
