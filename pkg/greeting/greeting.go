// Package greeting renders the dated header line: Gregorian date, weekday,
// lunar month/day, the 初一/十五 marker, and the solar term when today lands
// on one.
package greeting

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// FormatError reports a date the formatter refuses to render.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("greeting: %s: %s", e.Input, e.Reason)
}

// weekNames maps 0=Sunday..6=Saturday to the single-character weekday names.
var weekNames = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// Format renders the greeting line for a YYYY-MM-DD date.
func Format(today string) (string, error) {
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return "", &FormatError{Input: today, Reason: "not a YYYY-MM-DD date"}
	}

	solar := calendar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day())
	lunar := solar.GetLunar()

	week := solar.GetWeek()
	if week < 0 || week >= len(weekNames) {
		return "", &FormatError{Input: today, Reason: fmt.Sprintf("weekday index %d out of range", week)}
	}

	special := ""
	switch lunar.GetDay() {
	case 1:
		special = "（初一）"
	case 15:
		special = "（十五）"
	}

	line := fmt.Sprintf("今天是%d年%d月%d日，星期%s，农历%s月%s%s",
		t.Year(), int(t.Month()), t.Day(),
		weekNames[week],
		lunar.GetMonthInChinese(), lunar.GetDayInChinese(), special)

	if jieqi := lunar.GetJieQi(); jieqi != "" {
		line += "，节气" + jieqi
	}
	return line, nil
}
