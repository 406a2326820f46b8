package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Journal lines carry timestamps like "1/7/2025 9:04:13.512 PM": 1-2 digit
// month/day/hour, 4-digit year, 2-digit minute/second, 3-digit millisecond,
// 12-hour clock with meridiem.
var reTimestamp = regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2}):(\d{2})\.(\d{3})\s*(AM|PM)`)

// ParseTimestamp scans line for the journal timestamp pattern and converts
// it to a 24-hour calendar time with millisecond precision. It never
// fails hard: no match returns (zero, false), and out-of-range components
// (month 13, minute 61, ...) are left to time.Date, which normalizes them
// instead of erroring.
func ParseTimestamp(line string) (time.Time, bool) {
	m := reTimestamp.FindStringSubmatch(line)
	if m == nil {
		return time.Time{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])
	milli, _ := strconv.Atoi(m[7])

	pm := strings.EqualFold(m[8], "PM")
	if hour == 12 {
		if !pm {
			hour = 0 // 12 AM is midnight
		}
	} else if pm {
		hour += 12
	}

	t := time.Date(year, time.Month(month), day, hour, minute, second, milli*int(time.Millisecond), time.Local)
	return t, true
}
