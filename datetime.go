package toml

import (
	"fmt"
	"strconv"
	"time"
)

// DateTime is a decoded TOML date-time value. TOML defines four
// flavors distinguished by which fields are present: offset
// date-time, local date-time, local date, and local time. The raw
// lexeme is kept on the owning DateTimeItem so rendering never has to
// reformat what the author wrote.
type DateTime struct {
	HasDate bool
	HasTime bool

	Year, Month, Day          int
	Hour, Minute, Second, Nsec int

	OffsetKnown   bool // an offset (including "Z") was present in source
	OffsetSeconds int  // seconds east of UTC; meaningful only if OffsetKnown
}

// Kind names which of the four TOML date-time productions this value
// represents.
type DateTimeKind int

const (
	DateTimeOffset DateTimeKind = iota
	DateTimeLocal
	DateOnly
	TimeOnly
)

func (dt DateTime) Kind() DateTimeKind {
	switch {
	case dt.HasDate && dt.HasTime && dt.OffsetKnown:
		return DateTimeOffset
	case dt.HasDate && dt.HasTime:
		return DateTimeLocal
	case dt.HasDate:
		return DateOnly
	default:
		return TimeOnly
	}
}

// ToTime converts an offset or local date-time into a time.Time. It
// returns false for date-only or time-only values, which have no
// well-defined instant.
func (dt DateTime) ToTime() (time.Time, bool) {
	if !dt.HasDate || !dt.HasTime {
		return time.Time{}, false
	}
	loc := time.UTC
	if dt.OffsetKnown {
		if dt.OffsetSeconds == 0 {
			loc = time.UTC
		} else {
			loc = time.FixedZone(fmt.Sprintf("%+03d:%02d", dt.OffsetSeconds/3600, abs(dt.OffsetSeconds/60)%60), dt.OffsetSeconds)
		}
	} else {
		loc = time.Local
	}
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, dt.Second, dt.Nsec, loc), true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// decodeDateTime parses a validated date-time lexeme into a DateTime,
// dispatching on which of the four TOML productions it matches.
func decodeDateTime(raw string) (DateTime, error) {
	if m := dtReOffsetDT.FindStringSubmatch(raw); m != nil {
		return buildDateTimeParts(m, true), nil
	}
	if m := dtReLocalDT.FindStringSubmatch(raw); m != nil {
		return buildDateTimeParts(m, false), nil
	}
	if m := dtReLocalDate.FindStringSubmatch(raw); m != nil {
		return buildDateOnly(m), nil
	}
	if m := dtReLocalTime.FindStringSubmatch(raw); m != nil {
		return buildTimeOnly(m), nil
	}
	return DateTime{}, fmt.Errorf("invalid date-time: %s", raw)
}

func atoiSafe(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func parseFracNanos(s string) int {
	if s == "" {
		return 0
	}
	digits := s[1:]
	for len(digits) < 9 {
		digits += "0"
	}
	n, _ := strconv.Atoi(digits[:9])
	return n
}

// buildDateTimeParts reads groups 1..7 (year,month,day,hour,min,sec,frac)
// plus, when hasOffset, group 8 (the offset text) from a regexp match.
func buildDateTimeParts(m []string, hasOffset bool) DateTime {
	dt := DateTime{HasDate: true, HasTime: true}
	dt.Year, dt.Month, dt.Day = atoiSafe(m[1]), atoiSafe(m[2]), atoiSafe(m[3])
	dt.Hour, dt.Minute = atoiSafe(m[4]), atoiSafe(m[5])
	if m[6] != "" {
		dt.Second = atoiSafe(m[6])
	}
	dt.Nsec = parseFracNanos(m[7])
	if hasOffset {
		dt.OffsetKnown = true
		off := m[8]
		if off == "Z" || off == "z" {
			dt.OffsetSeconds = 0
		} else {
			sign := 1
			if off[0] == '-' {
				sign = -1
			}
			h, mi := atoiSafe(off[1:3]), atoiSafe(off[4:6])
			dt.OffsetSeconds = sign * (h*3600 + mi*60)
		}
	}
	return dt
}

func buildDateOnly(m []string) DateTime {
	dt := DateTime{HasDate: true}
	dt.Year, dt.Month, dt.Day = atoiSafe(m[1]), atoiSafe(m[2]), atoiSafe(m[3])
	return dt
}

func buildTimeOnly(m []string) DateTime {
	dt := DateTime{HasTime: true}
	dt.Hour, dt.Minute = atoiSafe(m[1]), atoiSafe(m[2])
	if m[3] != "" {
		dt.Second = atoiSafe(m[3])
	}
	dt.Nsec = parseFracNanos(m[4])
	return dt
}
