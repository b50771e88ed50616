package serializer

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// DurationConverter writes time.Duration as a time-span string,
// [-][d.]hh:mm:ss[.fffffff], with seven fractional digits when the value is
// a whole number of 100ns ticks and nine otherwise. Parse also accepts Go
// duration strings such as "1h30m".
func DurationConverter() StringConverter[time.Duration] {
	return StringConverter[time.Duration]{
		Format: FormatDuration,
		Parse:  ParseDuration,
	}
}

// FormatDuration renders d in the time-span layout.
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	u := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		u = -u
	}
	days := u / uint64(day)
	u %= uint64(day)
	h := u / uint64(time.Hour)
	u %= uint64(time.Hour)
	m := u / uint64(time.Minute)
	u %= uint64(time.Minute)
	s := u / uint64(time.Second)
	frac := u % uint64(time.Second)

	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", h, m, s)
	switch {
	case frac == 0:
	case frac%100 == 0:
		fmt.Fprintf(&b, ".%07d", frac/100)
	default:
		fmt.Fprintf(&b, ".%09d", frac)
	}
	return b.String()
}

// ParseDuration reads the time-span layout written by FormatDuration, or a
// Go duration string when s contains no ':'.
func ParseDuration(s string) (time.Duration, error) {
	if !strings.Contains(s, ":") {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return d, nil
	}

	in := s
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var days uint64
	if dot := strings.IndexByte(s, '.'); dot >= 0 && dot < strings.IndexByte(s, ':') {
		n, err := strconv.ParseUint(s[:dot], 10, 64)
		if err != nil || n > uint64((1<<63-1)/int64(day)) {
			return 0, fmt.Errorf("invalid duration %q", in)
		}
		days = n
		s = s[dot+1:]
	}

	clock, frac, hasFrac := strings.Cut(s, ".")
	parts := strings.Split(clock, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q", in)
	}
	limits := [3]uint64{23, 59, 59}
	var hms [3]uint64
	for i, p := range parts {
		if p == "" || len(p) > 2 {
			return 0, fmt.Errorf("invalid duration %q", in)
		}
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil || n > limits[i] {
			return 0, fmt.Errorf("invalid duration %q", in)
		}
		hms[i] = n
	}

	var nanos uint64
	if hasFrac {
		if len(parts) != 3 || frac == "" || len(frac) > 9 {
			return 0, fmt.Errorf("invalid duration %q", in)
		}
		n, err := strconv.ParseUint(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", in)
		}
		nanos = n
	}

	total := days*uint64(day) +
		hms[0]*uint64(time.Hour) +
		hms[1]*uint64(time.Minute) +
		hms[2]*uint64(time.Second) +
		nanos
	if neg {
		if total > 1<<63 {
			return 0, fmt.Errorf("invalid duration %q: out of range", in)
		}
		return time.Duration(-total), nil
	}
	if total > 1<<63-1 {
		return 0, fmt.Errorf("invalid duration %q: out of range", in)
	}
	return time.Duration(total), nil
}
