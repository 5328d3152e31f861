package domain

import "time"

const OnlyDateTimeLayout = "2006-01-02 15:04:05"

// DisplayTime formats a ledger timestamp for people in the given IANA time zone.
// An empty or unknown zone falls back to the local zone.
func DisplayTime(t time.Time, zone string) string {
	location := time.Local
	if zone != "" {
		if loaded, err := time.LoadLocation(zone); err == nil {
			location = loaded
		}
	}
	return t.In(location).Format(OnlyDateTimeLayout)
}

// MonotonicMillis returns now in milliseconds, bumped past last when the clock
// has not advanced or went backwards.
func MonotonicMillis(now time.Time, last int64) int64 {
	ms := now.UnixMilli()
	if ms <= last {
		return last + 1
	}
	return ms
}
