// Package format converts the weather provider's epoch timestamps to
// display strings. All output is UTC with Go's fixed English names, so a
// given input always renders the same regardless of the host locale.
package format

import "time"

// Unknown is rendered for any timestamp the provider omitted.
const Unknown = "UNKNOWN"

const timeOnlyLayout = "15:04"

// DateTime renders an epoch as an RFC 1123 date-time,
// e.g. "Thu, 01 Jan 1970 00:00:00 UTC".
func DateTime(sec *int64) string {
	if sec == nil {
		return Unknown
	}
	return time.Unix(*sec, 0).UTC().Format(time.RFC1123)
}

// TimeOnly renders an epoch as a 24-hour clock time, e.g. "06:15".
func TimeOnly(sec *int64) string {
	if sec == nil {
		return Unknown
	}
	return time.Unix(*sec, 0).UTC().Format(timeOnlyLayout)
}

// DayName renders an epoch as a full weekday name, e.g. "Thursday".
func DayName(sec *int64) string {
	if sec == nil {
		return Unknown
	}
	return time.Unix(*sec, 0).UTC().Weekday().String()
}
