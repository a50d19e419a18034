package ramfat

import (
	"time"
)

// FAT date stamp: bits 0–4 day of month (1–31), bits 5–8 month (1–12),
// bits 9–15 years since 1980 (0–127).
// FAT time stamp: bits 0–4 seconds/2 (0–29), bits 5–10 minutes, bits 11–15 hours.

// ParseDate decodes a FAT date stamp. The result always has a time of 00:00:00 UTC.
//
// A day or month of 0 is invalid, in that case time.Time{} is returned so that
// time.Time.IsZero() can be used. A month bigger than 12 rolls over into the next year.
func ParseDate(input uint16) time.Time {
	dayOfMonth := input & 0x1F
	monthOfYear := input & 0x1E0 >> 5
	yearSince1980 := input & 0xFE00 >> 9

	if dayOfMonth == 0 || monthOfYear == 0 {
		return time.Time{}
	}

	return time.Date(1980+int(yearSince1980), time.Month(monthOfYear), int(dayOfMonth), 0, 0, 0, 0, time.UTC)
}

// ParseTime decodes a FAT time stamp. The result always has the date January 1, year 1,
// so midnight satisfies time.Time.IsZero().
//
// Out of range fields are added to the time but the result never passes 23:59:59.
func ParseTime(input uint16) time.Time {
	seconds := int(input&0x1F) * 2
	minutes := input & 0x7E0 >> 5
	hours := input & 0xF800 >> 11

	result := time.Date(1, 1, 1, int(hours), int(minutes), seconds, 0, time.UTC)
	if result.Day() > 1 {
		return time.Date(1, 1, 1, 23, 59, 59, 0, time.UTC)
	}
	return result
}

// FormatDate encodes t as a FAT date stamp. Dates before 1980 become 1980-01-01,
// years after 2107 are clamped.
func FormatDate(t time.Time) uint16 {
	year := t.Year() - 1980
	if year < 0 {
		return 1<<5 | 1
	}
	if year > 127 {
		year = 127
	}
	return uint16(year)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
}

// FormatTime encodes t as a FAT time stamp with its 2 second granularity.
func FormatTime(t time.Time) uint16 {
	return uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
}
