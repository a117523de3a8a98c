/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package humanize renders absolute date-time ranges as natural Italian
// phrases relative to a reference instant.
package humanize

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyDuration is returned when duration phrasing is requested for a
// range whose start and end coincide. There is no Italian clause for a
// zero-length booking, so the caller must treat this as a hard failure.
var ErrEmptyDuration = errors.New("humanize: range has no duration to express")

// Weekday and month names are static data so output never depends on the
// host locale. Indexed by time.Weekday / time.Month-1.
var weekdayNames = [7]string{
	"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
}

var monthNames = [12]string{
	"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
	"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
}

// Date renders the date part of target relative to reference.
//
// Branch order is a contract: once asDuration is set, any date that is not
// today or tomorrow is phrased as a day count ("tra 7 giorni"), and the
// weekday/month branches below are unreachable.
func Date(target, reference time.Time, asDuration bool) string {
	daysDiff := calendarDays(reference, target)

	switch {
	case daysDiff == 0:
		return "oggi"
	case daysDiff == 1:
		return "domani"
	case asDuration:
		if daysDiff > 0 {
			return fmt.Sprintf("tra %d giorni", daysDiff)
		}
		return fmt.Sprintf("%d giorni fa", -daysDiff)
	case daysDiff > 0 && daysDiff <= 7:
		return "il prossimo " + weekdayNames[target.Weekday()]
	case daysDiff > 7:
		return fmt.Sprintf("il %02d %s", target.Day(), monthNames[target.Month()-1])
	case daysDiff >= -7:
		return "lo scorso " + weekdayNames[target.Weekday()]
	default:
		return fmt.Sprintf("il %02d %s %d", target.Day(), monthNames[target.Month()-1], target.Year())
	}
}

// Time renders the time part of a range. With asDuration set and an end
// instant given it phrases the elapsed length ("dalle 14:00 per 2 ore"),
// otherwise the absolute end clock time ("dalle 14:00 alle 16:00"). A nil
// end yields just the start clock time.
func Time(start time.Time, end *time.Time, asDuration bool) (string, error) {
	startClock := start.Format("15:04")

	if asDuration && end != nil {
		d := end.Sub(start)
		hours := int(d / time.Hour)
		minutes := int(d % time.Hour / time.Minute)

		switch {
		case hours > 0 && minutes > 0:
			return fmt.Sprintf("dalle %s per %d ore e %d minuti", startClock, hours, minutes), nil
		case hours > 0:
			return fmt.Sprintf("dalle %s per %d ore", startClock, hours), nil
		case minutes == 30:
			return fmt.Sprintf("dalle %s per mezz'ora", startClock), nil
		case minutes > 0:
			return fmt.Sprintf("dalle %s per %d minuti", startClock, minutes), nil
		default:
			return "", ErrEmptyDuration
		}
	}

	if end != nil {
		return fmt.Sprintf("dalle %s alle %s", startClock, end.Format("15:04")), nil
	}
	return "alle " + startClock, nil
}

// Range renders a full date-time range as "<date part> <time part>".
func Range(start, end, reference time.Time, asDuration bool) (string, error) {
	datePart := Date(start, reference, asDuration)
	timePart, err := Time(start, &end, asDuration)
	if err != nil {
		return "", err
	}
	return datePart + " " + timePart, nil
}

// calendarDays counts whole civil days between the two instants' dates.
// Both are collapsed to UTC midnights first so the result is a clean day
// count regardless of clock times or DST shifts.
func calendarDays(reference, target time.Time) int {
	r := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(r) / (24 * time.Hour))
}
