package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeSlot one of the fixed daily grooming windows
type TimeSlot string

const (
	SlotMorning   TimeSlot = "9am-12pm"
	SlotMidday    TimeSlot = "12pm-3pm"
	SlotAfternoon TimeSlot = "3pm-6pm"
)

type slotWindow struct {
	startHour int
	endHour   int
}

var slotWindows = map[TimeSlot]slotWindow{
	SlotMorning:   {startHour: 9, endHour: 12},
	SlotMidday:    {startHour: 12, endHour: 15},
	SlotAfternoon: {startHour: 15, endHour: 18},
}

// AllSlots returns the daily partition in chronological order
func AllSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotMidday, SlotAfternoon}
}

// ParseTimeSlot validates a slot label, tolerating case and whitespace drift
func ParseTimeSlot(raw string) (TimeSlot, error) {
	slot := TimeSlot(strings.ToLower(strings.ReplaceAll(raw, " ", "")))
	if _, ok := slotWindows[slot]; !ok {
		return "", fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, raw)
	}
	return slot, nil
}

// IsValid reports whether the slot is part of the daily partition
func (s TimeSlot) IsValid() bool {
	_, ok := slotWindows[s]
	return ok
}

// Start returns the moment the slot opens on the given day
func (s TimeSlot) Start(day time.Time) time.Time {
	return atHour(day, slotWindows[s].startHour)
}

// End returns the moment the slot closes on the given day
func (s TimeSlot) End(day time.Time) time.Time {
	return atHour(day, slotWindows[s].endHour)
}

func atHour(day time.Time, hour int) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, day.Location())
}

// DayOf truncates t to midnight in its own location
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateKey returns yyyymmdd for ordering calendar dates regardless of location
func DateKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// ParseDate parses a YYYY-MM-DD date in the given location
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateFormat, strings.TrimSpace(raw), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, raw)
	}
	return day, nil
}
