package booking

import (
	"errors"
	"time"
)

var ErrEmptyStay = errors.New("check-out must be after check-in")

// StayWindow is the half-open lodging interval [checkIn, checkOut).
type StayWindow struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayWindow(checkIn, checkOut time.Time) (StayWindow, error) {
	in, out := Day(checkIn), Day(checkOut)
	if !in.Before(out) {
		return StayWindow{}, ErrEmptyStay
	}
	return StayWindow{checkIn: in, checkOut: out}, nil
}

func (w StayWindow) CheckIn() time.Time  { return w.checkIn }
func (w StayWindow) CheckOut() time.Time { return w.checkOut }

// Nights counts calendar days, rounding a partial day up.
func (w StayWindow) Nights() int {
	d := w.checkOut.Sub(w.checkIn)
	nights := int(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

func (w StayWindow) Overlaps(other StayWindow) bool {
	return w.checkIn.Before(other.checkOut) && other.checkIn.Before(w.checkOut)
}

// DiningWindow is the discrete (date, time-slot start) pair a restaurant booking occupies.
type DiningWindow struct {
	date      time.Time
	slotStart string
}

func NewDiningWindow(date time.Time, slotStart string) DiningWindow {
	return DiningWindow{date: Day(date), slotStart: normalizeClock(slotStart)}
}

func (w DiningWindow) Date() time.Time   { return w.date }
func (w DiningWindow) SlotStart() string { return w.slotStart }

func (w DiningWindow) Overlaps(other DiningWindow) bool {
	return w.date.Equal(other.date) && w.slotStart == other.slotStart
}

// normalizeClock trims "12:00:00" style values to "12:00".
func normalizeClock(s string) string {
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format(TimeLayout)
	}
	return s
}
