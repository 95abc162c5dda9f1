package booking

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	MaxGuestNameLength       = 100
	MaxSpecialRequestsLength = 1000
)

var (
	ErrInvalidDate            = errors.New("must be a date in YYYY-MM-DD format")
	ErrInvalidPhone           = errors.New("must be 11 digits")
	ErrEmptyGuestName         = errors.New("is required")
	ErrGuestNameTooLong       = errors.New("is too long (max 100 characters)")
	ErrInvalidGuestCount      = errors.New("must be a positive integer")
	ErrInvalidMealType        = errors.New("must be one of breakfast, lunch, dinner")
	ErrSpecialRequestsTooLong = errors.New("is too long (max 1000 characters)")
)

var phoneRegex = regexp.MustCompile(`^\d{11}$`)

// ParseDate parses a calendar date and normalizes it to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool   { return p.value == "" }

type GuestCount int

func NewGuestCount(n int) (GuestCount, error) {
	if n <= 0 {
		return 0, ErrInvalidGuestCount
	}
	return GuestCount(n), nil
}

func (g GuestCount) Int() int { return int(g) }

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func ParseMealType(s string) (MealType, error) {
	m := MealType(strings.TrimSpace(s))
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return m, nil
	default:
		return "", ErrInvalidMealType
	}
}

func (m MealType) String() string { return string(m) }

type SpecialRequests struct {
	value string
}

func NewSpecialRequests(s string) (SpecialRequests, error) {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{value: s}, nil
}

func (r SpecialRequests) String() string { return r.value }
func (r SpecialRequests) IsEmpty() bool  { return r.value == "" }

func (r SpecialRequests) Ptr() *string {
	if r.value == "" {
		return nil
	}
	v := r.value
	return &v
}

func ValidateGuestName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyGuestName
	}
	if utf8.RuneCountInString(s) > MaxGuestNameLength {
		return "", ErrGuestNameTooLong
	}
	return s, nil
}
