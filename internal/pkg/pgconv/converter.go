package pgconv

import (
	"errors"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrNullNumeric     = errors.New("numeric value is NULL")
	ErrNumericTooLarge = errors.New("numeric value out of int64 cents range")
)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func StringPtrFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

// CentsToNumeric encodes minor units as NUMERIC with scale 2.
func CentsToNumeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

// NumericToCents decodes a NUMERIC into minor units, truncating digits past
// the second decimal place.
func NumericToCents(n pgtype.Numeric) (int64, error) {
	if !n.Valid {
		return 0, ErrNullNumeric
	}
	v := new(big.Int).Set(n.Int)
	shift := int64(n.Exp) + 2
	ten := big.NewInt(10)
	switch {
	case shift > 0:
		v.Mul(v, new(big.Int).Exp(ten, big.NewInt(shift), nil))
	case shift < 0:
		v.Quo(v, new(big.Int).Exp(ten, big.NewInt(-shift), nil))
	}
	if !v.IsInt64() {
		return 0, ErrNumericTooLarge
	}
	return v.Int64(), nil
}

// ClockFromPgtype renders a TIME column as "15:04".
func ClockFromPgtype(t pgtype.Time) string {
	if !t.Valid {
		return ""
	}
	d := time.Duration(t.Microseconds) * time.Microsecond
	return time.Time{}.Add(d).Format("15:04")
}
