package response

import (
	"time"

	"github.com/jinzhu/copier"
)

// Date renders a calendar day as YYYY-MM-DD.
type Date string

func NewDate(t time.Time) Date {
	return Date(t.Format(time.DateOnly))
}

var dateConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: Date(""),
	Fn: func(src any) (any, error) {
		return NewDate(src.(time.Time)), nil
	},
}

// copyView copies a query view into its response shape. Calendar-day fields
// are declared as Date on the response; timestamps stay time.Time.
func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{
		Converters: []copier.TypeConverter{dateConverter},
	})
}
