package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return d, nil
}

// RentalDays returns the number of billable days between two dates, counting
// both endpoints: start == end is 1 day, a Monday-to-Wednesday rental is 3.
// The inclusive +1 is a business rule the payment amounts depend on.
func RentalDays(start, end time.Time) (int32, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be on or after start date")
	}
	days := int32(end.Sub(start).Hours()/24) + 1
	return days, nil
}

// TotalAmountCents computes the charge for a rental period at a per-day rate.
func TotalAmountCents(start, end time.Time, pricePerDayCents int32) (int32, error) {
	days, err := RentalDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * pricePerDayCents, nil
}
