package util

import (
	"fmt"
	"time"
)

// DateLayout is the YYYY-MM-DD layout used for birth dates, deadlines and
// prescription dates.
const DateLayout = "2006-01-02"

// CalculateAge returns the age in whole years on now for a YYYY-MM-DD birth date.
// The age drops by one while now's month/day is still before the birthday.
func CalculateAge(birthDate string, now time.Time) (int, error) {
	birth, err := time.Parse(DateLayout, birthDate)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}

	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age, nil
}
