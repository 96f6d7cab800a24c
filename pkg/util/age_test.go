package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculateAge_BirthdayBoundary(t *testing.T) {
	tests := []struct {
		name  string
		today string
		want  int
	}{
		{"day before birthday", "2024-06-14", 23},
		{"on birthday", "2024-06-15", 24},
		{"day after birthday", "2024-06-16", 24},
		{"earlier month", "2024-05-30", 23},
		{"later month", "2024-07-01", 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			age, err := CalculateAge("2000-06-15", day(tt.today))
			require.NoError(t, err)
			assert.Equal(t, tt.want, age)
		})
	}
}

func TestCalculateAge_Malformed(t *testing.T) {
	for _, input := range []string{"", "2000/06/15", "2024-13-99", "not a date"} {
		_, err := CalculateAge(input, day("2024-06-15"))
		assert.Error(t, err, input)
	}
}
