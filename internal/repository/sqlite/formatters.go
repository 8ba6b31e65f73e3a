package sqlite

import (
	"time"

	"todo/internal/domain"
)

// FormatDateForDB formats a due date as YYYY-MM-DD text
func FormatDateForDB(t time.Time) string {
	return domain.FormatDate(t)
}

// ParseDateFromDB parses a YYYY-MM-DD due date read from the database
func ParseDateFromDB(s string) (time.Time, error) {
	return domain.ParseDate(s)
}

// BoolToDB stores booleans as 0/1 integers
func BoolToDB(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// BoolFromDB reads a 0/1 integer as a boolean
func BoolFromDB(i int64) bool {
	return i != 0
}
