package numberutils

import (
	"strconv"
)

// ToInt64WithError converts the given string to an int64 and returns any error that occurred during conversion.
func ToInt64WithError(str string) (int64, error) {
	return strconv.ParseInt(str, 10, 64)
}

// ToPositiveInt64 converts the given string to an int64 greater than zero.
// It returns false when the string is not a number or the number is not positive.
func ToPositiveInt64(str string) (int64, bool) {
	value, err := ToInt64WithError(str)
	if err != nil || !IsInt64Positive(value) {
		return 0, false
	}
	return value, true
}

// IsInt64Positive checks if the given int64 is positive.
// It returns true if the number is greater than zero.
func IsInt64Positive(number int64) bool {
	return number > 0
}
