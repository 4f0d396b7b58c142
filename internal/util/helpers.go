package util

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// DateKey is the layout of history bucket keys.
const DateKey = "2006-01-02"
