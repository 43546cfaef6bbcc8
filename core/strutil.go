package core

// itoa converts an integer to a string without using the fmt package.
// This is a lightweight alternative for embedded systems.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	// Count digits
	temp := n
	digits := 0
	for temp > 0 {
		digits++
		temp /= 10
	}

	// Add space for negative sign
	if negative {
		digits++
	}

	// Build string from right to left
	buf := make([]byte, digits)
	pos := digits - 1

	for n > 0 {
		buf[pos] = byte('0' + n%10)
		n /= 10
		pos--
	}

	if negative {
		buf[0] = '-'
	}

	return string(buf)
}

// atoi parses a decimal integer, tolerating a leading sign. It reports
// whether the whole string was consumed; partial or empty input is not
// a number.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	negative := false
	i := 0
	if s[0] == '+' || s[0] == '-' {
		negative = s[0] == '-'
		i++
		if i == len(s) {
			return 0, false
		}
	}

	const maxInt = int(^uint(0) >> 1)

	n := 0
	for ; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := int(c - '0')
		// Overflow is not a number either.
		if n > (maxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
	}

	if negative {
		n = -n
	}
	return n, true
}

// ftoa formats a float with a fixed number of decimal places, rounding the
// final digit. Enough for sensor readings; avoids pulling strconv's float
// machinery into the firmware image.
func ftoa(v float32, decimals int) string {
	negative := v < 0
	if negative {
		v = -v
	}

	scale := 1
	for i := 0; i < decimals; i++ {
		scale *= 10
	}

	// Round to the requested precision
	scaled := int64(float64(v)*float64(scale) + 0.5)
	whole := scaled / int64(scale)
	frac := scaled % int64(scale)

	s := itoa(int(whole))
	if decimals > 0 {
		fracStr := itoa(int(frac))
		for len(fracStr) < decimals {
			fracStr = "0" + fracStr
		}
		s += "." + fracStr
	}

	if negative && scaled != 0 {
		s = "-" + s
	}
	return s
}
