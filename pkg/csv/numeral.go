package csv

// isNumeral reports whether a field matches the numeral grammar in
// its entirety:
//
//	numeral := signed_decimal | signed_exponential | hex
//	signed_decimal     := ["-"|"+"] digits ["." digits]
//	signed_exponential := signed_decimal ("e"|"E") ["-"|"+"] digits
//	hex                := "0" ("x"|"X") hex_digit+
//
// The exponent and hex markers are case-insensitive. No leading or
// trailing characters and no embedded whitespace are tolerated, which
// is why this is a hand-rolled scanner: strconv accepts forms the
// grammar rejects (".5", "1e+05" is fine but "inf", "0x1p-2" and
// leading/trailing space are not numerals here).
func isNumeral(field string) bool {
	if len(field) >= 2 && field[0] == '0' && (field[1] == 'x' || field[1] == 'X') {
		return isHexNumeral(field[2:])
	}
	return isDecimalNumeral(field)
}

// isHexNumeral matches hex_digit+ (the "0x" prefix already consumed).
func isHexNumeral(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// isDecimalNumeral matches signed_decimal and signed_exponential.
func isDecimalNumeral(s string) bool {
	i := 0

	// Optional sign.
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}

	// Mandatory integer digits.
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return false
	}

	// Optional fractional part: "." digits.
	if i < len(s) && s[i] == '.' {
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == start {
			return false
		}
	}

	if i == len(s) {
		return true
	}

	// Exponent: ("e"|"E") ["-"|"+"] digits, which must consume the
	// rest of the field.
	if s[i] != 'e' && s[i] != 'E' {
		return false
	}
	i++
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start = i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i > start && i == len(s)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
