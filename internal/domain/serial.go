package domain

import (
	"regexp"
	"strconv"
)

var serialQueryRe = regexp.MustCompile(`^#(\d+)$`)

// ParseSerialQuery recognises the "#<digits>" lookup syntax. It returns
// false for any other query, including numbers too large to represent.
func ParseSerialQuery(query string) (int, bool) {
	m := serialQueryRe.FindStringSubmatch(query)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// SerialOffset converts a serial number into the zero-based offset of the
// item under the newest-first ordering. Serial 1 is the most recent item.
// ok is false when the serial does not address an existing item.
func SerialOffset(serial, totalCount int) (offset int, ok bool) {
	if serial < 1 || serial > totalCount {
		return 0, false
	}
	return serial - 1, true
}
