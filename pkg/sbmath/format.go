package sbmath

import (
	"strconv"
	"strings"
)

// formatFloats renders values with the given number of decimals, separated
// by single spaces.
func formatFloats(precision int, values ...float32) string {
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(float64(v), 'f', precision, 32))
	}
	return sb.String()
}
