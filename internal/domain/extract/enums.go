// Package extract pulls the enum mapping and the domain group table out of
// the two upstream C# source files with line-oriented pattern matching.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Enum member lines look like
//
//	Google = 0,
//	Ameritrade = 1,
//
// inside the enum declaration. Braces, comments, attributes and the
// declaration itself never match.
var enumLine = regexp.MustCompile(`^\s*([_0-9a-zA-Z]+)\s*=\s*([0-9]+)`)

// Enums scans text line by line and returns identifier to value. A repeated
// identifier keeps the last value seen.
func Enums(text string) map[string]int {
	enums := make(map[string]int)
	for _, line := range strings.Split(text, "\n") {
		m := enumLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[2])
		if err != nil {
			// Digits beyond the int range; no real enum member gets here.
			continue
		}
		enums[m[1]] = value
	}
	return enums
}
