// Package rollno mints learner roll numbers of the form
// <YY><DOMAIN_CODE><SEQ:3digits><BRANCH>, e.g. 25PY007CSE.
package rollno

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// domainCodes maps lower-cased course names to their two-letter code.
// Unknown courses fall back to the generic code.
var domainCodes = map[string]string{
	"python":           "PY",
	"data science":     "DS",
	"machine learning": "ML",
}

const genericCode = "GN"

// DomainCode returns the two-letter code for a course name.
func DomainCode(domain string) string {
	if code, ok := domainCodes[strings.ToLower(domain)]; ok {
		return code
	}
	return genericCode
}

// Year returns the two-digit enrollment year for t.
func Year(t time.Time) int {
	return t.Year() % 100
}

// Prefix returns the "<YY><CODE>" prefix shared by every roll number
// minted for the given domain in the given year.
func Prefix(domain string, year int) string {
	return fmt.Sprintf("%02d%s", year, DomainCode(domain))
}

// Format builds a roll number from its parts.
func Format(domain string, branch string, year int, seq int) string {
	return fmt.Sprintf("%02d%s%03d%s", year, DomainCode(domain), seq, branch)
}

// Sequence extracts the 3-digit sequence from an existing roll number
// minted for the given domain. Returns an error when the roll number
// does not carry the expected domain code.
func Sequence(roll string, domain string) (int, error) {
	code := DomainCode(domain)
	idx := strings.Index(roll, code)
	if idx < 0 || len(roll) < idx+len(code)+3 {
		return 0, fmt.Errorf("roll number %q does not match domain code %s", roll, code)
	}
	seqPart := roll[idx+len(code) : idx+len(code)+3]
	seq, err := strconv.Atoi(seqPart)
	if err != nil {
		return 0, fmt.Errorf("roll number %q has non-numeric sequence %q", roll, seqPart)
	}
	return seq, nil
}

// Matches reports whether roll has exactly the shape minted for the
// given (year, domain, branch). Prefix and suffix checks alone are not
// enough: branch CSE is also a suffix of ECSE rolls.
func Matches(roll string, domain string, branch string, year int) bool {
	prefix := Prefix(domain, year)
	if len(roll) != len(prefix)+3+len(branch) {
		return false
	}
	if !strings.HasPrefix(roll, prefix) || !strings.HasSuffix(roll, branch) {
		return false
	}
	for i := range 3 {
		if c := roll[len(prefix)+i]; c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Next returns the roll number following last for the same
// (year, domain, branch). An empty last starts the sequence at 1.
func Next(domain string, branch string, year int, last string) (string, error) {
	if last == "" {
		return Format(domain, branch, year, 1), nil
	}
	seq, err := Sequence(last, domain)
	if err != nil {
		return "", err
	}
	return Format(domain, branch, year, seq+1), nil
}
