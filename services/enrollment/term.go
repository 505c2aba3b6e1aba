package enrollment

import (
	"errors"
	"fmt"
	"strings"
)

// Semester names one of the academic terms the class schedule tool
// understands.
type Semester string

const (
	Spring Semester = "Spring"
	Summer Semester = "Summer"
	Fall   Semester = "Fall"
)

var ErrInvalidTerm = errors.New("invalid term key")
var ErrInvalidSemester = errors.New("invalid semester")

var semesterOrder = []Semester{Spring, Summer, Fall}

// DecodeTerm converts a 4-digit term key into its semester and year.
func DecodeTerm(key int) (Semester, int, error) {
	index := key%10/2 - 2
	if index < 0 || index >= len(semesterOrder) {
		return "", 0, fmt.Errorf("%w: %d", ErrInvalidTerm, key)
	}
	return semesterOrder[index], 2000 + key%1000/10, nil
}

// EncodeTerm converts a semester name (case-insensitive, surrounding
// whitespace ignored) and year into a 4-digit term key. EncodeTerm and
// DecodeTerm are exact inverses for the three known semesters and
// years 2000 through 2099.
func EncodeTerm(semester string, year int) (int, error) {
	name := strings.ToLower(strings.TrimSpace(semester))
	for i, s := range semesterOrder {
		if strings.ToLower(string(s)) == name {
			return 1000 + year%100*10 + i*2 + 4, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSemester, semester)
}
