package enrollment

import (
	"errors"
	"regexp"

	"github.com/aiwhispererwvdp/Ai-Whisperers-Website-Courses-sub000/pkg/catalog"
)

// Error strings are surfaced verbatim in HTTP responses and checked by
// the frontend; do not reword them.
var (
	ErrMissingFields   = errors.New("Missing required fields")
	ErrInvalidEmail    = errors.New("Invalid email format")
	ErrInvalidCourseID = errors.New("Invalid course ID")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Experience levels accepted from the enrollment form.
var experienceLevels = map[string]bool{
	"none":         true,
	"beginner":     true,
	"intermediate": true,
	"advanced":     true,
	"expert":       true,
	"professional": true,
}

func ValidExperience(level string) bool {
	return experienceLevels[level]
}

// Validate checks the student form and course selection the same way
// for every caller. Order matters: missing fields win over format
// errors, which win over catalog errors.
func Validate(info StudentInfo, courseID string) error {
	if info.FirstName == "" || info.LastName == "" || info.Email == "" || info.Experience == "" {
		return ErrMissingFields
	}

	if !emailPattern.MatchString(info.Email) {
		return ErrInvalidEmail
	}

	if !catalog.ValidCourseID(courseID) {
		return ErrInvalidCourseID
	}

	return nil
}
