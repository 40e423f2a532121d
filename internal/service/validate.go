package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxNameLength is the longest accepted name, counted in characters.
const maxNameLength = 100

// emailPattern accepts local@domain addresses with at least one dot in the
// domain and no whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Messages shown next to the offending form field.
const (
	msgNameRequired  = "Name is required."
	msgNameTooLong   = "Name must be 100 characters or fewer."
	msgEmailRequired = "Email is required."
	msgEmailInvalid  = "Enter a valid email address."
)

// ValidateUser checks a submitted name and email and returns a message per
// failing field, keyed "name" and "email". A nil map means the input is
// valid. Violations are collected rather than short-circuited so the form
// can mark every bad field in one round trip.
func ValidateUser(name, email string) map[string]string {
	errs := make(map[string]string)

	switch {
	case strings.TrimSpace(name) == "":
		errs["name"] = msgNameRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		errs["name"] = msgNameTooLong
	}

	switch {
	case strings.TrimSpace(email) == "":
		errs["email"] = msgEmailRequired
	case !emailPattern.MatchString(email):
		errs["email"] = msgEmailInvalid
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
