package utils

import "regexp"

// Same pattern the newsletter form has always used.
var emailRegex = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
