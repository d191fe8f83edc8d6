package entity

import "regexp"

// phonePattern matches Kenyan local phone numbers: a leading zero followed by
// exactly nine digits, e.g. "0712345678".
var phonePattern = regexp.MustCompile(`^0\d{9}$`)

// ValidPhoneNumber reports whether the phone number has the expected format.
func ValidPhoneNumber(phoneNumber string) bool {
	return phonePattern.MatchString(phoneNumber)
}
