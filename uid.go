package dhis2

import "github.com/google/uuid"

const (
	uidLength   = 11
	uidLetters  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	uidAlphabet = "0123456789" + uidLetters
)

// GenerateUID generates an identifier in the DHIS2 UID format: 11
// alphanumeric characters of which the first is alphabetic.
func GenerateUID() string {
	entropy := uuid.New()

	buf := make([]byte, uidLength)
	buf[0] = uidLetters[int(entropy[0])%len(uidLetters)]
	for i := 1; i < uidLength; i++ {
		buf[i] = uidAlphabet[int(entropy[i])%len(uidAlphabet)]
	}
	return string(buf)
}

// IsValidUID indicates whether the given string is a valid DHIS2 UID.
func IsValidUID(uid string) bool {
	if len(uid) != uidLength {
		return false
	}
	if !isUIDLetter(uid[0]) {
		return false
	}
	for i := 1; i < len(uid); i++ {
		if !isUIDLetter(uid[i]) && (uid[i] < '0' || uid[i] > '9') {
			return false
		}
	}
	return true
}

func isUIDLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
