package service

import "fmt"

// FormatUserCode builds the member code assigned at registration:
// two-letter state code, gender marker and a zero-padded per-(state, gender)
// sequence number, e.g. GJ-M-00042.
func FormatUserCode(stateCode, gender string, seq int64) string {
	return fmt.Sprintf("%s-%s-%05d", stateCode, gender, seq)
}
