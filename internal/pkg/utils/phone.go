package utils

import (
	"afyacare-service/internal/pkg/constvars"
	"fmt"
	"regexp"
	"strings"
)

var reKenyanMSISDN = regexp.MustCompile(constvars.RegexKenyanMSISDN)

// NormalizeMSISDN converts user-supplied phone numbers to the international
// format the daraja gateway requires (2547XXXXXXXX / 2541XXXXXXXX).
// Accepted inputs: 07XXXXXXXX, 01XXXXXXXX, 7XXXXXXXX, 1XXXXXXXX,
// 254XXXXXXXXX and +254XXXXXXXXX, with spaces and dashes ignored.
func NormalizeMSISDN(input string) (string, error) {
	s := strings.TrimSpace(input)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimPrefix(s, "+")

	switch {
	case strings.HasPrefix(s, "254"):
		// already international
	case strings.HasPrefix(s, "0") && len(s) == 10:
		s = "254" + s[1:]
	case (strings.HasPrefix(s, "7") || strings.HasPrefix(s, "1")) && len(s) == 9:
		s = "254" + s
	default:
		return "", fmt.Errorf("phone number %q has an unrecognized prefix or length", input)
	}

	if !reKenyanMSISDN.MatchString(s) {
		return "", fmt.Errorf("phone number %q does not normalize to a valid Safaricom MSISDN", input)
	}
	return s, nil
}
