package logger

import "strings"

// RedactEmail masks an email address so customer addresses never reach log
// storage in clear text.
// "john.doe@example.com" → "jo***@example.com"
// Local parts of two characters or fewer are fully masked: "ab@example.com" → "***@example.com"
func RedactEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if len(local) > 2 {
		return local[:2] + "***@" + domain
	}
	return "***@" + domain
}
