// redact маскирует учётные данные перед записью в лог.
package redact

// Username оставляет первые два символа имени.
func Username(s string) string {
	r := []rune(s)
	if len(r) <= 2 {
		return "***"
	}

	return string(r[:2]) + "***"
}

func Password() string { return "[REDACTED_PASSWORD]" }
