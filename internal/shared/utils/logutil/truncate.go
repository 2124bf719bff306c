package logutil

// TruncateForLog keeps only the first maxLen bytes of s, so tokens and image
// payloads never land in logs whole.
func TruncateForLog(s string, maxLen int) string {
	if maxLen <= 0 {
		return "..."
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
