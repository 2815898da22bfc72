package model

// TruncateText shortens text to at most maxLength runes, replacing the tail
// with an ellipsis. Text already short enough is returned unchanged.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}

	if maxLength <= 3 {
		return string(runes[:maxLength])
	}

	return string(runes[:maxLength-3]) + "..."
}

// MaskSecret keeps the first visible characters of a secret.
func MaskSecret(secret string, visible int) string {
	runes := []rune(secret)
	if len(runes) <= visible {
		return secret + "..."
	}

	return string(runes[:visible]) + "..."
}
