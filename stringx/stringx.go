// Package stringx provides rune-aware string slicing helpers.
package stringx

import "strings"

// Chunk splits s into consecutive pieces of size runes each; the final piece
// may be shorter. Returns nil for an empty string. Panics if size < 1.
func Chunk(s string, size int) []string {
	if size < 1 {
		panic("invalid chunk size")
	}
	if s == "" {
		return nil
	}

	var chunks []string
	runes := []rune(s)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// Crop shortens s to at most max runes, replacing the removed suffix with
// tail. The result, tail included, never exceeds max runes. If tail alone is
// longer than max, the cropped tail is returned. Panics if max < 0.
func Crop(s string, max int, tail string) string {
	if max < 0 {
		panic("invalid crop length")
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	tailRunes := []rune(tail)
	if len(tailRunes) >= max {
		return string(tailRunes[:max])
	}
	return string(runes[:max-len(tailRunes)]) + tail
}

// IndexAll returns the byte offsets of every non-overlapping occurrence of
// substr in s, left to right. Returns nil when substr is empty or absent.
func IndexAll(s, substr string) []int {
	if substr == "" {
		return nil
	}

	var offsets []int
	for pos := 0; ; {
		i := strings.Index(s[pos:], substr)
		if i < 0 {
			return offsets
		}
		offsets = append(offsets, pos+i)
		pos += i + len(substr)
	}
}
