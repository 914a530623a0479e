package translate

// chunkText splits text into pieces of at most width characters. Splitting
// happens on rune boundaries so multi-byte characters are never corrupted;
// sentence boundaries are not respected, matching the remote service's
// request-size ceiling semantics.
func chunkText(text string, width int) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	if width <= 0 || len(runes) <= width {
		return []string{text}
	}

	chunks := make([]string, 0, (len(runes)+width-1)/width)
	for start := 0; start < len(runes); start += width {
		end := start + width
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
