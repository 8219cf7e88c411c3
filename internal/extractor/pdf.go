// Package extractor converts bank-statement PDF files into plain text for
// the parser. It is the upstream collaborator of the extraction core: the
// core consumes text, never files.
package extractor

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ReadText reads a PDF file and returns its full text content, pages
// joined by newlines. It tries row-based extraction first for layout
// preservation, then whole-document plain text. Output that fails the
// readability gate is rejected rather than handed to the parser.
func ReadText(path string) (text string, err error) {
	// The PDF library panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf decoding crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("pdf has no pages")
	}

	if text := extractByRow(r); isReadableText(text) {
		return text, nil
	}

	if text := extractPlainText(r); isReadableText(text) {
		return text, nil
	}

	return "", fmt.Errorf("no readable text could be extracted; the file may be image-based or use custom font encodings")
}

// extractByRow joins the text of each page row by row, preserving line
// structure.
func extractByRow(r *pdf.Reader) string {
	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, strings.Join(lines, "\n"))
	}
	return strings.Join(pages, "\n")
}

// extractPlainText is the whole-document fallback path.
func extractPlainText(r *pdf.Reader) string {
	reader, err := r.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// statementWords appear in virtually every bank statement. Extracted text
// containing none of them is likely garbage from an undecodable font.
var statementWords = []string{
	"account", "balance", "statement", "transaction", "credit", "debit",
	"wallet", "opening", "closing", "total", "period", "ngn",
}

// isReadableText checks that the text is long enough, mostly readable
// ASCII, and contains at least one word a statement would carry.
func isReadableText(text string) bool {
	if len(strings.TrimSpace(text)) <= 50 {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	lower := strings.ToLower(text)
	for _, w := range statementWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// textQuality returns the ratio of readable ASCII characters (letters,
// digits, whitespace, common punctuation) to total characters.
func textQuality(text string) float64 {
	total := 0
	readable := 0
	for _, r := range text {
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || unicode.IsSpace(r) ||
			strings.ContainsRune(`.,-/:;()'"%&@#!?+=*`, r) {
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}
