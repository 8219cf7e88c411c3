package parser

import (
	"fmt"
	"regexp"
	"strconv"
)

// fallbackYear is used when no yyyy-mm-dd substring can be recovered from
// the statement period.
const fallbackYear = "2025"

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

const monthAlternation = "January|February|March|April|May|June|" +
	"July|August|September|October|November|December"

// dateHeaderPattern matches a date-header token: a full month name
// immediately followed by a one- or two-digit day number.
var dateHeaderPattern = regexp.MustCompile(`(` + monthAlternation + `)\s+(\d{1,2})`)

// periodYearPattern recovers the statement year from an ISO-like substring
// of the statement period field.
var periodYearPattern = regexp.MustCompile(`(\d{4})-\d{2}-\d{2}`)

// dateHeader is one recognized header occurrence, carrying its byte offsets
// within the source text.
type dateHeader struct {
	month string
	day   string
	start int // offset of the match
	end   int // offset just past the match
}

// daySection is the span of text between one date header and the next,
// scoped to one calendar day's transactions.
type daySection struct {
	date    string // yyyy-mm-dd
	content string
}

// resolveYear returns the 4-digit calendar year for all transactions,
// parsed from the statement period when present.
func resolveYear(statementPeriod string) string {
	if m := periodYearPattern.FindStringSubmatch(statementPeriod); m != nil {
		return m[1]
	}
	return fallbackYear
}

// findDateHeaders enumerates every date-header occurrence in the text as an
// explicit sequence of match objects with source offsets.
func findDateHeaders(text string) []dateHeader {
	var headers []dateHeader
	for _, loc := range dateHeaderPattern.FindAllStringSubmatchIndex(text, -1) {
		headers = append(headers, dateHeader{
			month: text[loc[2]:loc[3]],
			day:   text[loc[4]:loc[5]],
			start: loc[0],
			end:   loc[1],
		})
	}
	return headers
}

// splitDateSections partitions the text into per-day sections. Each
// section's content runs from its header to the next header (or end of
// text).
func splitDateSections(text, year string) []daySection {
	headers := findDateHeaders(text)
	sections := make([]daySection, 0, len(headers))
	for i, h := range headers {
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1].start
		}
		sections = append(sections, daySection{
			date:    formatDate(year, h.month, h.day),
			content: text[h.end:end],
		})
	}
	return sections
}

// formatDate builds a zero-padded yyyy-mm-dd date from a header's month
// name and day number.
func formatDate(year, month, day string) string {
	monthIndex := 0
	for i, m := range months {
		if m == month {
			monthIndex = i + 1
			break
		}
	}
	dayNum, _ := strconv.Atoi(day)
	return fmt.Sprintf("%s-%02d-%02d", year, monthIndex, dayNum)
}
