package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"giftfinder/internal/models/response_models"
)

// GiftReplyMarker is the literal trigger substring the backend puts in front
// of a recommendation list. Replies without it carry no structured gifts.
const GiftReplyMarker = "Here are some gifts that might interest you:"

// chatGiftScore is the fixed confidence assigned to chat-extracted gifts;
// the reply format carries no real confidence signal.
const chatGiftScore = 0.95

var (
	headerRe     = regexp.MustCompile(`^\d+\.`)
	namePrefixRe = regexp.MustCompile(`^\d+\.\s*`)
	descLabelRe  = regexp.MustCompile(`Description:\s*`)
)

// ExtractGiftReply parses a free-text chatbot reply into structured gift
// records. The reply format is line-oriented: a numbered header line
// ("1. Name - $19.99") followed by a description line and a "Category:" line.
// Parsing is deliberately lenient: malformed header lines are skipped, a
// missing description or category line falls back to its default, and a
// reply that carries the marker but no valid headers yields nil.
//
// The description is always read from the line after the header and the
// category from the line after that. A reply that omits its description line
// shifts both reads by one; that offset behavior is part of the backend
// contract and must not be corrected here.
func ExtractGiftReply(reply string) []response_models.Gift {
	if !strings.Contains(reply, GiftReplyMarker) {
		return nil
	}

	lines := strings.Split(reply, "\n")
	var gifts []response_models.Gift

	for i, line := range lines {
		if !headerRe.MatchString(line) {
			continue
		}

		parts := strings.Split(line, " - $")
		if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
			continue
		}

		price, ok := parseLeadingFloat(parts[1])
		if !ok {
			continue
		}

		name := strings.TrimSpace(namePrefixRe.ReplaceAllString(parts[0], ""))

		description := ""
		if i+1 < len(lines) {
			description = replaceFirst(descLabelRe, strings.TrimSpace(lines[i+1]))
		}

		category := "Other"
		if i+2 < len(lines) && strings.Contains(lines[i+2], "Category:") {
			category = strings.TrimSpace(strings.Split(lines[i+2], "Category:")[1])
		}

		gifts = append(gifts, response_models.Gift{
			ID:          fmt.Sprintf("chat-%d-%d", time.Now().UnixMilli(), i),
			Name:        name,
			Description: description,
			Category:    category,
			Price:       price,
			Score:       chatGiftScore,
		})
	}

	return gifts
}

// parseLeadingFloat parses the longest valid floating-point prefix of s,
// ignoring leading whitespace and any trailing text ("19.99 only" -> 19.99).
func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	seenDigit := false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
		seenDigit = true
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
			seenDigit = true
		}
	}
	if !seenDigit {
		return 0, false
	}

	// Optional exponent; only consume it if it is complete.
	if end < len(s) && (s[end] == 'e' || s[end] == 'E') {
		expEnd := end + 1
		if expEnd < len(s) && (s[expEnd] == '+' || s[expEnd] == '-') {
			expEnd++
		}
		expDigits := false
		for expEnd < len(s) && s[expEnd] >= '0' && s[expEnd] <= '9' {
			expEnd++
			expDigits = true
		}
		if expDigits {
			end = expEnd
		}
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// replaceFirst removes only the first match of re, leaving later ones alone.
func replaceFirst(re *regexp.Regexp, s string) string {
	loc := re.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + s[loc[1]:]
}
