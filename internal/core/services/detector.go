package services

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/aidenappl/OneTimePaste/internal/core/domain"
)

// candidatePattern matches runs of 3 to 9 ASCII digits bounded by
// non-word characters or the ends of the text.
var candidatePattern = regexp.MustCompile(`\b\d{3,9}\b`)

// contextKeywords grant a single bonus when any is present.
var contextKeywords = []string{
	"code", "verify", "verification", "otp", "login", "security", "confirm", "access",
}

// penaltyKeywords each subtract independently.
var penaltyKeywords = []string{"price", "total", "phone", "year", "$"}

const (
	preferredScore  = 3
	fallbackScore   = 1
	contextBonus    = 2
	penaltyPerMatch = 2
	scoreThreshold  = 2
)

// CodeDetector finds the most likely one-time passcode in a message.
// It is stateless and safe for concurrent use.
type CodeDetector struct {
	minDigits int
	maxDigits int
}

// NewCodeDetector creates a detector narrowed to the configured bounds.
func NewCodeDetector(settings domain.DetectionSettings) *CodeDetector {
	lo, hi := settings.DigitBounds()
	return &CodeDetector{minDigits: lo, maxDigits: hi}
}

// Detect returns the first candidate, left to right, whose score
// exceeds the threshold.
func (d *CodeDetector) Detect(text string) (string, bool) {
	candidates := candidatePattern.FindAllString(text, -1)
	if len(candidates) == 0 {
		return "", false
	}

	adjust := contextScore(text)
	for _, c := range candidates {
		// Digits are ASCII, so byte length is digit count.
		if len(c) < d.minDigits || len(c) > d.maxDigits {
			continue
		}
		if lengthScore(len(c))+adjust > scoreThreshold {
			return c, true
		}
	}
	return "", false
}

func lengthScore(digits int) int {
	if digits >= 4 && digits <= 6 {
		return preferredScore
	}
	return fallbackScore
}

// contextScore is the keyword adjustment shared by every candidate in text.
func contextScore(text string) int {
	lower := cases.Lower(language.Und).String(text)

	score := 0
	for _, kw := range contextKeywords {
		if strings.Contains(lower, kw) {
			score += contextBonus
			break
		}
	}
	for _, kw := range penaltyKeywords {
		if strings.Contains(lower, kw) {
			score -= penaltyPerMatch
		}
	}
	return score
}
