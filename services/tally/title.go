package tally

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"noticeboard-tally/lib/textutil"
)

type Mode string

const (
	ModePPO    Mode = "ppo"
	ModeIntern Mode = "intern"
)

var ErrUnknownMode = errors.New("unknown mode")

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModePPO:
		return ModePPO, nil
	case ModeIntern:
		return ModeIntern, nil
	}
	return "", fmt.Errorf("%w %q, expected %q or %q", ErrUnknownMode, s, ModePPO, ModeIntern)
}

type titleFilter struct {
	include []string
	exclude []string
}

var titleFilters = map[Mode]titleFilter{
	ModePPO: {
		include: []string{"ppo", "pre-placement"},
	},
	ModeIntern: {
		include: []string{"intern", "internship"},
		// keeps ppo threads from being counted twice
		exclude: []string{"ppo", "pre-placement", "shortlist", "interview"},
	},
}

// Matches reports whether a thread with `title` belongs to `mode`.
func Matches(title string, mode Mode) bool {
	filter, ok := titleFilters[mode]
	if !ok {
		return false
	}
	return textutil.ContainsAny(title, filter.include) &&
		!textutil.ContainsAny(title, filter.exclude)
}

var bracketed = regexp.MustCompile(`\[.*?\]`)
var topicPrefix = regexp.MustCompile(`(?i)^topic:\s*`)
var nameSeparator = regexp.MustCompile(`[:-]`)

const UnknownCompany = "Unknown"

// NormalizeCompany derives the company name used as the tally key from a
// thread title, e.g. "[Campus] TOPIC: Google - Internship Results" is "Google".
func NormalizeCompany(title string) string {
	title = bracketed.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	title = topicPrefix.ReplaceAllString(title, "")
	title = strings.TrimSpace(title)
	if title == "" {
		return UnknownCompany
	}

	head := nameSeparator.Split(title, 2)[0]
	return textutil.TitleCase(strings.TrimSpace(head))
}
