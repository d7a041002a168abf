// Package interpreter classifies free-text task strings into typed actions.
//
// The grammar is a small, fixed set of literal command shapes checked in
// priority order; it is the wire-level contract with end users and must not
// silently change accepted phrasing.
package interpreter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/okarin/deskpilot/pkg/domain"
)

var (
	clickRe = regexp.MustCompile(`(?i)^click\s+at\s+(\d+)\s*,\s*(\d+)$`)
	moveRe  = regexp.MustCompile(`(?i)^move\s+(?:mouse\s+)?to\s+(\d+)\s*,\s*(\d+)$`)
)

// Interpret parses a task string into an Action. It is pure and
// deterministic: the same text always yields the same classification, with
// no side effects and no I/O.
//
// Rules, in priority order (first match wins):
//
//	click at <x>, <y>
//	move to <x>, <y>   (also "move mouse to")
//	type <text>        (remainder taken verbatim)
//	press <key+key+…>
//	open <app name>
//	read screen
//
// Anything else, including empty input and lines with malformed coordinates,
// is rejected with ErrUnrecognizedCommand wrapping the raw input. A rule
// either yields a fully valid action or rejects the whole line; there are no
// partial matches.
func Interpret(text string) (domain.Action, error) {
	s := strings.TrimSpace(text)

	if m := clickRe.FindStringSubmatch(s); m != nil {
		x, y, err := coords(m[1], m[2])
		if err != nil {
			return unrecognized(text)
		}
		return domain.Action{Kind: domain.KindClick, X: x, Y: y}, nil
	}

	if m := moveRe.FindStringSubmatch(s); m != nil {
		x, y, err := coords(m[1], m[2])
		if err != nil {
			return unrecognized(text)
		}
		return domain.Action{Kind: domain.KindMove, X: x, Y: y}, nil
	}

	if rest, ok := after(s, "type"); ok {
		// Everything after the keyword is the payload, verbatim.
		return domain.Action{Kind: domain.KindTypeText, Text: rest}, nil
	}

	if rest, ok := after(s, "press"); ok {
		keys := splitKeys(rest)
		if len(keys) == 0 {
			return unrecognized(text)
		}
		return domain.Action{Kind: domain.KindKeyCombo, Keys: keys}, nil
	}

	if rest, ok := after(s, "open"); ok {
		name := strings.TrimSpace(rest)
		if name == "" {
			return unrecognized(text)
		}
		return domain.Action{Kind: domain.KindOpenApp, App: name}, nil
	}

	if strings.EqualFold(s, "read screen") {
		return domain.Action{Kind: domain.KindReadScreen}, nil
	}

	return unrecognized(text)
}

func unrecognized(raw string) (domain.Action, error) {
	return domain.Action{Kind: domain.KindUnrecognized},
		fmt.Errorf("%w: %s", domain.ErrUnrecognizedCommand, raw)
}

// after reports whether s starts with the given keyword followed by a space
// (case-insensitive) and returns the remainder unmodified.
func after(s, keyword string) (string, bool) {
	if len(s) <= len(keyword)+1 {
		return "", false
	}
	if !strings.EqualFold(s[:len(keyword)], keyword) || s[len(keyword)] != ' ' {
		return "", false
	}
	return s[len(keyword)+1:], true
}

func coords(sx, sy string) (int, int, error) {
	x, err := strconv.Atoi(sx)
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(sy)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func splitKeys(s string) []string {
	var keys []string
	for _, tok := range strings.Split(s, "+") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			return nil
		}
		keys = append(keys, tok)
	}
	return keys
}
