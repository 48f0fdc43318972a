package coeval

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// lineScanner walks the non-blank lines of a raw text file, keeping the
// original 1-based line numbers for error reporting. Blank lines and
// leading/trailing whitespace are tolerated everywhere.
type lineScanner struct {
	lines []string
	pos   int
}

func newLineScanner(raw string) *lineScanner {
	return &lineScanner{lines: strings.Split(raw, "\n")}
}

func (s *lineScanner) next() (fields []string, line int, ok bool) {
	for s.pos < len(s.lines) {
		s.pos++
		t := strings.TrimSpace(s.lines[s.pos-1])
		if t == "" {
			continue
		}
		return strings.Fields(strings.ReplaceAll(t, ",", " ")), s.pos, true
	}
	return nil, 0, false
}

// expect returns the fields of the next non-blank line and fails unless
// there are exactly n of them.
func (s *lineScanner) expect(n int, what string) ([]string, int, error) {
	fields, line, ok := s.next()
	if !ok {
		return nil, 0, formatErrorf(s.pos, fmt.Sprintf("%s (%d fields)", what, n), "end of input")
	}
	if len(fields) != n {
		return nil, 0, formatErrorf(line, fmt.Sprintf("%d fields (%s)", n, what), "%d fields", len(fields))
	}
	return fields, line, nil
}

// expectEnd fails if any non-blank line is left over.
func (s *lineScanner) expectEnd() error {
	if fields, line, ok := s.next(); ok {
		return formatErrorf(line, "end of input", "%d extra fields", len(fields))
	}
	return nil
}

// token is a single whitespace-separated item together with the line it came
// from. Solution files are read token-wise so that both one-per-line and
// single-line layouts are accepted.
type token struct {
	text string
	line int
}

func (s *lineScanner) tokens() []token {
	var toks []token
	for {
		fields, line, ok := s.next()
		if !ok {
			return toks
		}
		for _, f := range fields {
			toks = append(toks, token{text: f, line: line})
		}
	}
}

func parseIntField(tok string, line int, what string) (int, error) {
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, formatErrorf(line, fmt.Sprintf("integer %s", what), "%q", tok)
	}
	return v, nil
}

func parseFloatField(tok string, line int, what string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, formatErrorf(line, fmt.Sprintf("numeric %s", what), "%q", tok)
	}
	return v, nil
}

// parseIntRow parses a full line of non-negative integers.
func parseIntRow(fields []string, line int, what string) ([]int, error) {
	row := make([]int, len(fields))
	for i, f := range fields {
		v, err := parseIntField(f, line, what)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, formatErrorf(line, fmt.Sprintf("non-negative %s", what), "%d", v)
		}
		row[i] = v
	}
	return row, nil
}

// ManhattanDist is the L1 distance between two points.
func ManhattanDist(u, v []int) int {
	dx := u[0] - v[0]
	dy := u[1] - v[1]
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
