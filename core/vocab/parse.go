package vocab

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/wordsiv/core"
)

var (
	countedLine = regexp.MustCompile(`^[\p{L}\p{M}]+\s+\d+$`)
	bareLine    = regexp.MustCompile(`^[\p{L}\p{M}]+$`)
)

// lineFormat is the format of vocabulary data, as sniffed from its first line.
type lineFormat int

const (
	unknownFormat lineFormat = iota
	countedFormat            // word<whitespace>count
	bareFormat               // word
)

func (f lineFormat) String() string {
	switch f {
	case countedFormat:
		return "word-count"
	case bareFormat:
		return "word-list"
	}
	return "unknown"
}

// sniffFormat inspects the first non-empty line of data. The remaining lines
// are not checked.
func sniffFormat(data string) (lineFormat, string) {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if countedLine.MatchString(line) {
			return countedFormat, line
		} else if bareLine.MatchString(line) {
			return bareFormat, line
		}
		return unknownFormat, line
	}
	return unknownFormat, ""
}

// ParseTable parses vocabulary data into a table.
//
// If the first line carries a count, every line is expected to do so. If the
// first line is a bare word, every line is assigned a count of 1. Any other
// first line is a format error. Blank lines are skipped.
func ParseTable(data string) (*Table, error) {
	format, first := sniffFormat(data)
	tracer().Debugf("vocabulary data has format %s", format)
	if format == unknownFormat {
		return nil, core.WrapError(core.ErrVocabFormat, core.EFORMAT,
			"should be a TSV file with words and counts as columns, or a newline-delimited list of words; first line is %q",
			first)
	}
	lines := strings.Split(data, "\n")
	entries := make([]WordCount, 0, len(lines))
	for n, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if format == bareFormat {
			entries = append(entries, WordCount{Word: fields[0], Count: 1})
			continue
		}
		if len(fields) < 2 {
			return nil, core.WrapError(core.ErrVocabFormat, core.EFORMAT,
				"line %d: missing count for %q", n+1, fields[0])
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 0 {
			return nil, core.WrapError(core.ErrVocabFormat, core.EFORMAT,
				"line %d: count %q for %q is not a non-negative integer", n+1, fields[1], fields[0])
		}
		entries = append(entries, WordCount{Word: fields[0], Count: count})
	}
	return NewTable(entries), nil
}
