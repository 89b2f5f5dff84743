package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// Encode serializes a grid as run-length "value:count" tokens joined by
// semicolons, scanning in row-major order. An empty grid encodes to the
// empty string. The encoding is the storage format for presets; the
// grid shape travels separately.
func Encode(g *Grid) string {
	if len(g.Cells) == 0 {
		return ""
	}
	var sb strings.Builder
	last := g.Cells[0]
	count := 1
	flush := func() {
		if sb.Len() > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(int(last)))
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(count))
	}
	for _, v := range g.Cells[1:] {
		if v == last {
			count++
			continue
		}
		flush()
		last = v
		count = 1
	}
	flush()
	return sb.String()
}

// Decode reverses Encode into a grid of the given shape. The empty
// string decodes to an all-zero grid. A string whose runs do not sum to
// rows*cols, or with an unparsable token, is ErrMalformedEncoding.
func Decode(s string, rows, cols int) (*Grid, error) {
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return g, nil
	}
	i := 0
	for _, token := range strings.Split(s, ";") {
		value, count, err := parseRun(token)
		if err != nil {
			return nil, err
		}
		if i+count > len(g.Cells) {
			return nil, fmt.Errorf("%w: runs exceed %d cells", ErrMalformedEncoding, len(g.Cells))
		}
		for n := 0; n < count; n++ {
			g.Cells[i] = value
			i++
		}
	}
	if i != len(g.Cells) {
		return nil, fmt.Errorf("%w: runs cover %d of %d cells", ErrMalformedEncoding, i, len(g.Cells))
	}
	return g, nil
}

func parseRun(token string) (uint8, int, error) {
	value, countStr, ok := strings.Cut(token, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: token %q", ErrMalformedEncoding, token)
	}
	v, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: value in token %q", ErrMalformedEncoding, token)
	}
	count, err := strconv.Atoi(countStr)
	if err != nil || count <= 0 {
		return 0, 0, fmt.Errorf("%w: count in token %q", ErrMalformedEncoding, token)
	}
	return uint8(v), count, nil
}
