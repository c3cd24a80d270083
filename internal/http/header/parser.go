package header

import "strings"

// Parse builds Fields from raw header lines. Lines without a colon are kept
// verbatim as opaque fields.
func Parse(lines []string) *Fields {
	h := &Fields{
		fields: make([]Field, 0, len(lines)),
		index:  make(map[string]int, len(lines)),
	}
	for _, line := range lines {
		h.add(parseLine(line))
	}
	return h
}

func parseLine(line string) Field {
	colonIdx := strings.IndexByte(line, ':')
	if colonIdx == -1 {
		return Field{raw: line}
	}
	return Field{
		Name:  line[:colonIdx],
		Value: strings.TrimSpace(line[colonIdx+1:]),
		raw:   line,
	}
}

func AppendFields(buf []byte, fields []Field) []byte {
	for _, f := range fields {
		buf = append(buf, f.String()...)
		buf = append(buf, '\r', '\n')
	}
	return buf
}
