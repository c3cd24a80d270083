package header

import (
	"strconv"
	"strings"
)

const (
	ContentTypeName   = "Content-Type"
	ContentLengthName = "Content-Length"
	UserAgentName     = "User-Agent"
)

// Field is one header line. Name is empty for a line that carries no colon.
type Field struct {
	Name  string
	Value string
	raw   string
}

func NewField(name, value string) Field {
	return Field{Name: name, Value: value}
}

func ContentType(value string) Field {
	return NewField(ContentTypeName, value)
}

func ContentLength(n int) Field {
	return NewField(ContentLengthName, strconv.Itoa(n))
}

// String renders the field without its line terminator.
func (f Field) String() string {
	if f.raw != "" {
		return f.raw
	}
	if f.Name == "" {
		return f.Value
	}
	return f.Name + ": " + f.Value
}

// Fields is an ordered header block with a case-insensitive name index.
// The index points at the first field carrying a given name.
type Fields struct {
	fields []Field
	index  map[string]int
}

func New() *Fields {
	return &Fields{index: make(map[string]int, 8)}
}

func (h *Fields) Add(name, value string) {
	h.add(Field{Name: name, Value: value})
}

func (h *Fields) add(f Field) {
	if f.Name != "" {
		key := strings.ToLower(f.Name)
		if _, ok := h.index[key]; !ok {
			h.index[key] = len(h.fields)
		}
	}
	h.fields = append(h.fields, f)
}

func (h *Fields) Lookup(name string) (string, bool) {
	if h == nil {
		return "", false
	}
	i, ok := h.index[strings.ToLower(name)]
	if !ok {
		return "", false
	}
	return h.fields[i].Value, true
}

func (h *Fields) Value(name string) string {
	v, _ := h.Lookup(name)
	return v
}

func (h *Fields) Len() int {
	if h == nil {
		return 0
	}
	return len(h.fields)
}

func (h *Fields) Fields() []Field {
	if h == nil {
		return nil
	}
	out := make([]Field, len(h.fields))
	copy(out, h.fields)
	return out
}

// Lines returns the header lines as they were received.
func (h *Fields) Lines() []string {
	if h == nil {
		return nil
	}
	lines := make([]string, len(h.fields))
	for i, f := range h.fields {
		lines[i] = f.String()
	}
	return lines
}

func (h *Fields) AppendTo(buf []byte) []byte {
	if h == nil {
		return buf
	}
	return AppendFields(buf, h.fields)
}
