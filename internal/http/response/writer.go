package response

import (
	"raw_httpd/internal/http/header"
	"raw_httpd/types"
)

// Serialize renders the response in wire form:
//
//	<protocol> <code> <reason>\r\n
//	<Name>: <value>\r\n   (insertion order)
//	\r\n
//	<body>
func (r *Response) Serialize() []byte {
	return r.AppendTo(make([]byte, 0, r.size()))
}

func (r *Response) AppendTo(buf []byte) []byte {
	buf = append(buf, r.protocol()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Status.String()...)
	buf = append(buf, '\r', '\n')
	buf = header.AppendFields(buf, r.Headers)
	buf = append(buf, '\r', '\n')
	buf = append(buf, r.Body...)
	return buf
}

func (r *Response) protocol() string {
	if r.Protocol == "" {
		return string(types.HTTP11)
	}
	return string(r.Protocol)
}

func (r *Response) size() int {
	size := len(r.protocol()) + 1 + len(r.Status.String()) + 2
	for _, f := range r.Headers {
		size += len(f.String()) + 2
	}
	return size + 2 + len(r.Body)
}
