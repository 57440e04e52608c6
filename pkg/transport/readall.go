package transport

import (
	"fmt"
	"io"
)

// ReadAll reads exactly sz bytes from t by calling Read until the request is
// satisfied. Partial reads are accumulated in order. If a Read yields no
// bytes before sz is reached, ReadAll fails with KindEndOfFile wrapping
// io.ErrUnexpectedEOF. Errors from Read are returned unchanged.
//
// sz <= 0 returns an empty slice without touching t.
func ReadAll(t Transport, sz int) ([]byte, error) {
	if sz <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, 0, sz)
	for len(buf) < sz {
		chunk, err := t.Read(sz - len(buf))
		if err != nil {
			return nil, err
		}
		if len(chunk) == 0 {
			return nil, WrapError(KindEndOfFile,
				fmt.Sprintf("end of stream after %d of %d bytes", len(buf), sz),
				io.ErrUnexpectedEOF)
		}
		buf = append(buf, chunk...)
	}
	return buf, nil
}
