package codec

import (
	"bytes"
	"io"
	"strings"
)

type Codec interface {
	// Token returns a coding token associated with the codec itself.
	Token() string
	New() Instance
}

// Instance is a reusable compressor. It must be reset onto a destination before every use
// and closed after the last write, so the container gets finalized.
type Instance interface {
	io.WriteCloser
	ResetCompressor(w io.Writer)
}

// Encode runs the whole payload through a fresh instance of the codec and returns
// the encoded bytes.
func Encode(c Codec, payload []byte) ([]byte, error) {
	var buff bytes.Buffer

	inst := c.New()
	inst.ResetCompressor(&buff)

	if _, err := inst.Write(payload); err != nil {
		return nil, err
	}

	if err := inst.Close(); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// Accepts reports whether the Accept-Encoding header value mentions the token. The check
// is a plain substring containment, quality values aren't taken into account.
func Accepts(acceptEncoding, token string) bool {
	return len(token) > 0 && strings.Contains(acceptEncoding, token)
}

// Negotiate returns the first codec whose token is mentioned in the Accept-Encoding header.
// If none is, identity is returned.
func Negotiate(acceptEncoding string, codecs ...Codec) Codec {
	for _, c := range codecs {
		if Accepts(acceptEncoding, c.Token()) {
			return c
		}
	}

	return NewIdentity()
}
