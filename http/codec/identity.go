package codec

import (
	"io"
)

// IdentityToken is the token of the passthrough codec.
const IdentityToken = "identity"

// NewIdentity returns the passthrough codec. Both plain text and binary payloads go
// through it untouched.
func NewIdentity() Codec {
	return newBaseCodec(IdentityToken, newBaseInstance(func() writeResetter {
		return new(identityWriter)
	}))
}

type identityWriter struct {
	dst io.Writer
}

func (i *identityWriter) Reset(dst io.Writer) {
	i.dst = dst
}

func (i *identityWriter) Write(p []byte) (int, error) {
	return i.dst.Write(p)
}

func (i *identityWriter) Close() error {
	return nil
}
