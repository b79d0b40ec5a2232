package codec

import (
	"github.com/klauspost/compress/gzip"
)

func NewGZIP() Codec {
	return newBaseCodec("gzip", newBaseInstance(func() writeResetter {
		return gzip.NewWriter(nil)
	}))
}
