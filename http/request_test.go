package http

import (
	"testing"

	"github.com/indigo-web/minihttp/kv"
	"github.com/stretchr/testify/require"
)

func TestRequest_Segment(t *testing.T) {
	request := NewRequest(kv.New())

	tcs := []struct {
		Path    string
		Index   int
		Want    string
		WantErr bool
	}{
		{"/echo/abc", 0, "", false},
		{"/echo/abc", 1, "echo", false},
		{"/echo/abc", 2, "abc", false},
		{"/echo/abc/def", 2, "abc", false},
		{"/echo/", 2, "", false},
		{"/echo", 2, "", true},
		{"/files/a%20b.txt", 2, "a%20b.txt", false},
		{"/", 1, "", false},
		{"/", -1, "", true},
	}

	for _, tc := range tcs {
		request.Path = tc.Path
		segment, found := request.Segment(tc.Index)
		require.Equal(t, !tc.WantErr, found, tc.Path)
		require.Equal(t, tc.Want, segment, tc.Path)
	}
}
