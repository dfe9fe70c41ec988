package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBody(t *testing.T) {
	body := []byte("<html><body><main><div>Closed Today</div></main></body></html>")

	for _, encoding := range []string{"br", "gzip", "identity", ""} {
		t.Run("encoding "+encoding, func(t *testing.T) {
			encoded, err := EncodeBody(encoding, body)
			require.NoError(t, err)

			decoded, err := DecodeBody(encoding, encoded, 1<<20)
			require.NoError(t, err)
			assert.Equal(t, body, decoded)
		})
	}
}

func TestDecodeBody_Unsupported(t *testing.T) {
	_, err := DecodeBody("compress", []byte("x"), 0)
	assert.Error(t, err)
}

func TestDecodeBody_CorruptGzip(t *testing.T) {
	_, err := DecodeBody("gzip", []byte("not gzip at all"), 0)
	assert.Error(t, err)
}

func TestDecodeBody_SizeLimit(t *testing.T) {
	// compresses to a few hundred bytes
	body := bytes.Repeat([]byte("<p>Closed Today</p>"), 64*1024)

	for _, encoding := range []string{"br", "gzip", "identity"} {
		t.Run("encoding "+encoding, func(t *testing.T) {
			encoded, err := EncodeBody(encoding, body)
			require.NoError(t, err)

			_, err = DecodeBody(encoding, encoded, 1024)
			assert.ErrorIs(t, err, ErrBodyTooLarge)

			decoded, err := DecodeBody(encoding, encoded, int64(len(body)))
			require.NoError(t, err)
			assert.Len(t, decoded, len(body))
		})
	}
}

func TestReadLimited(t *testing.T) {
	body, err := ReadLimited(strings.NewReader("12345"), 5)
	require.NoError(t, err)
	assert.Equal(t, "12345", string(body))

	_, err = ReadLimited(strings.NewReader("123456"), 5)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	body, err = ReadLimited(strings.NewReader("123456"), 0)
	require.NoError(t, err)
	assert.Equal(t, "123456", string(body))
}

func TestNegotiateEncoding(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"", "identity"},
		{"gzip", "gzip"},
		{"gzip, deflate, br", "br"},
		{"br;q=0, gzip", "gzip"},
		{"BR", "br"},
		{"deflate", "identity"},
		{"gzip;q=0", "identity"},
		{"gzip;q=0.5, br;q=0.1", "br"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.expected, NegotiateEncoding(tt.header))
		})
	}
}
