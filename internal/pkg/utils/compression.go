package utils

import (
	"bytes"
	"compress/gzip"
	"embrew-service/internal/pkg/constvars"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/brotli"
)

var ErrBodyTooLarge = errors.New("body exceeds the size limit")

// ReadLimited reads r to the end, failing with ErrBodyTooLarge past maxSize bytes.
// A maxSize <= 0 reads without limit.
func ReadLimited(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		return io.ReadAll(r)
	}
	body, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > maxSize {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// DecodeBody undoes the Content-Encoding of an upstream body. The decoded size is capped at
// maxSize bytes, see ReadLimited.
func DecodeBody(encoding string, body []byte, maxSize int64) ([]byte, error) {
	switch normalizeEncoding(encoding) {
	case "", constvars.EncodingIdentity:
		if maxSize > 0 && int64(len(body)) > maxSize {
			return nil, ErrBodyTooLarge
		}
		return body, nil
	case constvars.EncodingBrotli:
		return ReadLimited(brotli.NewReader(bytes.NewReader(body)), maxSize)
	case constvars.EncodingGzip:
		gr, err := gzip.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		defer gr.Close()
		return ReadLimited(gr, maxSize)
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// EncodeBody compresses body with the given encoding, identity returns it untouched.
func EncodeBody(encoding string, body []byte) ([]byte, error) {
	var buf bytes.Buffer
	switch normalizeEncoding(encoding) {
	case "", constvars.EncodingIdentity:
		return body, nil
	case constvars.EncodingBrotli:
		bw := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
		if _, err := bw.Write(body); err != nil {
			_ = bw.Close()
			return nil, err
		}
		if err := bw.Close(); err != nil {
			return nil, err
		}
	case constvars.EncodingGzip:
		gw := gzip.NewWriter(&buf)
		if _, err := gw.Write(body); err != nil {
			_ = gw.Close()
			return nil, err
		}
		if err := gw.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
	return buf.Bytes(), nil
}

// NegotiateEncoding picks br over gzip from an Accept-Encoding header, honouring q=0.
func NegotiateEncoding(acceptEncoding string) string {
	accepted := make(map[string]bool)
	for _, part := range strings.Split(acceptEncoding, ",") {
		fields := strings.Split(part, ";")
		name := normalizeEncoding(fields[0])
		if name == "" {
			continue
		}
		enabled := true
		for _, param := range fields[1:] {
			param = strings.TrimSpace(param)
			if !strings.HasPrefix(param, "q=") {
				continue
			}
			q, err := strconv.ParseFloat(strings.TrimPrefix(param, "q="), 64)
			if err == nil && q == 0 {
				enabled = false
			}
		}
		accepted[name] = enabled
	}

	switch {
	case accepted[constvars.EncodingBrotli]:
		return constvars.EncodingBrotli
	case accepted[constvars.EncodingGzip]:
		return constvars.EncodingGzip
	default:
		return constvars.EncodingIdentity
	}
}

func normalizeEncoding(encoding string) string {
	return strings.ToLower(strings.TrimSpace(encoding))
}
