package catalog

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
	"hash"
	"io"
)

// Supported subresource-integrity algorithms.
const (
	AlgoSHA256 = "sha256"
	AlgoSHA384 = "sha384"
	AlgoSHA512 = "sha512"
)

// Integrity computes an SRI digest ("<algo>-<base64>") of everything read from r.
func Integrity(r io.Reader, algo string) (string, error) {
	var h hash.Hash
	switch algo {
	case AlgoSHA256:
		h = sha256.New()
	case AlgoSHA384:
		h = sha512.New384()
	case AlgoSHA512:
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported integrity algorithm %q (want sha256, sha384 or sha512)", algo)
	}
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hashing content: %w", err)
	}
	return algo + "-" + base64.StdEncoding.EncodeToString(h.Sum(nil)), nil
}
