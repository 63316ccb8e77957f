package project

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
)

// Digest is a fixed 256-bit content hash.
type Digest [32]byte

// DigestBytes hashes data.
func DigestBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// DigestFile hashes the file at path. ok is false when the file does not exist.
func DigestFile(path string) (d Digest, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Digest{}, false, nil
		}
		return Digest{}, false, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return DigestBytes(data), true, nil
}

// Combine builds a fingerprint H(content || part1 || part2 ...).
// Part order must be deterministic.
func Combine(content Digest, parts ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// Short returns the first 12 hex digits, enough for log lines.
func (d Digest) Short() string {
	return fmt.Sprintf("%x", d[:6])
}
