package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint is a content hash identifying a raw upload. Two byte-identical
// uploads share a fingerprint, so re-uploading the same file hits the
// normalization cache instead of re-running the pipeline.
type Fingerprint string

// NewFingerprint hashes raw upload bytes
func NewFingerprint(data []byte) Fingerprint {
	sum := sha256.Sum256(data)
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (f Fingerprint) String() string {
	return string(f)
}

// IsEmpty checks if the fingerprint is empty
func (f Fingerprint) IsEmpty() bool {
	return f == ""
}
