package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"hash"
	"sync"
)

// PayloadHashHeader carries the hex HMAC-SHA256 of a vault entry payload on
// create and update requests.
const PayloadHashHeader = "X-Payload-Hash"

// hasherPool holds HMAC-SHA256 instances keyed with the request-integrity
// key. It must be initialised via InitHasherPool before Hash is called.
var (
	hasherPool sync.Pool
	hashingOn  bool
)

// InitHasherPool (re)initialises the pool with hashKey. An empty key turns
// request-integrity hashing off.
func InitHasherPool(hashKey string) {
	hashingOn = hashKey != ""
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(hashKey))
		},
	}
}

// HashingEnabled reports whether InitHasherPool was given a non-empty key.
func HashingEnabled() bool {
	return hashingOn
}

// Hash computes an HMAC-SHA256 over data with a pooled hasher.
func Hash(data []byte) []byte {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return sum
}

// PayloadHash marshals v to JSON and returns the hex-encoded Hash of it.
// Server and client both hash the Go encoding of the same struct, so field
// order is stable.
func PayloadHash(v any) (string, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(Hash(payload)), nil
}

// EqualHashes compares two hex digests in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}

// HashString computes a one-off hex HMAC-SHA256 of data under hashKey
// without touching the pool.
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}
