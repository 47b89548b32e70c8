// Package storage provides the key-value persistence layer backing every
// store in the application. Values are whole-collection JSON blobs under
// fixed string keys; there is no schema versioning or partial update.
package storage

import (
	"encoding/json"
	"log"
)

// KV is a synchronous string key-value store.
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Gateway wraps a KV with JSON encoding at the boundary. Reads fail soft:
// an absent key, a backend error, or corrupt JSON leaves the destination
// untouched and logs the problem, so callers always see their empty default.
type Gateway struct {
	kv     KV
	logger *log.Logger
}

func NewGateway(kv KV, logger *log.Logger) *Gateway {
	return &Gateway{kv: kv, logger: logger}
}

// Read decodes the value stored under key into dest. dest must be a pointer.
func (g *Gateway) Read(key string, dest any) {
	raw, ok, err := g.kv.Get(key)
	if err != nil {
		g.logger.Printf("storage: read %q: %v", key, err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		g.logger.Printf("storage: decode %q: %v", key, err)
	}
}

// Write serializes v and stores it under key. Writes are assumed to
// succeed; a backend error is logged, not returned.
func (g *Gateway) Write(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		g.logger.Printf("storage: encode %q: %v", key, err)
		return
	}
	if err := g.kv.Set(key, string(raw)); err != nil {
		g.logger.Printf("storage: write %q: %v", key, err)
	}
}

// ReadString returns the raw string stored under key. The session pointer
// is stored unencoded, so it bypasses the JSON boundary.
func (g *Gateway) ReadString(key string) (string, bool) {
	raw, ok, err := g.kv.Get(key)
	if err != nil {
		g.logger.Printf("storage: read %q: %v", key, err)
		return "", false
	}
	return raw, ok
}

func (g *Gateway) WriteString(key, value string) {
	if err := g.kv.Set(key, value); err != nil {
		g.logger.Printf("storage: write %q: %v", key, err)
	}
}

func (g *Gateway) Remove(key string) {
	if err := g.kv.Remove(key); err != nil {
		g.logger.Printf("storage: remove %q: %v", key, err)
	}
}
