package caching

import (
	"bytes"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	hash := "abc123"
	payload := []byte(`{"title": "Sample", "outline": []}`)

	if _, ok := cache.Get(hash); ok {
		t.Fatal("Get() hit before Set()")
	}

	if err := cache.Set(hash, payload); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	got, ok := cache.Get(hash)
	if !ok {
		t.Fatal("Get() missed after Set()")
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("Get() = %q, want %q", got, payload)
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Nanosecond)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	if err := cache.Set("expired", []byte("data")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, ok := cache.Get("expired"); ok {
		t.Error("Get() returned an expired entry")
	}
}

func TestCacheKeysAreIndependent(t *testing.T) {
	cache, err := NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() error: %v", err)
	}

	if err := cache.Set("hash-a", []byte("a")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cache.Set("hash-b", []byte("b")); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	a, _ := cache.Get("hash-a")
	b, _ := cache.Get("hash-b")
	if string(a) != "a" || string(b) != "b" {
		t.Errorf("cross-key interference: a=%q b=%q", a, b)
	}
}
