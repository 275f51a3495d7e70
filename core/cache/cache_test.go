package cache

import (
	"testing"
)

func TestNewCache(t *testing.T) {
	c := NewCache()
	if c == nil {
		t.Fatal("NewCache returned nil")
	}
}

func TestSet_Get(t *testing.T) {
	c := NewCache()
	c.Set("test-set-get", "val", 0)
	got, ok := c.Get("test-set-get")
	if !ok {
		t.Fatal("Get: want true")
	}
	if got != "val" {
		t.Errorf("Get = %v, want val", got)
	}
}

func TestGet_Missing(t *testing.T) {
	c := NewCache()
	_, ok := c.Get("nonexistent-key-xyz")
	if ok {
		t.Error("Get missing key: want false")
	}
}

func TestDelete(t *testing.T) {
	c := NewCache()
	c.Set("test-delete", "x", 0)
	c.Delete("test-delete")
	if _, ok := c.Get("test-delete"); ok {
		t.Error("Delete: key should be gone")
	}
}

func TestReset(t *testing.T) {
	c := NewCache()
	c.Set("r1", 1, 0)
	c.Set("r2", 2, 0)
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", c.Len())
	}
	if _, ok := c.Get("r1"); ok {
		t.Error("Reset: r1 should be gone")
	}
}

func TestSet_SameKeyReturnsLatest(t *testing.T) {
	c := NewCache()
	c.Set("k", "old", 0)
	c.Set("k", "new", 0)
	got, _ := c.Get("k")
	if got != "new" {
		t.Errorf("Get = %v, want new", got)
	}
}
