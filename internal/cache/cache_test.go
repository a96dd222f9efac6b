package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"tfdsearch/internal/api"
)

func TestWriteReadRoundTrip(t *testing.T) {
	c := New(t.TempDir())
	payload := []byte(`[{"weapon_id":"1","weapon_name":"Tamer"}]`)

	if err := c.Write(api.ResourceWeapon, payload); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !c.Exists(api.ResourceWeapon) {
		t.Error("Exists = false after Write")
	}

	got, err := c.Read(api.ResourceWeapon)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Read = %s, want %s", got, payload)
	}
}

func TestReadMiss(t *testing.T) {
	c := New(t.TempDir())
	if _, err := c.Read(api.ResourceStat); !errors.Is(err, ErrCacheMiss) {
		t.Errorf("error = %v, want ErrCacheMiss", err)
	}
}

func TestWriteCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	c := New(dir)
	if err := c.Write(api.ResourceModule, []byte("[]")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "module.json")); err != nil {
		t.Errorf("blob not created: %v", err)
	}
}

func TestWriteOverwrites(t *testing.T) {
	c := New(t.TempDir())
	if err := c.Write(api.ResourceStat, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := c.Write(api.ResourceStat, []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, err := c.Read(api.ResourceStat)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("Read = %s, want new", got)
	}
	// No temp files left behind.
	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("cache dir has %d entries, want 1", len(entries))
	}
}

func TestClear(t *testing.T) {
	c := New(t.TempDir())
	for _, res := range api.Resources {
		if err := c.Write(res, []byte("[]")); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, res := range api.Resources {
		if c.Exists(res) {
			t.Errorf("%s still cached after Clear", res)
		}
	}
	// Clearing an empty cache is not an error.
	if err := c.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}
