package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanList(t *testing.T) {
	got := CleanList([]string{" us", "", "de ", "  "})
	if len(got) != 2 || got[0] != "us" || got[1] != "de" {
		t.Fatalf("CleanList() = %q, want [us de]", got)
	}
}

func TestLowerAll(t *testing.T) {
	got := LowerAll([]string{"US", "In"})
	if got[0] != "us" || got[1] != "in" {
		t.Fatalf("LowerAll() = %q", got)
	}
}

func TestFileLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	l := NewFileLock(path)

	if err := l.Lock(); err != nil {
		t.Fatalf("Lock() error = %v", err)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("lock file missing: %v", err)
	}
	if err := l.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("lock file removed by Unlock: %v", err)
	}

	other := NewFileLock(path)
	if err := other.Lock(); err != nil {
		t.Fatalf("Lock() after Unlock error = %v", err)
	}
	if err := other.Unlock(); err != nil {
		t.Fatalf("Unlock() error = %v", err)
	}
}
