package filesystem

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"
)

func TestFSProvider(t *testing.T) {
	fsys := fstest.MapFS{
		"csv/days.csv": {Data: []byte("day,week_day\n1,Sunday\n")},
	}
	p := NewFSProvider(fsys, "csv")

	if got := p.ResourcePath("DAYS"); got != "csv/days.csv" {
		t.Errorf("ResourcePath = %q", got)
	}

	rc, err := p.OpenResource("Days")
	if err != nil {
		t.Fatalf("OpenResource failed: %v", err)
	}
	data, err := io.ReadAll(rc)
	rc.Close()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if string(data) != "day,week_day\n1,Sunday\n" {
		t.Errorf("unexpected content %q", data)
	}

	if _, err := p.OpenResource("product"); !errors.Is(err, common.ErrResourceNotFound) {
		t.Errorf("expected ErrResourceNotFound, got %v", err)
	}
}

func TestDirDriver(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "days.csv"), []byte("day\n1\n"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	p, err := generators.Open("dir", dir, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	rc, err := p.OpenResource("days")
	if err != nil {
		t.Fatalf("OpenResource failed: %v", err)
	}
	rc.Close()

	if _, err := generators.Open("dir", filepath.Join(dir, "days.csv"), nil); err == nil {
		t.Error("expected error opening a file as a directory")
	}
	if _, err := generators.Open("dir", filepath.Join(dir, "missing"), nil); err == nil {
		t.Error("expected error for missing directory")
	}
}
