package zip

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/darianmavgo/foodmart/generators"
	"github.com/darianmavgo/foodmart/generators/common"
)

func writeArchive(t *testing.T, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foodmart-data.jar")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create archive: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range entries {
		ew, err := w.Create(name)
		if err != nil {
			t.Fatalf("failed to create entry %s: %v", name, err)
		}
		if _, err := io.WriteString(ew, content); err != nil {
			t.Fatalf("failed to write entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to finish archive: %v", err)
	}
	return path
}

func TestZipProvider(t *testing.T) {
	path := writeArchive(t, map[string]string{
		"csv/days.csv":   "day,week_day\n1,Sunday\n",
		"other/days.csv": "wrong\n",
	})

	p, err := generators.Open("zip", path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer p.(io.Closer).Close()

	rc, err := p.OpenResource("days")
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

func TestZipProviderPrefix(t *testing.T) {
	path := writeArchive(t, map[string]string{"days.csv": "day\n1\n"})

	p, err := NewZipProvider(path, &common.ProviderConfig{Prefix: "."})
	if err != nil {
		t.Fatalf("NewZipProvider failed: %v", err)
	}
	defer p.Close()

	rc, err := p.OpenResource("days")
	if err != nil {
		t.Fatalf("OpenResource failed: %v", err)
	}
	rc.Close()
}

func TestZipProviderNotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zip")
	if err := os.WriteFile(path, []byte("not a zip"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewZipProvider(path, nil); err == nil {
		t.Error("expected error for invalid archive")
	}
}
