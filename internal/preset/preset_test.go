package preset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefault(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	names := cat.Names()
	want := []string{"default", "strong", "blitz", "nodes"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if _, ok := cat.Get("missing"); ok {
		t.Fatal("found a preset that does not exist")
	}
}

func TestPairOrderSurvivesDecoding(t *testing.T) {
	cat, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	p, ok := cat.Get("blitz")
	if !ok {
		t.Fatal("blitz preset missing")
	}

	wantGo := []Pair{
		{Key: "wtime", Value: "60000"},
		{Key: "winc", Value: "0"},
		{Key: "btime", Value: "60000"},
		{Key: "binc", Value: "0"},
	}
	if len(p.Go) != len(wantGo) {
		t.Fatalf("go pairs = %v", p.Go)
	}
	for i := range wantGo {
		if p.Go[i] != wantGo[i] {
			t.Fatalf("go[%d] = %+v, want %+v", i, p.Go[i], wantGo[i])
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	raw := `
presets:
  quick:
    options:
      Hash: 8
    go:
      movetime: 50
`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	p, ok := cat.Get("quick")
	if !ok {
		t.Fatal("quick preset missing")
	}
	if len(p.Options) != 1 || p.Options[0] != (Pair{Key: "Hash", Value: "8"}) {
		t.Fatalf("options = %v", p.Options)
	}
}

func TestParseCatalogErrors(t *testing.T) {
	if _, err := parseCatalog([]byte("not: [valid")); err == nil {
		t.Fatal("expected parse error")
	}
	if _, err := parseCatalog([]byte("unrelated: 1")); err == nil {
		t.Fatal("expected missing-presets error")
	}
	if _, err := parseCatalog([]byte("presets:\n  x:\n    options:\n      nested:\n        deep: 1\n")); err == nil {
		t.Fatal("expected non-scalar value error")
	}
}
