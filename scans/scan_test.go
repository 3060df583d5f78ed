package scans

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/moneytech/wrenalyzer/configs"
	"github.com/moneytech/wrenalyzer/wren"
	"github.com/moneytech/wrenalyzer/wrenconfigs"
	"github.com/reusee/dscope"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func emptyLoader() configs.Loader {
	return configs.NewLoader(nil, "")
}

func TestScanFile(t *testing.T) {
	result := ScanFile(wren.NewSourceFile("test.wren", "var x#"))
	kinds := make([]wren.TokenKind, 0, len(result.Tokens))
	for _, token := range result.Tokens {
		kinds = append(kinds, token.Kind)
	}
	want := []wren.TokenKind{
		wren.TokenVar,
		wren.TokenName,
		wren.TokenError,
		wren.TokenEOF,
	}
	if !slices.Equal(kinds, want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	if result.NumErrors != 1 {
		t.Fatalf("got %d errors", result.NumErrors)
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wren", "var x = 1\n")
	b := writeFile(t, dir, "b.wren", "class # {}\n")

	dscope.New(new(Module)).Fork(
		emptyLoader,
		func() Files {
			return Files{a, b}
		},
	).Call(func(scan Scan) {
		results, err := scan(t.Context())
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != 2 {
			t.Fatalf("got %d results", len(results))
		}

		// results in input order
		if results[0].File.Path != a {
			t.Fatalf("got %s", results[0].File.Path)
		}
		if results[1].File.Path != b {
			t.Fatalf("got %s", results[1].File.Path)
		}

		if results[0].NumErrors != 0 {
			t.Fatalf("got %d errors", results[0].NumErrors)
		}
		if results[1].NumErrors != 1 {
			t.Fatalf("got %d errors", results[1].NumErrors)
		}

		for _, result := range results {
			last := result.Tokens[len(result.Tokens)-1]
			if last.Kind != wren.TokenEOF {
				t.Fatalf("got %v", last.Kind)
			}
		}
	})
}

func TestSourceProviderWalk(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.wren", "var a\n")
	writeFile(t, dir, "sub/c.wren", "var c\n")
	writeFile(t, dir, "empty.wren", "")
	writeFile(t, dir, ".hidden.wren", "var hidden\n")
	writeFile(t, dir, "notes.txt", "not wren\n")
	// a name filter match that sniffs as binary must still be skipped
	writeFile(t, dir, "bin.wren", "\x89PNG\r\n\x1a\n0000000000000000")

	dscope.New(new(Module)).Fork(
		emptyLoader,
		func() Files {
			return Files{dir}
		},
		func() wrenconfigs.Match {
			return `\.wren$`
		},
	).Call(func(provider SourceProvider) {
		var paths []string
		for file, err := range provider.IterSources() {
			if err != nil {
				t.Fatal(err)
			}
			paths = append(paths, filepath.Base(file.Path))
		}
		slices.Sort(paths)
		want := []string{"a.wren", "c.wren", "empty.wren"}
		if !slices.Equal(paths, want) {
			t.Fatalf("got %v, want %v", paths, want)
		}
	})
}

func TestScanCanceled(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.wren", "var x\n")

	dscope.New(new(Module)).Fork(
		emptyLoader,
		func() Files {
			return Files{a}
		},
	).Call(func(scan Scan) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := scan(ctx)
		if err == nil {
			t.Fatal("should error")
		}
	})
}
