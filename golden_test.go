package markin

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGoldenOutputs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.mi"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no markup files found under testdata")
	}
	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read %s: %v", path, err)
			}
			goldenPath := strings.TrimSuffix(path, ".mi") + ".golden"
			want, err := os.ReadFile(goldenPath)
			if err != nil {
				t.Fatalf("read %s (run go run ./cmd/gen-golden): %v", goldenPath, err)
			}
			got := Compile(NormalizeLineEndings(string(src)))
			if got != string(want) {
				t.Fatalf("%s mismatch\n got: %q\nwant: %q", path, got, string(want))
			}
			if err := CheckMarkup(strings.NewReader(got)); err != nil {
				t.Fatalf("%s: %v", path, err)
			}
		})
	}
}
