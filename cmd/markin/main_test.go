package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func readAll(t *testing.T, args ...string) string {
	t.Helper()
	reader, err := readInputs(context.Background(), args)
	if err != nil {
		t.Fatalf("readInputs %v: %v", args, err)
	}
	buf, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(buf)
}

func TestReadInputsFileAndURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.mi")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if got := readAll(t, path); got != "hello" {
		t.Fatalf("unexpected file content: %q", got)
	}
	if got := readAll(t, "file://"+path); got != "hello" {
		t.Fatalf("unexpected file URL content: %q", got)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("remote"))
	}))
	defer srv.Close()
	if got := readAll(t, srv.URL+"/doc"); got != "remote" {
		t.Fatalf("unexpected http content: %q", got)
	}
	if _, err := readInputs(context.Background(), []string{srv.URL + "/missing"}); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestReadInputsSeparatesFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for name, content := range map[string]string{"a.mi": "one", "b.mi": "two\n", "c.mi": "three"} {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	if got := readAll(t, paths...); got != "one\ntwo\nthree" {
		t.Fatalf("unexpected concatenated content: %q", got)
	}
}

func TestReadInputsRejectsBadArguments(t *testing.T) {
	for _, arg := range []string{"  ", filepath.Join(t.TempDir(), "absent.mi")} {
		if _, err := readInputs(context.Background(), []string{arg}); err == nil {
			t.Fatalf("expected error for %q", arg)
		}
	}
}

func TestRunCheck(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("# Hi\n\n* a\n"), &out, runConfig{check: true, frontMatter: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "<h1>Hi</h1>\n<ul>\n<li>a</li>\n</ul>" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunStandalone(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader("---\ntitle: Doc\n---\nbody\n"), &out, runConfig{standalone: true, frontMatter: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "<title>Doc</title>") || !strings.Contains(out.String(), "<p>body</p>") {
		t.Fatalf("unexpected page %q", out.String())
	}
}

func TestRunKeepsUnderlineThatLooksLikeFrontMatter(t *testing.T) {
	var out bytes.Buffer
	src := "---\nAgenda: 10:00 start\nTalk about things\n---\nbody\n"
	if err := run(strings.NewReader(src), &out, runConfig{frontMatter: true, check: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Agenda: 10:00 start") {
		t.Fatalf("expected the block in the output, got %q", out.String())
	}
}

func TestCreateOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.html")
	w, closer, err := createOutput(path)
	if err != nil {
		t.Fatalf("createOutput: %v", err)
	}
	if _, err := io.WriteString(w, "<p>x</p>"); err != nil {
		t.Fatalf("write: %v", err)
	}
	_ = closer.Close()
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<p>x</p>" {
		t.Fatalf("unexpected output file %q: %v", data, err)
	}
}

func TestResolveWidthOverride(t *testing.T) {
	if got := resolveWidth(42, os.Stderr); got != 42 {
		t.Fatalf("expected explicit width, got %d", got)
	}
}
