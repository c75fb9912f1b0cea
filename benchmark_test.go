package markin

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func mustReadSample(b *testing.B, path string) string {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func BenchmarkCompileFeatures(b *testing.B) {
	src := mustReadSample(b, "testdata/features.mi")
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	for i := 0; i < b.N; i++ {
		_ = Compile(src)
	}
}

func BenchmarkCompileLarge(b *testing.B) {
	src := strings.Repeat(mustReadSample(b, "testdata/features.mi")+"\n", 200)
	b.ReportAllocs()
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compile(src)
	}
}

func BenchmarkRenderStandalone(b *testing.B) {
	data := []byte(mustReadSample(b, "testdata/features.mi"))
	reader := bytes.NewReader(data)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reader.Reset(data)
		_ = Render(RenderRequest{
			Reader:      reader,
			Writer:      io.Discard,
			FrontMatter: true,
			Standalone:  true,
		})
	}
}
