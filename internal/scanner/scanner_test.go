package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"locsum/internal/languages"
	"locsum/internal/linecount"
	"locsum/internal/model"
)

// writeFixtureFile 是测试辅助函数，用于在临时目录快速落地测试文件。
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file failed: %v", err)
	}
}

func newTestService(custom map[string]string, countUnknown bool, options Options, progress *bytes.Buffer) *Service {
	classifier := languages.NewClassifier(languages.NewRegistry(), custom, countUnknown)
	if progress == nil {
		return NewService(classifier, options, nil, nil)
	}
	return NewService(classifier, options, progress, nil)
}

// rowsByName 把汇总结果转换为 语言 → 行数，便于断言。
func rowsByName(result model.ScanResult) map[string]int64 {
	rows := make(map[string]int64, len(result.Languages))
	for _, row := range result.Languages {
		rows[row.Language] = row.Lines
	}
	return rows
}

// TestScanEndToEnd 验证 Rust 与 Python 文件在默认策略下的汇总结果。
func TestScanEndToEnd(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "a.rs"), strings.Join([]string{
		"fn main() {",
		"    println!(\"hi\");",
		"}",
	}, "\n"))
	writeFixtureFile(t, filepath.Join(tempDir, "b.py"), strings.Join([]string{
		"# x",
		"import os",
		"print(os.name)",
	}, "\n"))

	var progress bytes.Buffer
	service := newTestService(nil, false, Options{}, &progress)
	result, err := service.ScanPath(tempDir)
	require.NoError(t, err)

	require.Len(t, result.Languages, 2)
	require.Equal(t, "Python", result.Languages[0].Language)
	require.Equal(t, int64(2), result.Languages[0].Lines)
	require.Equal(t, "Rust", result.Languages[1].Language)
	require.Equal(t, int64(3), result.Languages[1].Lines)
	require.Equal(t, int64(2), result.Total.Files)

	require.Contains(t, progress.String(), "Counting "+filepath.Join(tempDir, "a.rs")+"...\n")
	require.Contains(t, progress.String(), "Counting "+filepath.Join(tempDir, "b.py")+"...\n")
}

// TestScanUnknownHandling 验证未知后缀、无后缀文件以及自定义映射的处理。
func TestScanUnknownHandling(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "Makefile"), "all:\n\tgo build ./...\n")
	writeFixtureFile(t, filepath.Join(tempDir, "build.zig"), "const std = @import(\"std\");\n")
	writeFixtureFile(t, filepath.Join(tempDir, "notes.adoc"), "= Title\ntext\n")

	service := newTestService(nil, false, Options{}, nil)
	result, err := service.ScanPath(tempDir)
	require.NoError(t, err)
	require.Empty(t, result.Languages)

	service = newTestService(nil, true, Options{}, nil)
	result, err = service.ScanPath(tempDir)
	require.NoError(t, err)
	require.Equal(t, map[string]int64{
		"Unknown (.zig)":  1,
		"Unknown (.adoc)": 2,
	}, rowsByName(result))

	custom := map[string]string{"zig": "Zig"}
	for _, countUnknown := range []bool{false, true} {
		service = newTestService(custom, countUnknown, Options{}, nil)
		result, err = service.ScanPath(tempDir)
		require.NoError(t, err)
		require.Equal(t, int64(1), rowsByName(result)["Zig"])
	}
}

// TestScanIgnoreDirs 验证被忽略目录在任意深度都会被跳过，兄弟目录仍然统计。
func TestScanIgnoreDirs(t *testing.T) {
	tempDir := t.TempDir()

	writeFixtureFile(t, filepath.Join(tempDir, "main.py"), "print(1)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "dep.py"), "print(2)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendor", "deep", "dep.py"), "print(3)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "pkg", "vendor", "nested.py"), "print(4)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "pkg", "lib.py"), "print(5)\n")
	writeFixtureFile(t, filepath.Join(tempDir, "vendored", "keep.py"), "print(6)\n")

	service := newTestService(nil, false, Options{IgnoreDirs: []string{"vendor"}}, nil)
	result, err := service.ScanPath(tempDir)
	require.NoError(t, err)

	require.Equal(t, map[string]int64{"Python": 3}, rowsByName(result))
	require.Equal(t, int64(3), result.Total.Files)
}

// TestScanPolicy 验证注释与空白策略会传递到行数统计。
func TestScanPolicy(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "main.js"), "// header\n\nconst x = 1;\n")

	tests := []struct {
		policy linecount.Policy
		want   int64
	}{
		{policy: linecount.Policy{}, want: 1},
		{policy: linecount.Policy{CountComments: true}, want: 2},
		{policy: linecount.Policy{CountWhitespace: true}, want: 2},
		{policy: linecount.Policy{CountComments: true, CountWhitespace: true}, want: 3},
	}

	for _, tt := range tests {
		service := newTestService(nil, false, Options{Policy: tt.policy}, nil)
		result, err := service.ScanPath(tempDir)
		require.NoError(t, err)
		require.Equal(t, tt.want, rowsByName(result)["JavaScript"], "policy %+v", tt.policy)
	}
}

// TestScanSkipsNonText 验证非 UTF-8 文件被跳过但扫描继续。
func TestScanSkipsNonText(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "ok.c"), "int main(void) { return 0; }\n")
	writeFixtureFile(t, filepath.Join(tempDir, "bad.c"), string([]byte{0xc3, 0x28, 0x0a}))

	var progress bytes.Buffer
	service := newTestService(nil, false, Options{}, &progress)
	result, err := service.ScanPath(tempDir)
	require.NoError(t, err)

	require.Equal(t, map[string]int64{"C": 1}, rowsByName(result))
	require.Equal(t, int64(1), result.Languages[0].Files)
	require.Len(t, result.Skipped, 1)
	require.Equal(t, filepath.Join(tempDir, "bad.c"), result.Skipped[0].Path)
	require.Contains(t, progress.String(), "bad.c...")
}

// TestScanIdempotent 验证对同一目录重复扫描得到一致结果。
func TestScanIdempotent(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"a.go.txt", "b.ts", "c/d.ts", "c/e.md", "f/g/h.yml"} {
		writeFixtureFile(t, filepath.Join(tempDir, name), "line one\nline two\n")
	}

	service := newTestService(nil, false, Options{}, nil)
	first, err := service.ScanPath(tempDir)
	require.NoError(t, err)
	second, err := service.ScanPath(tempDir)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

// TestScanRejectsInvalidRoot 验证空路径、缺失路径与文件路径都会返回错误。
func TestScanRejectsInvalidRoot(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "single.rs")
	writeFixtureFile(t, filePath, "fn main() {}\n")

	service := newTestService(nil, false, Options{}, nil)

	_, err := service.ScanPath("  ")
	require.Error(t, err)

	_, err = service.ScanPath(filepath.Join(tempDir, "missing"))
	require.Error(t, err)

	_, err = service.ScanPath(filePath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a directory")
}

// TestCollectFiles 验证收集器只返回文件且跳过忽略目录。
func TestCollectFiles(t *testing.T) {
	tempDir := t.TempDir()
	writeFixtureFile(t, filepath.Join(tempDir, "build", "out.o"), "x")
	writeFixtureFile(t, filepath.Join(tempDir, "src", "build", "gen.c"), "x")
	writeFixtureFile(t, filepath.Join(tempDir, "src", "main.c"), "x")
	writeFixtureFile(t, filepath.Join(tempDir, "README"), "x")
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "empty"), 0o755))

	files, err := CollectFiles(tempDir, []string{"build"})
	require.NoError(t, err)

	sort.Strings(files)
	require.Equal(t, []string{
		filepath.Join(tempDir, "README"),
		filepath.Join(tempDir, "src", "main.c"),
	}, files)
}

// TestCollectFilesMissingRoot 验证目录读取失败会终止并返回包含路径的错误。
func TestCollectFilesMissingRoot(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	_, err := CollectFiles(missing, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), missing)
}
