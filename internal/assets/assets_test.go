package assets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func relPaths(files []File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	sort.Strings(out)
	return out
}

// sampleAssets lays out a small assets/ tree.
func sampleAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeTestFile(t, dir, "img/hero.jpg", "\xff\xd8\xff\xe0jpeg")
	writeTestFile(t, dir, "img/people/kim.png", "\x89PNG\x00\x00")
	writeTestFile(t, dir, "css/extra.css", "body{}")
	writeTestFile(t, dir, "fonts/inter.woff2", "wOF2")
	writeTestFile(t, dir, "papers/2024-dsl.pdf", "%PDF-1.7")
	writeTestFile(t, dir, "draft.psd", "8BPS")
	return dir
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := sampleAssets(t)

	files, err := Walk(Options{Root: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{
		"css/extra.css",
		"draft.psd",
		"fonts/inter.woff2",
		"img/hero.jpg",
		"img/people/kim.png",
		"papers/2024-dsl.pdf",
	}
	got := relPaths(files)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_KeepsBinaryFiles(t *testing.T) {
	dir := sampleAssets(t)

	files, err := Walk(Options{Root: dir, Include: []string{"**/*.png"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if len(files) != 1 || files[0].RelPath != "img/people/kim.png" {
		t.Fatalf("expected only kim.png, got %v", relPaths(files))
	}
	f := files[0]
	if f.Kind != KindImage {
		t.Errorf("Kind = %q, want image", f.Kind)
	}
	if f.MediaType != "image/png" {
		t.Errorf("MediaType = %q, want image/png", f.MediaType)
	}
	if f.Size != 6 {
		t.Errorf("Size = %d, want 6", f.Size)
	}
	if len(f.ContentHash) != 64 {
		t.Errorf("ContentHash should be a sha256 hex digest, got %q", f.ContentHash)
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	dir := sampleAssets(t)

	files, err := Walk(Options{Root: dir, Exclude: []string{"**/*.psd", "papers/**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if strings.HasSuffix(f.RelPath, ".psd") || strings.HasPrefix(f.RelPath, "papers/") {
			t.Errorf("exclude filter let through: %s", f.RelPath)
		}
	}
	if len(files) != 4 {
		t.Errorf("expected 4 files, got %v", relPaths(files))
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	files, err := Walk(Options{Root: filepath.Join(t.TempDir(), "nope")})
	if err != nil {
		t.Fatalf("missing root should not fail: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %v", relPaths(files))
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "small.txt", "small")
	writeTestFile(t, dir, "big.txt", strings.Repeat("A", 200))

	files, err := Walk(Options{Root: dir, MaxFileSize: 100})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "small.txt" {
		t.Errorf("expected only small.txt, got %v", got)
	}
}

func TestWalk_SkipDirs(t *testing.T) {
	dir := t.TempDir()
	for _, d := range []string{".git", "node_modules", ".cache"} {
		writeTestFile(t, dir, d+"/file.js", "content")
	}
	writeTestFile(t, dir, "app.js", "const x = 1;")

	files, err := Walk(Options{Root: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "app.js" {
		t.Errorf("expected only app.js, got %v", got)
	}
}

func TestWalk_Gitignore(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".gitignore", "# scratch\n*.log\nraw/\nsecret.txt\n")
	writeTestFile(t, dir, "logo.svg", "<svg/>")
	writeTestFile(t, dir, "debug.log", "log data")
	writeTestFile(t, dir, "secret.txt", "password")
	writeTestFile(t, dir, "raw/shot.jpg", "jpeg")

	files, err := Walk(Options{Root: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	if got := relPaths(files); len(got) != 1 || got[0] != "logo.svg" {
		t.Errorf("expected only logo.svg, got %v", got)
	}
}

func TestWalk_ContentHashConsistency(t *testing.T) {
	dir := sampleAssets(t)

	first, err := Walk(Options{Root: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	second, err := Walk(Options{Root: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	hashes := make(map[string]string)
	for _, f := range first {
		hashes[f.RelPath] = f.ContentHash
	}
	for _, f := range second {
		if h := hashes[f.RelPath]; h != f.ContentHash {
			t.Errorf("content hash mismatch for %s: %s vs %s", f.RelPath, h, f.ContentHash)
		}
	}
}

func TestCopy(t *testing.T) {
	src := sampleAssets(t)
	dst := t.TempDir()

	files, err := Walk(Options{Root: src, Include: []string{"img/**"}})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	for _, f := range files {
		if err := Copy(f, dst); err != nil {
			t.Fatalf("Copy(%s): %v", f.RelPath, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dst, "img", "people", "kim.png"))
	if err != nil {
		t.Fatalf("copied file missing: %v", err)
	}
	if string(data) != "\x89PNG\x00\x00" {
		t.Errorf("copied content mismatch: %q", data)
	}

	// A second copy over identical content is a no-op.
	for _, f := range files {
		if err := Copy(f, dst); err != nil {
			t.Fatalf("second Copy(%s): %v", f.RelPath, err)
		}
	}
}

func TestSummary(t *testing.T) {
	files, err := Walk(Options{Root: sampleAssets(t)})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}
	got := Summary(files)
	want := map[Kind]int{KindImage: 2, KindStyle: 1, KindFont: 1, KindDocument: 1, KindOther: 1}
	for k, n := range want {
		if got[k] != n {
			t.Errorf("Summary[%s] = %d, want %d", k, got[k], n)
		}
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"hero.JPG", KindImage},
		{"logo.svg", KindImage},
		{"site.css", KindStyle},
		{"widget.mjs", KindScript},
		{"inter.woff2", KindFont},
		{"paper.pdf", KindDocument},
		{"refs.bib", KindData},
		{"Makefile", KindOther},
	}
	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			if got := DetectKind(tc.filename); got != tc.want {
				t.Errorf("DetectKind(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestMediaType(t *testing.T) {
	if got := MediaType("a.webp"); got != "image/webp" {
		t.Errorf("MediaType(webp) = %q", got)
	}
	if got := MediaType("a.unknownext"); got != "application/octet-stream" {
		t.Errorf("MediaType(unknown) = %q", got)
	}
}

func TestMatchesInclude(t *testing.T) {
	if !MatchesInclude("anything.png", nil) {
		t.Error("empty include patterns should include everything")
	}
	if !MatchesInclude("hero.jpg", []string{"*.jpg"}) {
		t.Error("*.jpg should match hero.jpg")
	}
	if MatchesInclude("hero.png", []string{"*.jpg"}) {
		t.Error("*.jpg should not match hero.png")
	}
	if !MatchesInclude("img/people/kim.png", []string{"**/*.png"}) {
		t.Error("**/*.png should match nested files")
	}
}

func TestMatchesExclude(t *testing.T) {
	if MatchesExclude("anything.png", nil) {
		t.Error("empty exclude patterns should exclude nothing")
	}
	if !MatchesExclude("img/.DS_Store", []string{"**/.DS_Store"}) {
		t.Error("**/.DS_Store should match img/.DS_Store")
	}
}
