package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromText_SplitsLines(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{text: "", want: []string{}},
		{text: "one", want: []string{"one"}},
		{text: "one\ntwo\n", want: []string{"one", "two"}},
		{text: "one\r\ntwo\r\n", want: []string{"one", "two"}},
		{text: "a\n\nb", want: []string{"a", "", "b"}},
		{text: "\n", want: []string{""}},
	}

	for _, tc := range cases {
		b := FromText(tc.text)
		if got := b.Lines(); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("FromText(%q).Lines()=%q, want %q", tc.text, got, tc.want)
		}
		if b.IsDirty() {
			t.Fatalf("FromText(%q) must be clean", tc.text)
		}
	}
}

func TestBuffer_EmptyDocument(t *testing.T) {
	b := New()
	if !b.IsEmpty() || b.Height() != 0 {
		t.Fatalf("new buffer: empty=%v height=%d", b.IsEmpty(), b.Height())
	}
	if b.IsFileLoaded() {
		t.Fatalf("new buffer must have no file")
	}
	if got := b.FileInfo().Name(); got != "[No Name]" {
		t.Fatalf("name=%q, want %q", got, "[No Name]")
	}
	if _, ok := b.Line(0); ok {
		t.Fatalf("Line(0) on empty buffer must fail")
	}
	if got := b.GraphemeCount(3); got != 0 {
		t.Fatalf("GraphemeCount past end=%d, want 0", got)
	}
}

func TestBuffer_LoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.rs")
	if err := os.WriteFile(path, []byte("fn main() {\r\n}\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	b, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got, want := b.Lines(), []string{"fn main() {", "}"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}
	if b.FileInfo().FileType() != FileTypeRust {
		t.Fatalf("file type=%v, want Rust", b.FileInfo().FileType())
	}
	if b.FileInfo().Name() != "main.rs" {
		t.Fatalf("name=%q, want %q", b.FileInfo().Name(), "main.rs")
	}

	b.InsertChar('x', Location{LineIdx: 1, GraphemeIdx: 1})
	if !b.IsDirty() {
		t.Fatalf("edit must mark buffer dirty")
	}
	if err := b.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("save must clear dirty flag")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if got, want := string(data), "fn main() {\n}x\n"; got != want {
		t.Fatalf("file=%q, want %q", got, want)
	}
}

func TestBuffer_LoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err=%v, want wrapping os.ErrNotExist", err)
	}
}

func TestBuffer_SaveWithoutName(t *testing.T) {
	b := FromText("hello")
	b.InsertChar('!', Location{LineIdx: 0, GraphemeIdx: 5})
	if err := b.Save(); !errors.Is(err, ErrNoFileName) {
		t.Fatalf("err=%v, want ErrNoFileName", err)
	}
	if !b.IsDirty() {
		t.Fatalf("failed save must keep dirty flag")
	}
}

func TestBuffer_SaveAs(t *testing.T) {
	dir := t.TempDir()
	b := FromText("package main")
	b.InsertNewline(Location{LineIdx: 1})

	path := filepath.Join(dir, "main.go")
	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	if b.IsDirty() {
		t.Fatalf("SaveAs must clear dirty flag")
	}
	if b.FileInfo().Path() != path || b.FileInfo().FileType() != FileTypeGo {
		t.Fatalf("identity=%q/%v, want %q/Go", b.FileInfo().Path(), b.FileInfo().FileType(), path)
	}
}

func TestBuffer_SaveAsFailureKeepsIdentity(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	b := FromText("draft")
	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	b.InsertChar('!', Location{LineIdx: 0, GraphemeIdx: 5})

	bad := filepath.Join(dir, "no-such-dir", "x.rs")
	if err := b.SaveAs(bad); err == nil {
		t.Fatalf("expected error for %q", bad)
	}
	if b.FileInfo().Path() != path {
		t.Fatalf("path=%q, want %q", b.FileInfo().Path(), path)
	}
	if !b.IsDirty() {
		t.Fatalf("failed SaveAs must keep dirty flag")
	}
}

func TestBuffer_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.txt")
	b := FromText("a\n\nb世\n")
	if err := b.SaveAs(path); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(loaded.Lines(), b.Lines()) {
		t.Fatalf("reloaded=%q, want %q", loaded.Lines(), b.Lines())
	}
}

func TestBuffer_InsertChar(t *testing.T) {
	b := FromText("ac")
	b.InsertChar('b', Location{LineIdx: 0, GraphemeIdx: 1})
	if got := b.Text(); got != "abc" {
		t.Fatalf("text=%q, want %q", got, "abc")
	}

	b.InsertChar('z', Location{LineIdx: 1})
	if got := b.Lines(); !reflect.DeepEqual(got, []string{"abc", "z"}) {
		t.Fatalf("append at height: lines=%q", got)
	}

	v := b.Version()
	b.InsertChar('q', Location{LineIdx: 5})
	if b.Height() != 2 || b.Version() != v {
		t.Fatalf("insert past height must be a no-op")
	}
}

func TestBuffer_InsertNewline(t *testing.T) {
	b := FromText("hello\nworld")
	b.InsertNewline(Location{LineIdx: 0, GraphemeIdx: 5})
	if got, want := b.Lines(), []string{"hello", "", "world"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	b.InsertNewline(Location{LineIdx: 2, GraphemeIdx: 2})
	if got, want := b.Lines(), []string{"hello", "", "wo", "rld"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	b.InsertNewline(Location{LineIdx: 4})
	if b.Height() != 5 || b.Lines()[4] != "" {
		t.Fatalf("newline at height: lines=%q", b.Lines())
	}
}

func TestBuffer_DeleteJoinsLines(t *testing.T) {
	b := FromText("foo\nbar\nbaz")
	b.Delete(Location{LineIdx: 0, GraphemeIdx: 3})
	if got, want := b.Lines(), []string{"foobar", "baz"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	b.Delete(Location{LineIdx: 1, GraphemeIdx: 0})
	if got, want := b.Lines(), []string{"foobar", "az"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("lines=%q, want %q", got, want)
	}

	v := b.Version()
	b.Delete(Location{LineIdx: 1, GraphemeIdx: 2})
	b.Delete(Location{LineIdx: 2})
	if b.Version() != v {
		t.Fatalf("delete at document end must be a no-op")
	}
}

func TestBuffer_DirtyOnlyOnEffectiveEdits(t *testing.T) {
	b := FromText("x")
	b.Delete(Location{LineIdx: 0, GraphemeIdx: 1})
	b.InsertChar('y', Location{LineIdx: 9})
	if b.IsDirty() {
		t.Fatalf("no-op edits must not mark buffer dirty")
	}
}

func TestBuffer_TakeStale(t *testing.T) {
	b := FromText("a\nb\nc\nd")
	if s := b.TakeStale(); !s.IsZero() {
		t.Fatalf("fresh buffer stale=%+v", s)
	}

	b.InsertChar('x', Location{LineIdx: 2})
	b.InsertChar('y', Location{LineIdx: 0})
	s := b.TakeStale()
	if !reflect.DeepEqual(s.Lines, []int{0, 2}) || s.From != -1 {
		t.Fatalf("stale=%+v, want lines [0 2] and no range", s)
	}
	if s := b.TakeStale(); !s.IsZero() {
		t.Fatalf("TakeStale must clear, got %+v", s)
	}

	b.InsertChar('z', Location{LineIdx: 3})
	b.InsertNewline(Location{LineIdx: 1, GraphemeIdx: 1})
	b.InsertChar('w', Location{LineIdx: 0})
	s = b.TakeStale()
	if !reflect.DeepEqual(s.Lines, []int{0}) || s.From != 1 {
		t.Fatalf("stale=%+v, want lines [0] from 1", s)
	}
	if !s.Contains(0) || !s.Contains(4) || s.Contains(-1) {
		t.Fatalf("Contains mismatch for %+v", s)
	}
}

func TestClampLocation(t *testing.T) {
	b := FromText("abc\nde")
	cases := []struct {
		in   Location
		want Location
	}{
		{in: Location{LineIdx: -1, GraphemeIdx: -5}, want: Location{}},
		{in: Location{LineIdx: 0, GraphemeIdx: 9}, want: Location{LineIdx: 0, GraphemeIdx: 3}},
		{in: Location{LineIdx: 1, GraphemeIdx: 2}, want: Location{LineIdx: 1, GraphemeIdx: 2}},
		{in: Location{LineIdx: 2, GraphemeIdx: 4}, want: Location{LineIdx: 2}},
		{in: Location{LineIdx: 7, GraphemeIdx: 1}, want: Location{LineIdx: 2}},
	}
	for _, tc := range cases {
		if got := b.ClampLocation(tc.in); got != tc.want {
			t.Fatalf("ClampLocation(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCompareLocation(t *testing.T) {
	a := Location{LineIdx: 1, GraphemeIdx: 4}
	if CompareLocation(a, Location{LineIdx: 2}) != -1 {
		t.Fatalf("earlier line must compare less")
	}
	if CompareLocation(a, Location{LineIdx: 1, GraphemeIdx: 2}) != 1 {
		t.Fatalf("later grapheme must compare greater")
	}
	if CompareLocation(a, a) != 0 {
		t.Fatalf("equal locations must compare 0")
	}
}

func TestFileInfo(t *testing.T) {
	cases := []struct {
		path string
		typ  FileType
		name string
	}{
		{path: "", typ: FileTypeText, name: "[No Name]"},
		{path: "/tmp/lib.RS", typ: FileTypeRust, name: "lib.RS"},
		{path: "cmd/main.go", typ: FileTypeGo, name: "main.go"},
		{path: "README", typ: FileTypeText, name: "README"},
	}
	for _, tc := range cases {
		fi := NewFileInfo(tc.path)
		if fi.FileType() != tc.typ || fi.Name() != tc.name {
			t.Fatalf("NewFileInfo(%q)=(%v,%q), want (%v,%q)", tc.path, fi.FileType(), fi.Name(), tc.typ, tc.name)
		}
	}
}
