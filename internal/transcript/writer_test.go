package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTxt(t *testing.T) {
	dir := t.TempDir()
	w := New("txt")

	text := "السطر الأول\nالسطر الثاني"
	path, err := w.Write(text, dir, "transcript")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if filepath.Ext(path) != ".txt" {
		t.Errorf("path = %q, want .txt extension", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("content = %q, want exact transcript", string(data))
	}
}

func TestWriteDocx(t *testing.T) {
	dir := t.TempDir()
	w := New("docx")

	path, err := w.Write("first line\n\nsecond line", dir, "transcript")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	if filepath.Ext(path) != ".docx" {
		t.Errorf("path = %q, want .docx extension", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}

	// docx files are zip archives
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "PK") {
		t.Error("docx file does not look like a zip archive")
	}
}

func TestWriteUnknownFormatDefaultsToTxt(t *testing.T) {
	dir := t.TempDir()
	w := New("")

	path, err := w.Write("text", dir, "transcript")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if filepath.Ext(path) != ".txt" {
		t.Errorf("path = %q, want .txt fallback", path)
	}
}
