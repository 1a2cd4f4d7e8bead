package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Open(t *testing.T) {
	osfs := OSFileSystem{}

	f, err := osfs.Open("filesystem.go")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	f.Close()

	if _, err := osfs.Open("nonexistent_file_xyz.go"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestOSFileSystem_CreateOverwrites(t *testing.T) {
	osfs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "out.png")

	for _, content := range []string{"first, longer content", "second"} {
		w, err := osfs.Create(path)
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if err := w.Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("expected truncated content 'second', got %q", data)
	}
}

func TestMemoryFileSystem_WriteAndRead(t *testing.T) {
	mfs := NewMemoryFileSystem()

	testData := []byte("x,y,label\n0.1,0.2,1\n")
	if err := mfs.WriteFile("moons.csv", testData, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := mfs.ReadFile("moons.csv")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestMemoryFileSystem_CreateAndWrite(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/created.txt")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := w.Write([]byte("created content")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := mfs.ReadFile("/created.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != "created content" {
		t.Errorf("expected 'created content', got %q", data)
	}
}

func TestMemoryFileSystem_Open(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if err := mfs.WriteFile("./dir/../opentest.txt", []byte("open me"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := mfs.Open("opentest.txt")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	if string(data) != "open me" {
		t.Errorf("expected 'open me', got %q", data)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Name() != "opentest.txt" || info.Size() != 7 {
		t.Errorf("unexpected stat: name=%q size=%d", info.Name(), info.Size())
	}
}

func TestMemoryFileSystem_OpenNonExistent(t *testing.T) {
	mfs := NewMemoryFileSystem()

	_, err := mfs.Open("/nonexistent.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMemoryFileSystem_Unreadable(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if err := mfs.WriteFile("secret.csv", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	mfs.SetUnreadable("secret.csv")

	if _, err := mfs.Open("secret.csv"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected fs.ErrPermission from Open, got %v", err)
	}
	if _, err := mfs.ReadFile("secret.csv"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("expected fs.ErrPermission from ReadFile, got %v", err)
	}
	if !mfs.Exists("secret.csv") {
		t.Error("unreadable file should still exist")
	}
}

func TestMemoryFileSystem_Len(t *testing.T) {
	mfs := NewMemoryFileSystem()
	if mfs.Len() != 0 {
		t.Fatalf("expected empty filesystem, got %d files", mfs.Len())
	}

	_ = mfs.WriteFile("a", nil, 0644)
	_ = mfs.WriteFile("b", nil, 0644)
	_ = mfs.WriteFile("a", []byte("again"), 0644)

	if mfs.Len() != 2 {
		t.Errorf("expected 2 files, got %d", mfs.Len())
	}
}
