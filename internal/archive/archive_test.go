package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"codeberg.org/snonux/fenglish/internal/testutil"
)

func TestArchiveExports(t *testing.T) {
	tmpDir := t.TempDir()

	exportsDir := filepath.Join(tmpDir, "exports")
	testutil.CreateTestFile(t, filepath.Join(exportsDir, "words.csv"), []byte("Phrase,Note,Rank,Spelling\n"))
	testutil.CreateTestFile(t, filepath.Join(exportsDir, "subdir", "words.sqlite"), []byte("db"))

	archivedPath, err := ArchiveExports(exportsDir)
	if err != nil {
		t.Fatalf("ArchiveExports failed: %v", err)
	}

	testutil.AssertFileNotExists(t, exportsDir)

	archiveDir := filepath.Join(tmpDir, "archive")
	if filepath.Dir(archivedPath) != archiveDir {
		t.Errorf("Archived to %s, want a child of %s", archivedPath, archiveDir)
	}

	archivedName := filepath.Base(archivedPath)
	if !strings.HasPrefix(archivedName, "exports-") {
		t.Errorf("Archived directory name doesn't start with 'exports-': %s", archivedName)
	}

	// Verify timestamp format (should be exports-YYYYMMDD-HHMMSS)
	parts := strings.Split(archivedName, "-")
	if len(parts) < 3 {
		t.Errorf("Invalid archive name format: %s", archivedName)
	}

	testutil.AssertFileExists(t, filepath.Join(archivedPath, "words.csv"))
	testutil.AssertFileContent(t, filepath.Join(archivedPath, "subdir", "words.sqlite"), []byte("db"))
}

func TestArchiveExports_NonExistentDirectory(t *testing.T) {
	_, err := ArchiveExports(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("Expected error for non-existent directory")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveExports_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	testutil.CreateTestFile(t, path, []byte("x"))

	if _, err := ArchiveExports(path); err == nil {
		t.Error("Expected error when archiving a file")
	}
}

func TestArchiveExports_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	exportsDir := filepath.Join(tmpDir, "exports")

	var names []string
	for i := 0; i < 2; i++ {
		testutil.CreateTestFile(t, filepath.Join(exportsDir, "words.csv"), []byte("run"))

		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		archivedPath, err := ArchiveExports(exportsDir)
		if err != nil {
			t.Fatalf("ArchiveExports failed on iteration %d: %v", i, err)
		}
		names = append(names, filepath.Base(archivedPath))
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "archive"))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	if names[0] == names[1] {
		t.Error("Archive names are not unique")
	}
}
