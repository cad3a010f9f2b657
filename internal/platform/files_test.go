package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultSaveDir(t *testing.T) {
	dir, err := DefaultSaveDir()
	if err != nil {
		t.Fatalf("Failed to resolve default save dir: %v", err)
	}

	if dir == "" {
		t.Fatal("Default save dir is empty")
	}

	if !filepath.IsAbs(dir) {
		t.Errorf("Expected absolute path, got: %s", dir)
	}

	// Whatever tier was chosen, it must exist.
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Default save dir does not exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("Default save dir is not a directory: %s", dir)
	}

	// Must be the home directory or one of the two preferred subdirectories.
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}
	base := filepath.Base(dir)
	if dir != homeDir && base != DownloadsDir && base != VideosDirDefault && base != MoviesDirDarwin {
		t.Errorf("Unexpected default save dir: %s", dir)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestOpenFolderInManager_NonExistentFolder(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "nope")

	err := OpenFolderInManager(missing)
	if err == nil {
		t.Fatal("Expected error for non-existent folder, got nil")
	}
	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Error message should contain 'folder does not exist', got: %v", err)
	}
}

func TestOpenFolderInManager_FileInsteadOfFolder(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "file_*.txt")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	tempFile.Close()

	err = OpenFolderInManager(tempFile.Name())
	if err == nil {
		t.Fatal("Expected error for a plain file, got nil")
	}
	if !strings.Contains(err.Error(), "not a directory") {
		t.Errorf("Error message should contain 'not a directory', got: %v", err)
	}
}
