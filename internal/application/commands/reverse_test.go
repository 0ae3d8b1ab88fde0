package commands

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"rinomina/internal/adapters/backup"
	"rinomina/internal/adapters/filesystem"
	"rinomina/internal/domain"
)

func TestForwardThenReverseRestoresNames(t *testing.T) {
	dir := t.TempDir()
	original := []string{"photo1.jpg", "photo10.jpg", "photo2.jpg"}
	writeFiles(t, dir, original...)

	backups := backup.NewStore(t.TempDir())
	scanner := filesystem.NewScanner()
	executor := filesystem.NewExecutor()

	rename := NewRenameCommand(scanner, executor, backups, nil, dir, photoConfig())
	if _, err := rename.Execute(context.Background()); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	reverse := NewReverseCommand(executor, backups, nil)
	res, err := reverse.Execute(context.Background())
	if err != nil {
		t.Fatalf("reverse failed: %v", err)
	}
	if res.Record.Len() != 3 {
		t.Errorf("reverted %d files, want 3", res.Record.Len())
	}

	got := dirNames(t, dir)
	for i, want := range original {
		if got[i] != want {
			t.Fatalf("folder after reverse %v, want %v", got, original)
		}
	}
}

func TestReverseStoresInverseRecord(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "photo1.jpg")

	backups := backup.NewStore(t.TempDir())
	scanner := filesystem.NewScanner()
	executor := filesystem.NewExecutor()

	rename := NewRenameCommand(scanner, executor, backups, nil, dir, photoConfig())
	if _, err := rename.Execute(context.Background()); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	reverse := NewReverseCommand(executor, backups, nil)
	if _, err := reverse.Execute(context.Background()); err != nil {
		t.Fatalf("reverse failed: %v", err)
	}

	// the record now points renamed→original, so a further reverse redoes
	// the rename
	record, err := backups.Load()
	if err != nil {
		t.Fatalf("record unreadable after reverse: %v", err)
	}
	target, ok := record.TargetFor(filepath.Join(dir, "IMG_01.jpg"))
	if !ok || target != filepath.Join(dir, "photo1.jpg") {
		t.Errorf("record maps IMG_01.jpg to %q, want photo1.jpg", target)
	}

	if _, err := reverse.Execute(context.Background()); err != nil {
		t.Fatalf("second reverse failed: %v", err)
	}
	if got := dirNames(t, dir); got[0] != "IMG_01.jpg" {
		t.Errorf("second reverse should redo the rename, folder is %v", got)
	}
}

func TestReverseMissingBackup(t *testing.T) {
	backups := backup.NewStore(t.TempDir())
	reverse := NewReverseCommand(filesystem.NewExecutor(), backups, nil)

	_, err := reverse.Execute(context.Background())
	if !errors.Is(err, domain.ErrBackupNotFound) {
		t.Errorf("expected ErrBackupNotFound, got %v", err)
	}
}
