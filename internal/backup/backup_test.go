package backup

import (
	"bytes"
	"errors"
	"testing"

	"github.com/illarion/pocketvault/internal/vaultfile"
)

func testContainer(t *testing.T, l vaultfile.Layout) []byte {
	t.Helper()
	raw, err := vaultfile.NewBuilder(l).
		SetSalt(bytes.Repeat([]byte{1}, l.SaltSize)).
		SetNonce(bytes.Repeat([]byte{2}, l.NonceSize)).
		SetTag(bytes.Repeat([]byte{3}, l.TagSize)).
		SetCiphertext([]byte("ciphertext")).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return raw
}

func TestWriteReadRoundTrip(t *testing.T) {
	l := vaultfile.DefaultLayout()
	svc := New(t.TempDir(), l)
	data := testContainer(t, l)

	if err := svc.Write("work", data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !svc.Exists("work") {
		t.Error("Backup should exist after Write")
	}

	got, err := svc.Read("work")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("Backup content mismatch")
	}
}

func TestWriteRejectsGarbage(t *testing.T) {
	svc := New(t.TempDir(), vaultfile.DefaultLayout())
	if err := svc.Write("work", []byte("not a container")); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Expected ErrCorrupt, got %v", err)
	}
}

func TestReadMissing(t *testing.T) {
	svc := New(t.TempDir(), vaultfile.DefaultLayout())
	if _, err := svc.Read("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListAndDelete(t *testing.T) {
	l := vaultfile.DefaultLayout()
	svc := New(t.TempDir(), l)
	data := testContainer(t, l)

	for _, name := range []string{"beta", "alpha"} {
		if err := svc.Write(name, data); err != nil {
			t.Fatalf("Write %s failed: %v", name, err)
		}
	}

	names, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("Expected sorted [alpha beta], got %v", names)
	}

	if err := svc.Delete("alpha"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if svc.Exists("alpha") {
		t.Error("Deleted backup should not exist")
	}
	if err := svc.Delete("alpha"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on double delete, got %v", err)
	}
}

func TestListEmptyDir(t *testing.T) {
	svc := New(t.TempDir()+"/never-created", vaultfile.DefaultLayout())
	names, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected no backups, got %v", names)
	}
}
