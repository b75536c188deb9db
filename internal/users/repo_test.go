package users

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/phantomplay/backend/internal/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return gdb
}

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	return NewRepo(openTestDB(t), logger.NewNop())
}

func TestCreateAndVerifyPassword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, "sid-1", "A", "a@x.com", "p1")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created {
		t.Fatalf("expected user to be created")
	}

	ok, err := repo.VerifyPassword(ctx, "a@x.com", "p1")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected correct password to verify")
	}

	ok, err = repo.VerifyPassword(ctx, "a@x.com", "wrong")
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatalf("expected wrong password to fail")
	}

	ok, err = repo.VerifyPassword(ctx, "unknown@x.com", "p1")
	if err != nil {
		t.Fatalf("verify unknown: %v", err)
	}
	if ok {
		t.Fatalf("expected unknown email to fail")
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if created, err := repo.Create(ctx, "sid-1", "A", "a@x.com", "p1"); err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}

	// same address with different casing must hit the unique index
	created, err := repo.Create(ctx, "sid-2", "B", "A@X.com", "p2")
	if err != nil {
		t.Fatalf("duplicate create: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate email to be rejected")
	}
}

func TestCreateDuplicateSessionID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if created, err := repo.Create(ctx, "sid-1", "A", "a@x.com", "p1"); err != nil || !created {
		t.Fatalf("first create: created=%v err=%v", created, err)
	}

	created, err := repo.Create(ctx, "sid-1", "B", "b@x.com", "p2")
	if err != nil {
		t.Fatalf("duplicate create: %v", err)
	}
	if created {
		t.Fatalf("expected duplicate session id to be rejected")
	}
}

func TestEmailExists(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	exists, err := repo.EmailExists(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatalf("expected no user yet")
	}

	if _, err := repo.Create(ctx, "sid-1", "A", "a@x.com", "p1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	exists, err = repo.EmailExists(ctx, "  A@X.com ")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected case-insensitive match")
	}
}

func TestSessionIDByEmail(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, "sid-42", "A", "a@x.com", "p1"); err != nil {
		t.Fatalf("create: %v", err)
	}

	sid, err := repo.SessionIDByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if sid != "sid-42" {
		t.Fatalf("unexpected session id: %q", sid)
	}

	if _, err := repo.SessionIDByEmail(ctx, "missing@x.com"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByEmailAndDeleteAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for i, email := range []string{"a@x.com", "b@x.com"} {
		if _, err := repo.Create(ctx, fmt.Sprintf("sid-%d", i), "U", email, "p"); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}

	if err := repo.DeleteByEmail(ctx, "a@x.com"); err != nil {
		t.Fatalf("delete by email: %v", err)
	}
	if exists, _ := repo.EmailExists(ctx, "a@x.com"); exists {
		t.Fatalf("expected a@x.com to be gone")
	}
	if exists, _ := repo.EmailExists(ctx, "b@x.com"); !exists {
		t.Fatalf("expected b@x.com to survive")
	}

	if err := repo.DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}
	if exists, _ := repo.EmailExists(ctx, "b@x.com"); exists {
		t.Fatalf("expected all users to be gone")
	}
}
