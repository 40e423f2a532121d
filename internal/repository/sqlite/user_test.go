package sqlite_test

import (
	"context"
	"testing"

	"github.com/dmelim/userlist/internal/domain"
	"github.com/dmelim/userlist/internal/repository/sqlite"
)

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Name: "Ana Silva", Email: "ana@example.com"}

	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if user.ID != 1 {
		t.Fatalf("expected first user to get id 1, got %d", user.ID)
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestUserRepository_Create_MonotonicIDs(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	var lastID int64
	for _, name := range []string{"First", "Second", "Third"} {
		user := &domain.User{Name: name, Email: "user@example.com"}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
		if user.ID <= lastID {
			t.Fatalf("expected id > %d, got %d", lastID, user.ID)
		}
		lastID = user.ID
	}
}

func TestUserRepository_Create_DuplicatesAllowed(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	first := &domain.User{Name: "Ana Silva", Email: "ana@example.com"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create first: %v", err)
	}

	second := &domain.User{Name: "Ana Silva", Email: "ana@example.com"}
	if err := repo.Create(ctx, second); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both got %d", first.ID)
	}

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserRepository_ListAll_InsertionOrder(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	names := []string{"Ana Silva", "Bruno Costa", "Carla Dias"}
	for _, name := range names {
		if err := repo.Create(ctx, &domain.User{Name: name, Email: "user@example.com"}); err != nil {
			t.Fatalf("Create %s: %v", name, err)
		}
	}

	users, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != len(names) {
		t.Fatalf("expected %d users, got %d", len(names), len(users))
	}
	for i, name := range names {
		if users[i].Name != name {
			t.Fatalf("position %d: expected %q, got %q", i, name, users[i].Name)
		}
		if i > 0 && users[i].ID <= users[i-1].ID {
			t.Fatalf("expected ascending ids, got %d after %d", users[i].ID, users[i-1].ID)
		}
	}
}

func TestUserRepository_ListAll_Empty(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	users, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected empty listing, got %d users", len(users))
	}
}
