package cats

import (
	"context"
	"errors"
	"testing"
	"time"

	"meowtopia/internal/app/ports"
	"meowtopia/internal/domain/cattery"
	"meowtopia/internal/domain/player"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func seedOwner(users *stubUserRepo, id string) {
	users.users[id] = player.User{ID: id, Username: "owner", Email: "owner@example.com", Version: 1}
}

func TestCreateCat(t *testing.T) {
	users := newStubUserRepo()
	catsRepo := newStubCatRepo()
	seedOwner(users, "user-1")

	uc := CreateUseCase{
		TxManager: stubTxManager{},
		Cats:      catsRepo,
		Users:     users,
		NewID:     func() string { return "cat-1" },
		Now:       fixedNow,
	}

	cat, err := uc.Execute(context.Background(), CreateRequest{
		OwnerID: "user-1",
		Name:    "Whiskers",
		Rarity:  cattery.RarityRare,
		Breed:   "Tabby",
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if cat.ID != "cat-1" || cat.OwnerID != "user-1" {
		t.Fatalf("unexpected identity: %+v", cat)
	}
	if cat.Level != 1 || cat.Energy != 100 || cat.MaxEnergy != 100 {
		t.Fatalf("unexpected starting stats: %+v", cat)
	}
	if got := users.users["user-1"].CatsOwned; got != 1 {
		t.Fatalf("cats owned = %d, want 1", got)
	}
	if got := users.users["user-1"].Version; got != 2 {
		t.Fatalf("owner version = %d, want 2", got)
	}
}

func TestCreateCatValidation(t *testing.T) {
	uc := CreateUseCase{TxManager: stubTxManager{}, Cats: newStubCatRepo(), Users: newStubUserRepo()}

	cases := []CreateRequest{
		{OwnerID: "user-1", Name: "", Rarity: cattery.RarityCommon, Breed: "Tabby"},
		{OwnerID: "user-1", Name: "Whiskers", Rarity: cattery.Rarity("mythic"), Breed: "Tabby"},
		{OwnerID: "", Name: "Whiskers", Rarity: cattery.RarityCommon, Breed: "Tabby"},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("req %+v: err = %v, want ErrInvalidRequest", req, err)
		}
	}
}

func TestCreateCatUnknownOwner(t *testing.T) {
	uc := CreateUseCase{
		TxManager: stubTxManager{},
		Cats:      newStubCatRepo(),
		Users:     newStubUserRepo(),
		NewID:     func() string { return "cat-1" },
		Now:       fixedNow,
	}
	_, err := uc.Execute(context.Background(), CreateRequest{
		OwnerID: "ghost", Name: "Whiskers", Rarity: cattery.RarityCommon, Breed: "Tabby",
	})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListCatsScopedToOwner(t *testing.T) {
	catsRepo := newStubCatRepo()
	catsRepo.cats["cat-1"] = cattery.Cat{ID: "cat-1", OwnerID: "user-1"}
	catsRepo.cats["cat-2"] = cattery.Cat{ID: "cat-2", OwnerID: "user-2"}

	uc := ListUseCase{Cats: catsRepo}
	got, err := uc.Execute(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0].ID != "cat-1" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}

func TestGetCatOwnership(t *testing.T) {
	catsRepo := newStubCatRepo()
	catsRepo.cats["cat-1"] = cattery.Cat{ID: "cat-1", OwnerID: "user-1"}

	uc := GetUseCase{Cats: catsRepo}

	if _, err := uc.Execute(context.Background(), "user-2", "cat-1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("err = %v, want ErrNotOwner", err)
	}
	if _, err := uc.Execute(context.Background(), "user-1", "missing"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	cat, err := uc.Execute(context.Background(), "user-1", "cat-1")
	if err != nil || cat.ID != "cat-1" {
		t.Fatalf("owner lookup failed: %v %+v", err, cat)
	}
}
