package store

import (
	"context"
	"errors"
	"testing"
)

// failingRepo simulates an unavailable medium.
type failingRepo struct{}

func (failingRepo) Load(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}
func (failingRepo) Save(context.Context, string, string) error {
	return errors.New("disk on fire")
}
func (failingRepo) Clear(context.Context, string) error {
	return errors.New("disk on fire")
}

func TestAdapterLoadTreatsErrorAsAbsent(t *testing.T) {
	a := NewAdapter(failingRepo{}, nil)

	v, ok := a.Load(context.Background(), "prepnova_user")
	if ok || v != "" {
		t.Errorf("expected (\"\", false) on medium failure, got (%q, %v)", v, ok)
	}
}

func TestAdapterSaveSwallowsErrors(t *testing.T) {
	a := NewAdapter(failingRepo{}, nil)

	// Must not panic or surface the error in any way.
	a.Save(context.Background(), "prepnova_user", "{}")
	a.Clear(context.Background(), "prepnova_user")
}

func TestAdapterRoundTrip(t *testing.T) {
	a := NewAdapter(NewMemorySlotRepo(), nil)
	ctx := context.Background()

	if _, ok := a.Load(ctx, "prepnova_auth"); ok {
		t.Error("expected absent slot before save")
	}

	a.Save(ctx, "prepnova_auth", "true")
	v, ok := a.Load(ctx, "prepnova_auth")
	if !ok || v != "true" {
		t.Errorf("expected (\"true\", true), got (%q, %v)", v, ok)
	}

	a.Save(ctx, "prepnova_auth", "false")
	if v, _ := a.Load(ctx, "prepnova_auth"); v != "false" {
		t.Errorf("save should overwrite, got %q", v)
	}

	a.Clear(ctx, "prepnova_auth")
	if _, ok := a.Load(ctx, "prepnova_auth"); ok {
		t.Error("expected absent slot after clear")
	}
}

func TestMemorySlotRepoIsolation(t *testing.T) {
	repo := NewMemorySlotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "a", "1"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Save(ctx, "b", "2"); err != nil {
		t.Fatal(err)
	}
	if err := repo.Clear(ctx, "a"); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := repo.Load(ctx, "a"); ok {
		t.Error("cleared slot should be absent")
	}
	if v, ok, _ := repo.Load(ctx, "b"); !ok || v != "2" {
		t.Errorf("unrelated slot affected: (%q, %v)", v, ok)
	}
}
