// File: internal/usecase/settings_uc_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"happybot/internal/domain/ports/repository"
)

func TestSettingsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown owner starts on defaults", func(t *testing.T) {
		uc := NewSettingsUseCase(ctx, newMemSettingsRepo(), "nobody", newTestLogger())
		if got := uc.Current(ctx); got != repository.DefaultSettings() {
			t.Errorf("Current = %+v, want defaults", got)
		}
	})

	t.Run("unavailable store falls back to defaults", func(t *testing.T) {
		repo := newMemSettingsRepo()
		repo.loadErr = errors.New("connection refused")
		uc := NewSettingsUseCase(ctx, repo, "owner", newTestLogger())
		if got := uc.Current(ctx); got != repository.DefaultSettings() {
			t.Errorf("Current = %+v, want defaults", got)
		}
	})

	t.Run("update persists and round-trips", func(t *testing.T) {
		repo := newMemSettingsRepo()
		uc := NewSettingsUseCase(ctx, repo, "owner", newTestLogger())

		want := repository.Settings{Username: "Alex", Theme: repository.ThemeDark, FontSize: "18px"}
		if err := uc.Update(ctx, want); err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got := uc.Current(ctx); got != want {
			t.Errorf("Current = %+v, want %+v", got, want)
		}

		// A second use case for the same owner sees the stored blob.
		uc2 := NewSettingsUseCase(ctx, repo, "owner", newTestLogger())
		if got := uc2.Current(ctx); got != want {
			t.Errorf("reloaded Current = %+v, want %+v", got, want)
		}
	})

	t.Run("partial blobs are filled with defaults", func(t *testing.T) {
		repo := newMemSettingsRepo()
		repo.store["owner"] = repository.Settings{Username: "Sam"} // legacy record
		uc := NewSettingsUseCase(ctx, repo, "owner", newTestLogger())

		got := uc.Current(ctx)
		def := repository.DefaultSettings()
		if got.Username != "Sam" || got.Theme != def.Theme || got.FontSize != def.FontSize {
			t.Errorf("Current = %+v, want Sam with default theme and font size", got)
		}
	})

	t.Run("save failure is returned but the cache keeps the value", func(t *testing.T) {
		repo := newMemSettingsRepo()
		uc := NewSettingsUseCase(ctx, repo, "owner", newTestLogger())
		repo.saveErr = errors.New("write timeout")

		if err := uc.UpdateUsername(ctx, "Kim"); err == nil {
			t.Error("expected the save error to surface")
		}
		if got := uc.Current(ctx).Username; got != "Kim" {
			t.Errorf("cached username = %q, want Kim", got)
		}
	})

	t.Run("blank username is invalid", func(t *testing.T) {
		uc := NewSettingsUseCase(ctx, newMemSettingsRepo(), "owner", newTestLogger())
		if err := uc.UpdateUsername(ctx, "  "); err == nil {
			t.Error("blank username should be rejected")
		}
	})
}
