// File: internal/application/widget_facade.go
package application

import (
	"context"

	"happybot/internal/domain/model"
	"happybot/internal/domain/ports/repository"
	"happybot/internal/usecase"
)

// WidgetFacade is the narrow surface the frontends and external tooling see:
// submit a turn, force a game, snapshot the session, change the username.
type WidgetFacade struct {
	Engine   usecase.EngineUseCase
	Settings usecase.SettingsUseCase
}

func NewWidgetFacade(engine usecase.EngineUseCase, settings usecase.SettingsUseCase) *WidgetFacade {
	return &WidgetFacade{Engine: engine, Settings: settings}
}

// SubmitText feeds one raw user turn into the engine. Replies flow through the
// presenter the engine was built with. Returns false for silently ignored
// turns (empty input, debounce window).
func (f *WidgetFacade) SubmitText(ctx context.Context, raw string) bool {
	return f.Engine.Submit(ctx, raw)
}

// StartRandomGame force-starts a mini-game, bypassing normal triggering.
func (f *WidgetFacade) StartRandomGame(ctx context.Context) {
	f.Engine.StartRandomGame(ctx)
}

// GetContext returns an immutable deep-copy snapshot of the session state.
func (f *WidgetFacade) GetContext() model.SessionSnapshot {
	return f.Engine.Snapshot()
}

// SetUsername updates the display username and persists it in the settings
// store.
func (f *WidgetFacade) SetUsername(ctx context.Context, name string) error {
	return f.Engine.SetUsername(ctx, name)
}

// GetSettings returns the current settings blob.
func (f *WidgetFacade) GetSettings(ctx context.Context) repository.Settings {
	return f.Settings.Current(ctx)
}

// UpdateSettings replaces the settings blob and keeps the engine's username in
// sync when it changed.
func (f *WidgetFacade) UpdateSettings(ctx context.Context, s repository.Settings) error {
	if err := f.Settings.Update(ctx, s); err != nil {
		return err
	}
	return f.Engine.SetUsername(ctx, f.Settings.Current(ctx).Username)
}
