// File: internal/usecase/settings_uc.go
package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"happybot/internal/domain"
	"happybot/internal/domain/ports/repository"
)

// Compile-time check
var _ SettingsUseCase = (*settingsUC)(nil)

// SettingsUseCase manages the per-owner settings blob. An unavailable store is
// never surfaced: loads fall back to hard-coded defaults and saves are logged
// and dropped.
type SettingsUseCase interface {
	Current(ctx context.Context) repository.Settings
	Update(ctx context.Context, s repository.Settings) error
	UpdateUsername(ctx context.Context, name string) error
}

type settingsUC struct {
	mu      sync.Mutex
	repo    repository.SettingsRepository
	ownerID string
	cached  repository.Settings
	log     *zerolog.Logger
}

func NewSettingsUseCase(ctx context.Context, repo repository.SettingsRepository, ownerID string, logger *zerolog.Logger) *settingsUC {
	l := logger.With().Str("component", "SettingsUC").Str("owner", ownerID).Logger()
	uc := &settingsUC{repo: repo, ownerID: ownerID, cached: repository.DefaultSettings(), log: &l}
	if repo != nil {
		if s, err := repo.Load(ctx, ownerID); err == nil && s != nil {
			uc.cached = normalizeSettings(*s)
		} else if err != nil {
			l.Warn().Err(err).Msg("settings store unavailable, using defaults")
		}
	}
	return uc
}

func (u *settingsUC) Current(ctx context.Context) repository.Settings {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cached
}

func (u *settingsUC) Update(ctx context.Context, s repository.Settings) error {
	ns := normalizeSettings(s)
	u.mu.Lock()
	u.cached = ns
	u.mu.Unlock()
	return u.persist(ctx, ns)
}

func (u *settingsUC) UpdateUsername(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidArgument
	}
	u.mu.Lock()
	u.cached.Username = name
	ns := u.cached
	u.mu.Unlock()
	return u.persist(ctx, ns)
}

func (u *settingsUC) persist(ctx context.Context, s repository.Settings) error {
	if u.repo == nil {
		return nil
	}
	if err := u.repo.Save(ctx, u.ownerID, &s); err != nil {
		u.log.Warn().Err(err).Msg("settings save failed")
		return err
	}
	return nil
}

// normalizeSettings fills holes in a stored blob with defaults so a partial or
// legacy record never leaks empty fields.
func normalizeSettings(s repository.Settings) repository.Settings {
	def := repository.DefaultSettings()
	if strings.TrimSpace(s.Username) == "" {
		s.Username = def.Username
	}
	if s.Theme != repository.ThemeLight && s.Theme != repository.ThemeDark {
		s.Theme = def.Theme
	}
	if strings.TrimSpace(s.FontSize) == "" {
		s.FontSize = def.FontSize
	}
	return s
}
