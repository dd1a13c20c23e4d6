package store

import (
	"context"

	"go.uber.org/zap"
)

// Adapter is the fail-open boundary between the session layer and the
// persistent medium. Loads treat any storage error as an absent slot and
// saves swallow errors entirely: losing a local cache write is recoverable,
// interrupting the UI is not. Failures are logged and nothing more.
type Adapter struct {
	repo SlotRepo
	log  *zap.Logger
}

// NewAdapter wraps a SlotRepo. A nil logger defaults to zap.NewNop().
func NewAdapter(repo SlotRepo, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{repo: repo, log: log}
}

// Load returns the stored value for key, or ("", false) when the slot is
// absent or the medium is unavailable.
func (a *Adapter) Load(ctx context.Context, key string) (string, bool) {
	v, ok, err := a.repo.Load(ctx, key)
	if err != nil {
		a.log.Warn("slot load failed, treating as absent",
			zap.String("slot", key), zap.Error(err))
		return "", false
	}
	return v, ok
}

// Save overwrites the slot. Errors are absorbed here and never reach the
// caller.
func (a *Adapter) Save(ctx context.Context, key, value string) {
	if err := a.repo.Save(ctx, key, value); err != nil {
		a.log.Warn("slot save failed",
			zap.String("slot", key), zap.Error(err))
	}
}

// Clear removes the slot, absorbing errors like Save.
func (a *Adapter) Clear(ctx context.Context, key string) {
	if err := a.repo.Clear(ctx, key); err != nil {
		a.log.Warn("slot clear failed",
			zap.String("slot", key), zap.Error(err))
	}
}
