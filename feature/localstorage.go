package feature

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/kbukum/flagkit/logger"
	"github.com/kbukum/flagkit/store"
)

// storeKeyPrefix namespaces flag keys inside the store so they cannot
// collide with unrelated entries.
const storeKeyPrefix = "features"

// LocalStorageProvider evaluates and persists a flag in a local
// key-value store. Writes are last-write-wins; the store is scoped to a
// single process so no concurrency control is needed beyond the store's
// own locking.
type LocalStorageProvider struct {
	NoopProvider
	store store.Store
	key   string
	log   *logger.Logger
}

// NewLocalStorageProvider creates a provider backed by s. The store key
// is derived from the feature name and never changes.
func NewLocalStorageProvider(featureName string, s store.Store) *LocalStorageProvider {
	return &LocalStorageProvider{
		NoopProvider: NoopProvider{feature: featureName},
		store:        s,
		key:          storeKeyPrefix + "/" + featureName,
		log:          logger.Get("feature.localstorage"),
	}
}

// Name returns "local-storage".
func (p *LocalStorageProvider) Name() string { return "local-storage" }

// Evaluate reports true only when the stored text equals "true"
// case-insensitively. Any other value, a missing key, or a store error
// reads as disabled.
func (p *LocalStorageProvider) Evaluate(ctx context.Context) bool {
	if p.store == nil {
		return false
	}
	value, ok, err := p.store.Get(ctx, p.key)
	if err != nil {
		p.log.Warn("flag read failed", logger.Fields(
			logger.FieldFeature, p.Feature(),
			logger.FieldError, err.Error(),
		))
		return false
	}
	return ok && strings.EqualFold(value, "true")
}

// Persist writes the boolean's string form under the flag's key,
// overwriting unconditionally.
func (p *LocalStorageProvider) Persist(ctx context.Context, enabled bool) error {
	if p.store == nil {
		return nil
	}
	if err := p.store.Set(ctx, p.key, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("feature: persist %q: %w", p.Feature(), err)
	}
	return nil
}
