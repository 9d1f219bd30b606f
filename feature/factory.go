package feature

import (
	"strings"
	"sync"

	"github.com/kbukum/flagkit/config"
	"github.com/kbukum/flagkit/httpstate"
	"github.com/kbukum/flagkit/logger"
	"github.com/kbukum/flagkit/store"
)

// defaultStorePath is where the package-level factory persists flags.
const defaultStorePath = ".flagkit"

// Factory constructs providers from a feature name, a provider-kind
// string, and optional connection options. It owns the collaborators it
// hands to the adapters it builds.
type Factory struct {
	store    store.Store
	state    *httpstate.State
	registry *ClientRegistry
	log      *logger.Logger
}

// FactoryConfig carries the collaborators for a Factory. Zero-value
// fields fall back to the package defaults.
type FactoryConfig struct {
	// Store backs local-storage providers.
	Store store.Store
	// State backs cookie and header providers.
	State *httpstate.State
	// Registry caches remote evaluation clients.
	Registry *ClientRegistry
}

// NewFactory creates a factory from cfg.
func NewFactory(cfg FactoryConfig) *Factory {
	if cfg.Store == nil {
		cfg.Store = defaultStore(defaultStorePath)
	}
	if cfg.State == nil {
		cfg.State = httpstate.Default()
	}
	if cfg.Registry == nil {
		cfg.Registry = DefaultRegistry
	}
	return &Factory{
		store:    cfg.Store,
		state:    cfg.State,
		registry: cfg.Registry,
		log:      logger.Get("feature.factory"),
	}
}

// NewFactoryFromConfig builds a factory honoring the flags section of the
// application configuration.
func NewFactoryFromConfig(cfg config.FlagsConfig) *Factory {
	fc := FactoryConfig{}
	if cfg.StorePath != "" {
		fc.Store = defaultStore(cfg.StorePath)
	}
	return NewFactory(fc)
}

// New returns a provider evaluating featureName from the source named by
// kind. Every kind string yields a provider: unrecognized kinds get the
// all-disabled NoopProvider, so a configuration typo can never enable a
// feature or crash the caller. The only error is a malformed options URI
// for a remote kind.
func (f *Factory) New(featureName, kind, options string) (Provider, error) {
	normalized := strings.ToLower(strings.TrimSpace(kind))
	switch {
	case normalized == KindLocalStorage:
		return NewLocalStorageProvider(featureName, f.store), nil
	case normalized == KindCookie:
		return NewCookieProvider(featureName, f.state), nil
	case normalized == KindHTTPHeader:
		return NewHeaderProvider(featureName, f.state), nil
	case strings.HasPrefix(normalized, remoteKindPrefix):
		backend := strings.TrimPrefix(normalized, remoteKindPrefix)
		if backend != BackendFlagd {
			f.log.Warn("unknown remote backend, using noop provider", logger.Fields(
				logger.FieldFeature, featureName,
				logger.FieldBackend, backend,
			))
			return NewNoopProvider(featureName), nil
		}
		return NewRemoteProvider(featureName, backend, options, f.registry)
	default:
		f.log.Warn("unknown provider kind, using noop provider", logger.Fields(
			logger.FieldFeature, featureName,
			logger.FieldProvider, kind,
		))
		return NewNoopProvider(featureName), nil
	}
}

// NewFromConfig returns a provider for featureName using the configured
// provider kind and options.
func (f *Factory) NewFromConfig(featureName string, cfg config.FlagsConfig) (Provider, error) {
	return f.New(featureName, cfg.Provider, cfg.Options)
}

var (
	defaultFactoryOnce sync.Once
	defaultFactory     *Factory
)

// New constructs a provider using the package defaults: a file store
// under .flagkit, the process-wide HTTP snapshot, and the process-wide
// client registry.
func New(featureName, kind, options string) (Provider, error) {
	defaultFactoryOnce.Do(func() {
		defaultFactory = NewFactory(FactoryConfig{})
	})
	return defaultFactory.New(featureName, kind, options)
}

// defaultStore opens a file store at path, falling back to memory when
// the directory cannot be created.
func defaultStore(path string) store.Store {
	fs, err := store.NewFileStore(path)
	if err != nil {
		logger.Get("feature.factory").Warn("file store unavailable, using memory store", logger.Fields(
			logger.FieldError, err.Error(),
		))
		return store.NewMemoryStore()
	}
	return fs
}
