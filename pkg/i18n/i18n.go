package i18n

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/dmitrymomot/localecat/pkg/logger"
)

const (
	// DefaultDirectory is the locales directory used when none is specified.
	// It is resolved against the process working directory.
	DefaultDirectory = "locales"

	// DefaultLocale is the fallback locale used when none is specified.
	DefaultLocale = "en_us"
)

// Config holds catalog settings that hosts usually source from the environment.
type Config struct {
	Directory     string `env:"LOCALES_DIR" envDefault:"locales"`
	DefaultLocale string `env:"LOCALES_DEFAULT" envDefault:"en_us"`
}

// entryKey addresses a single template in the flattened string table.
type entryKey struct {
	locale    string
	namespace string
	key       string
}

// Catalog holds every string loaded from a locales directory.
// It is immutable after creation, making it safe for concurrent use.
type Catalog struct {
	// Flattened string table for O(1) lookups.
	entries map[entryKey]string

	// Namespaces present per locale, including empty ones.
	namespaces map[string]map[string]struct{}

	// Constants loaded from the root constants file. Nil when the file is absent.
	constants map[string]string

	decoders map[string]Decoder
	log      *slog.Logger

	// Optional handler called when a lookup resolves to the diagnostic string.
	missingHandler func(locale, namespace, key string)

	dir           string
	defaultLocale string

	// Decoder extensions in registration order. Also the probe order for the constants file.
	extOrder []string

	// Locale directories in enumeration order.
	locales []string
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// New creates a Catalog by eagerly loading the configured locales directory.
// Construction either fully succeeds or returns an error; no partially loaded
// catalog is ever returned.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		entries:       make(map[entryKey]string),
		namespaces:    make(map[string]map[string]struct{}),
		decoders:      make(map[string]Decoder),
		log:           logger.NewNope(),
		dir:           DefaultDirectory,
		defaultLocale: DefaultLocale,
	}
	c.registerDecoder(".yaml", YAMLDecoder)
	c.registerDecoder(".yml", YAMLDecoder)
	c.registerDecoder(".json", JSONDecoder)

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if err := c.load(); err != nil {
		return nil, err
	}

	c.log.Info("locales loaded",
		slog.String("dir", c.dir),
		slog.Int("locales", len(c.locales)),
		slog.Int("constants", len(c.constants)),
		slog.Int("strings", len(c.entries)),
	)

	return c, nil
}

// WithDirectory sets the locales directory. Relative paths are resolved
// against the working directory.
func WithDirectory(dir string) Option {
	return func(c *Catalog) error {
		if dir == "" {
			return ErrEmptyDirectory
		}
		c.dir = dir
		return nil
	}
}

// WithDefaultLocale sets the fallback locale.
func WithDefaultLocale(locale string) Option {
	return func(c *Catalog) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		c.defaultLocale = locale
		return nil
	}
}

// WithConfig applies a Config. Empty fields keep their defaults.
func WithConfig(cfg Config) Option {
	return func(c *Catalog) error {
		if cfg.Directory != "" {
			c.dir = cfg.Directory
		}
		if cfg.DefaultLocale != "" {
			c.defaultLocale = cfg.DefaultLocale
		}
		return nil
	}
}

// WithLogger sets the logger used during loading and for missing strings.
func WithLogger(log *slog.Logger) Option {
	return func(c *Catalog) error {
		if log != nil {
			c.log = log
		}
		return nil
	}
}

// WithMissingHandler sets a handler function that will be called when a string
// is found neither in the requested locale nor in the default one.
// Useful for spotting untranslated keys during development.
func WithMissingHandler(handler func(locale, namespace, key string)) Option {
	return func(c *Catalog) error {
		c.missingHandler = handler
		return nil
	}
}

// WithDecoder registers a decoder for files with the given extension (".toml").
// Registering an extension that already has a decoder replaces it.
func WithDecoder(ext string, dec Decoder) Option {
	return func(c *Catalog) error {
		if ext == "" {
			return ErrEmptyExtension
		}
		if dec == nil {
			return ErrNilDecoder
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		c.registerDecoder(ext, dec)
		return nil
	}
}

func (c *Catalog) registerDecoder(ext string, dec Decoder) {
	if _, exists := c.decoders[ext]; !exists {
		c.extOrder = append(c.extOrder, ext)
	}
	c.decoders[ext] = dec
}

// String returns the template stored for key in the namespace of the locale,
// with %var% placeholders replaced positionally by args.
//
// An unknown locale is treated as the default locale. A namespace or key missing
// from a non-default locale is looked up in the default locale. When that fails
// too, a diagnostic message is returned instead of an error.
func (c *Catalog) String(locale, namespace, key string, args ...any) string {
	if _, exists := c.namespaces[locale]; !exists {
		locale = c.defaultLocale
	}

	template, found := c.entries[entryKey{locale, namespace, key}]
	if !found && locale != c.defaultLocale {
		locale = c.defaultLocale
		template, found = c.entries[entryKey{locale, namespace, key}]
	}

	if !found {
		c.log.Debug("string not found",
			slog.String("locale", locale),
			slog.String("namespace", namespace),
			slog.String("key", key),
		)
		if c.missingHandler != nil {
			c.missingHandler(locale, namespace, key)
		}
		return fmt.Sprintf("No string found for '%s::%s' in the locale '%s'.", namespace, key, locale)
	}

	return ReplacePlaceholders(template, args...)
}

// Constant returns the constant stored under key.
// The second value is false when the key is unknown or no constants file was loaded.
func (c *Catalog) Constant(key string) (string, bool) {
	v, ok := c.constants[key]
	return v, ok
}

// Locales returns the locale directories in the order they were enumerated.
func (c *Catalog) Locales() []string {
	return slices.Clone(c.locales)
}

// HasLocale reports whether the locale was loaded from disk.
func (c *Catalog) HasLocale(locale string) bool {
	_, exists := c.namespaces[locale]
	return exists
}

// Namespaces returns the sorted namespaces loaded for the locale.
func (c *Catalog) Namespaces(locale string) []string {
	set := c.namespaces[locale]
	out := make([]string, 0, len(set))
	for ns := range set {
		out = append(out, ns)
	}
	slices.Sort(out)
	return out
}

// Keys returns the sorted keys of a namespace in the locale.
// No fallback to the default locale is applied.
func (c *Catalog) Keys(locale, namespace string) []string {
	var out []string
	for k := range c.entries {
		if k.locale == locale && k.namespace == namespace {
			out = append(out, k.key)
		}
	}
	slices.Sort(out)
	return out
}

// DefaultLocale returns the fallback locale.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Directory returns the absolute locales directory.
func (c *Catalog) Directory() string {
	return c.dir
}
