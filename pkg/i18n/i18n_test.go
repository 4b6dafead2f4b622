package i18n_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localecat/pkg/i18n"
)

// writeTree creates files under a temp directory and returns its path.
// Keys are slash-separated paths relative to the root.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func basicTree(t *testing.T) string {
	t.Helper()
	return writeTree(t, map[string]string{
		"constants.yaml": "SITE_NAME: Acme\nSUPPORT: help@acme.test\n",
		"en_us/common.yaml": `greeting: "Hello, %var%!"
welcome: "Welcome to %SITE_NAME%"
contact: "Write to %SUPPORT% or visit %SITE_NAME% (%UNKNOWN%)"
pair: "%var% and %var%"
`,
		"en_us/errors.yaml": "not_found: \"Not found\"\n",
		"fr_fr/common.yaml": "greeting: \"Bonjour, %var% !\"\n",
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("loads locales with defaults", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithDirectory(basicTree(t)))
		require.NoError(t, err)
		require.Equal(t, "en_us", c.DefaultLocale())
		require.ElementsMatch(t, []string{"en_us", "fr_fr"}, c.Locales())
	})

	t.Run("resolves directory to an absolute path", func(t *testing.T) {
		t.Parallel()
		dir := basicTree(t)
		c, err := i18n.New(i18n.WithDirectory(dir))
		require.NoError(t, err)
		require.True(t, filepath.IsAbs(c.Directory()))
		require.Equal(t, filepath.Clean(dir), c.Directory())
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()
		missing := filepath.Join(t.TempDir(), "nope")
		_, err := i18n.New(i18n.WithDirectory(missing))
		require.ErrorIs(t, err, i18n.ErrDirectoryNotFound)
		require.Contains(t, err.Error(), missing)
	})

	t.Run("returns error when directory is a file", func(t *testing.T) {
		t.Parallel()
		root := writeTree(t, map[string]string{"file.yaml": "a: b\n"})
		_, err := i18n.New(i18n.WithDirectory(filepath.Join(root, "file.yaml")))
		require.ErrorIs(t, err, i18n.ErrDirectoryNotFound)
	})

	t.Run("returns error for empty directory option", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithDirectory(""))
		require.ErrorIs(t, err, i18n.ErrEmptyDirectory)
	})

	t.Run("returns error for empty default locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.New(i18n.WithDirectory(basicTree(t)), i18n.WithDefaultLocale(""))
		require.ErrorIs(t, err, i18n.ErrEmptyLocale)
	})

	t.Run("applies config and keeps defaults for empty fields", func(t *testing.T) {
		t.Parallel()
		dir := basicTree(t)
		c, err := i18n.New(i18n.WithConfig(i18n.Config{Directory: dir}))
		require.NoError(t, err)
		require.Equal(t, filepath.Clean(dir), c.Directory())
		require.Equal(t, i18n.DefaultLocale, c.DefaultLocale())

		c, err = i18n.New(i18n.WithConfig(i18n.Config{Directory: dir, DefaultLocale: "fr_fr"}))
		require.NoError(t, err)
		require.Equal(t, "fr_fr", c.DefaultLocale())
	})

	t.Run("accepts default locale missing on disk", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithDirectory(basicTree(t)), i18n.WithDefaultLocale("de_de"))
		require.NoError(t, err)
		require.False(t, c.HasLocale("de_de"))
		require.Equal(t,
			"No string found for 'common::greeting' in the locale 'de_de'.",
			c.String("es_es", "common", "greeting", "World"),
		)
		require.Equal(t, "Bonjour, World !", c.String("fr_fr", "common", "greeting", "World"))
		require.Equal(t,
			"No string found for 'errors::not_found' in the locale 'de_de'.",
			c.String("fr_fr", "errors", "not_found"),
		)
	})

	t.Run("loads empty root", func(t *testing.T) {
		t.Parallel()
		c, err := i18n.New(i18n.WithDirectory(t.TempDir()))
		require.NoError(t, err)
		require.Empty(t, c.Locales())
		require.Equal(t, "No string found for 'a::b' in the locale 'en_us'.", c.String("en_us", "a", "b"))
	})
}

func TestNewDefaultDirectory(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "locales", "en_us"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "locales", "en_us", "common.yaml"),
		[]byte("hello: Hello\n"), 0o644,
	))
	t.Chdir(root)

	c, err := i18n.New()
	require.NoError(t, err)
	require.Equal(t, "Hello", c.String("en_us", "common", "hello"))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "locales"), c.Directory())
}

func TestString(t *testing.T) {
	t.Parallel()

	c, err := i18n.New(i18n.WithDirectory(basicTree(t)))
	require.NoError(t, err)

	t.Run("substitutes arguments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, World!", c.String("en_us", "common", "greeting", "World"))
	})

	t.Run("returns template verbatim without arguments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, %var%!", c.String("en_us", "common", "greeting"))
	})

	t.Run("uses requested locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bonjour, Marie !", c.String("fr_fr", "common", "greeting", "Marie"))
	})

	t.Run("falls back to default for unknown locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello, World!", c.String("de_de", "common", "greeting", "World"))
	})

	t.Run("falls back to default for missing key", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Welcome to Acme", c.String("fr_fr", "common", "welcome"))
	})

	t.Run("falls back to default for missing namespace", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Not found", c.String("fr_fr", "errors", "not_found"))
	})

	t.Run("returns diagnostic for missing string", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			"No string found for 'missing_ns::missing_key' in the locale 'en_us'.",
			c.String("en_us", "missing_ns", "missing_key"),
		)
	})

	t.Run("reports default locale in diagnostic after fallback", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			"No string found for 'common::nope' in the locale 'en_us'.",
			c.String("fr_fr", "common", "nope"),
		)
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			"No string found for 'Common::greeting' in the locale 'en_us'.",
			c.String("en_us", "Common", "greeting"),
		)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		first := c.String("en_us", "common", "pair", "a", "b")
		second := c.String("en_us", "common", "pair", "a", "b")
		require.Equal(t, "a and b", first)
		require.Equal(t, first, second)
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()
		var wg sync.WaitGroup
		for range 16 {
			wg.Go(func() {
				assert.Equal(t, "Hello, X!", c.String("de_de", "common", "greeting", "X"))
			})
		}
		wg.Wait()
	})
}

func TestConstants(t *testing.T) {
	t.Parallel()

	c, err := i18n.New(i18n.WithDirectory(basicTree(t)))
	require.NoError(t, err)

	t.Run("merges constants at load time", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Welcome to Acme", c.String("en_us", "common", "welcome"))
	})

	t.Run("replaces all occurrences and keeps unknown tokens", func(t *testing.T) {
		t.Parallel()
		require.Equal(t,
			"Write to help@acme.test or visit Acme (%UNKNOWN%)",
			c.String("en_us", "common", "contact"),
		)
	})

	t.Run("returns constant", func(t *testing.T) {
		t.Parallel()
		v, ok := c.Constant("SITE_NAME")
		require.True(t, ok)
		require.Equal(t, "Acme", v)
	})

	t.Run("reports unknown constant", func(t *testing.T) {
		t.Parallel()
		v, ok := c.Constant("unknown")
		require.False(t, ok)
		require.Empty(t, v)
	})

	t.Run("works without constants file", func(t *testing.T) {
		t.Parallel()
		dir := writeTree(t, map[string]string{
			"en_us/common.yaml": "welcome: \"Welcome to %SITE_NAME%\"\n",
		})
		c, err := i18n.New(i18n.WithDirectory(dir))
		require.NoError(t, err)
		require.Equal(t, "Welcome to %SITE_NAME%", c.String("en_us", "common", "welcome"))
		_, ok := c.Constant("SITE_NAME")
		require.False(t, ok)
	})
}

func TestMissingHandler(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var calls [][3]string

	c, err := i18n.New(
		i18n.WithDirectory(basicTree(t)),
		i18n.WithMissingHandler(func(locale, namespace, key string) {
			mu.Lock()
			defer mu.Unlock()
			calls = append(calls, [3]string{locale, namespace, key})
		}),
	)
	require.NoError(t, err)

	c.String("fr_fr", "common", "greeting")
	c.String("fr_fr", "common", "welcome")
	c.String("fr_fr", "common", "absent")

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, [][3]string{{"en_us", "common", "absent"}}, calls)
}

func TestIntrospection(t *testing.T) {
	t.Parallel()

	c, err := i18n.New(i18n.WithDirectory(basicTree(t)))
	require.NoError(t, err)

	t.Run("locales returns a copy", func(t *testing.T) {
		t.Parallel()
		locales := c.Locales()
		locales[0] = "changed"
		require.NotContains(t, c.Locales(), "changed")
	})

	t.Run("has locale", func(t *testing.T) {
		t.Parallel()
		require.True(t, c.HasLocale("en_us"))
		require.False(t, c.HasLocale("de_de"))
	})

	t.Run("namespaces are sorted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"common", "errors"}, c.Namespaces("en_us"))
		require.Equal(t, []string{"common"}, c.Namespaces("fr_fr"))
		require.Empty(t, c.Namespaces("de_de"))
	})

	t.Run("keys are sorted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"contact", "greeting", "pair", "welcome"}, c.Keys("en_us", "common"))
		require.Empty(t, c.Keys("fr_fr", "errors"))
	})

	t.Run("every key round trips", func(t *testing.T) {
		t.Parallel()
		for _, locale := range c.Locales() {
			for _, ns := range c.Namespaces(locale) {
				for _, key := range c.Keys(locale, ns) {
					require.NotContains(t, c.String(locale, ns, key), "No string found", "%s/%s/%s", locale, ns, key)
				}
			}
		}
	})
}
