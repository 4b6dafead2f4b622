package i18n

// Translator provides a simplified lookup interface with a fixed locale and namespace context.
// It wraps a Catalog and eliminates the need to specify locale and namespace for each string.
type Translator struct {
	catalog   *Catalog
	locale    string
	namespace string
}

// NewTranslator creates a new Translator with the specified locale and namespace.
// If locale is empty, it defaults to the catalog's default locale.
func NewTranslator(catalog *Catalog, locale, namespace string) *Translator {
	if catalog == nil {
		panic("i18n: catalog is not provided")
	}
	if locale == "" {
		locale = catalog.DefaultLocale()
	}
	return &Translator{
		catalog:   catalog,
		locale:    locale,
		namespace: namespace,
	}
}

// T looks up a key using the translator's locale and namespace context.
func (t *Translator) T(key string, args ...any) string {
	return t.catalog.String(t.locale, t.namespace, key, args...)
}

// Locale returns the translator's locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Namespace returns the translator's namespace.
func (t *Translator) Namespace() string {
	return t.namespace
}
