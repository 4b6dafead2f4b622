package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// constantsName is the base name of the optional constants file at the root
// of the locales directory.
const constantsName = "constants"

// Decoder parses the contents of a locale file into v.
type Decoder func(data []byte, v any) error

// YAMLDecoder decodes YAML locale files. It is also used for files whose
// extension has no registered decoder.
func YAMLDecoder(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// JSONDecoder decodes JSON locale files.
func JSONDecoder(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// load scans the locales directory and fills the catalog.
// Layout: {dir}/constants.{ext} (optional) and {dir}/{locale}/{namespace}.{ext}
func (c *Catalog) load() error {
	dir, err := filepath.Abs(c.dir)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", c.dir, err)
	}
	c.dir = dir

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrDirectoryNotFound, dir)
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", dir, err)
	}

	for _, child := range children {
		if isDir(dir, child) {
			c.locales = append(c.locales, child.Name())
		}
	}

	if err := c.loadConstants(); err != nil {
		return err
	}

	for _, locale := range c.locales {
		if err := c.loadLocale(locale); err != nil {
			return err
		}
	}

	return nil
}

// loadConstants reads the first constants file found, probing extensions in
// registration order. A missing file is not an error; a malformed one is.
func (c *Catalog) loadConstants() error {
	for _, ext := range c.extOrder {
		filePath := filepath.Join(c.dir, constantsName+ext)
		info, err := os.Stat(filePath)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}
		if info.IsDir() {
			continue
		}

		constants, err := c.decodeFile(filePath, c.decoders[ext])
		if err != nil {
			return err
		}
		c.constants = constants
		return nil
	}
	return nil
}

func (c *Catalog) loadLocale(locale string) error {
	localeDir := filepath.Join(c.dir, locale)
	files, err := os.ReadDir(localeDir)
	if err != nil {
		return fmt.Errorf("reading %q: %w", localeDir, err)
	}

	replacer := newConstantsReplacer(c.constants)
	tables := make(map[string]map[string]string, len(files))

	for _, file := range files {
		// Nested directories are not recursed into.
		if isDir(localeDir, file) {
			continue
		}

		ext := filepath.Ext(file.Name())
		dec, ok := c.decoders[strings.ToLower(ext)]
		if !ok {
			dec = YAMLDecoder
		}

		filePath := filepath.Join(localeDir, file.Name())
		table, err := c.decodeFile(filePath, dec)
		if err != nil {
			return err
		}

		if replacer != nil {
			for key, value := range table {
				table[key] = replacer.Replace(value)
			}
		}

		// A later file with the same namespace replaces the earlier one.
		tables[strings.TrimSuffix(file.Name(), ext)] = table
	}

	namespaces := make(map[string]struct{}, len(tables))
	for namespace, table := range tables {
		namespaces[namespace] = struct{}{}
		for key, value := range table {
			c.entries[entryKey{locale, namespace, key}] = value
		}
	}
	c.namespaces[locale] = namespaces

	c.log.Debug("locale loaded",
		"locale", locale,
		"namespaces", len(namespaces),
	)

	return nil
}

// decodeFile reads a file and decodes it into a flat key to string mapping.
func (c *Catalog) decodeFile(filePath string, dec Decoder) (map[string]string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", filePath, err)
	}

	var raw map[string]any
	if err := dec(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, filePath, err)
	}

	table := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			table[key] = v
		case nil:
			table[key] = ""
		case map[string]any, []any:
			return nil, fmt.Errorf("%w: %q: value of %q must be a string", ErrInvalidFile, filePath, key)
		default:
			table[key] = fmt.Sprint(v)
		}
	}

	return table, nil
}

// isDir reports whether the entry is a directory, following symlinks.
func isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
