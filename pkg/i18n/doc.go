// Package i18n provides a locale catalog loaded eagerly from a directory of
// string files, with constant merging and default-locale fallback.
//
// All loading happens at construction time. The resulting Catalog is immutable
// and safe for concurrent use without additional synchronization.
//
// # Directory Layout
//
//	locales/
//		constants.yaml      // optional, shared by all locales
//		en_us/
//			common.yaml     // namespace "common"
//			errors.yaml     // namespace "errors"
//		fr_fr/
//			common.yaml
//
// Every immediate subdirectory is a locale. Every file inside it is a namespace
// named after the file without its extension. Nested directories are ignored.
// Files are flat key to string mappings. YAML (.yaml, .yml) and JSON (.json)
// are supported out of the box; other extensions are parsed as YAML unless a
// decoder is registered with WithDecoder.
//
// # Basic Usage
//
//	catalog, err := i18n.New(
//		i18n.WithDirectory("locales"),
//		i18n.WithDefaultLocale("en_us"),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := catalog.String("fr_fr", "common", "greeting", "Marie")
//	// "Bonjour, Marie !" given greeting: "Bonjour, %var% !"
//
// # Constants
//
// Values in constants.yaml are merged into every string at load time. A token
// %NAME% is replaced with the value of constant NAME; tokens that name no
// constant are kept:
//
//	# constants.yaml
//	SITE_NAME: Acme
//
//	# en_us/common.yaml
//	welcome: "Welcome to %SITE_NAME%"   // stored as "Welcome to Acme"
//
// # Placeholders
//
// At lookup time each %var% token is replaced, left to right, by the next
// argument passed to String. Extra tokens stay as %var%.
//
// # Fallback
//
// An unknown locale is served from the default locale. A key missing from a
// locale is looked up in the default locale. When the default locale lacks it
// too, String returns a diagnostic message:
//
//	No string found for 'common::greeting' in the locale 'en_us'.
//
// Lookups never return errors, so they are safe to use while rendering.
//
// # Translator
//
// The Translator type fixes the locale and namespace:
//
//	tr := i18n.NewTranslator(catalog, "fr_fr", "common")
//	title := tr.T("title")
package i18n
