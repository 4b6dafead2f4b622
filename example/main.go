// Command example loads the bundled locales and prints a lookup.
//
//	cd example
//	go run . fr_fr common greeting Marie
//	go run . de_de common inbox Hans 3
//
// Configuration comes from the environment (or a .env file):
//
//	LOCALES_DIR      locales directory (default "locales")
//	LOCALES_DEFAULT  fallback locale (default "en_us")
//	LOG_LEVEL        DEBUG, INFO, WARN or ERROR (default INFO)
//	SENTRY_DSN       optional; missing strings are reported as Sentry logs
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/localecat/pkg/i18n"
	"github.com/dmitrymomot/localecat/pkg/logger"
)

type config struct {
	Locales  i18n.Config
	Sentry   logger.SentryConfig
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := env.ParseAs[config]()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, logger.WithLevel(cfg.LogLevel))

	catalog, err := i18n.New(
		i18n.WithConfig(cfg.Locales),
		i18n.WithLogger(log),
		i18n.WithMissingHandler(func(locale, namespace, key string) {
			log.Warn("missing translation",
				slog.String("locale", locale),
				slog.String("namespace", namespace),
				slog.String("key", key),
			)
		}),
	)
	if err != nil {
		log.Error("failed to load locales", "error", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	if len(args) < 3 {
		printSummary(catalog)
		return
	}

	subs := make([]any, 0, len(args)-3)
	for _, a := range args[3:] {
		subs = append(subs, a)
	}
	fmt.Println(catalog.String(args[0], args[1], args[2], subs...))
}

// printSummary lists what was loaded and shows a welcome line per locale.
func printSummary(catalog *i18n.Catalog) {
	fmt.Printf("locales in %s (default %s):\n", catalog.Directory(), catalog.DefaultLocale())
	for _, locale := range catalog.Locales() {
		tr := i18n.NewTranslator(catalog, locale, "common")
		fmt.Printf("  %s %v: %s\n", locale, catalog.Namespaces(locale), tr.T("welcome"))
	}
	if site, ok := catalog.Constant("SITE_NAME"); ok {
		fmt.Println("site:", site)
	}
}
