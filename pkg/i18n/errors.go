package i18n

import "errors"

var (
	ErrEmptyDirectory    = errors.New("i18n: directory cannot be empty")
	ErrEmptyLocale       = errors.New("i18n: locale cannot be empty")
	ErrEmptyExtension    = errors.New("i18n: file extension cannot be empty")
	ErrNilDecoder        = errors.New("i18n: decoder cannot be nil")
	ErrDirectoryNotFound = errors.New("i18n: locales directory not found")
	ErrInvalidFile       = errors.New("i18n: invalid locale file")
)
