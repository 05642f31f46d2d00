package internal

import "errors"

var (
	ErrInvalidLocale     = errors.New("intlfmt: locale must be a non-empty string")
	ErrNilErrorHandler   = errors.New("intlfmt: error handler must be a function")
	ErrNilTextRenderer   = errors.New("intlfmt: text renderer must be a function")
	ErrNilMessageBuilder = errors.New("intlfmt: message builder factory must be a function")
	ErrNilRegistry       = errors.New("intlfmt: locale data registry is nil")
	ErrNilClock          = errors.New("intlfmt: clock must be a function")
	ErrNilFactories      = errors.New("intlfmt: factories are nil")
	ErrNilKeyFunc        = errors.New("intlfmt: key func must be a function")
	ErrNilStore          = errors.New("intlfmt: factories store is nil")
	ErrInvalidMaxEngines = errors.New("intlfmt: max engines must not be negative")
	ErrMissingLocaleData = errors.New("intlfmt: missing locale data")
	ErrMissingPreset     = errors.New("intlfmt: missing named format")
	ErrMissingMessage    = errors.New("intlfmt: missing message")
	ErrMissingMessageID  = errors.New("intlfmt: message id is required")
	ErrFormatPanic       = errors.New("intlfmt: formatter panicked")
)
