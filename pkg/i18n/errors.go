package i18n

import "errors"

var (
	ErrEmptyLanguage = errors.New("i18n: language cannot be empty")
	ErrInvalidFile   = errors.New("i18n: invalid translation file")
	ErrInvalidOption = errors.New("i18n: invalid format option")
	ErrInvalidValue  = errors.New("i18n: invalid value")
	ErrNoLocaleData  = errors.New("i18n: no locale data")
	ErrSyntax        = errors.New("i18n: message syntax error")
	ErrMissingOther  = errors.New("i18n: plural and select arguments require an other option")
	ErrMissingValue  = errors.New("i18n: a value must be provided for the argument")
	ErrNoOption      = errors.New("i18n: no option matches the argument value")
)
