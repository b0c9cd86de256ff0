package render

// Option configures a Formatter.
type Option func(*Formatter)

// WithTranslator routes messages through t. Keys follow TranslationKey.
func WithTranslator(t Translator) Option {
	return func(f *Formatter) {
		f.translator = t
	}
}

// WithLocale selects the locale passed to the Translator.
func WithLocale(locale string) Option {
	return func(f *Formatter) {
		f.locale = locale
	}
}

// WithSeparator overrides the ", " joiner used by Join.
func WithSeparator(sep string) Option {
	return func(f *Formatter) {
		f.separator = sep
	}
}

// WithEmptyText overrides the NoErrors sentinel used by Join.
func WithEmptyText(text string) Option {
	return func(f *Formatter) {
		f.empty = text
	}
}

// WithOnMissing installs a handler for keys the Translator cannot resolve.
// Without one the English template is used.
func WithOnMissing(fn MissingTranslationHandler) Option {
	return func(f *Formatter) {
		f.onMissing = fn
	}
}

// WithListClass sets the CSS class of the HTML error list.
func WithListClass(class string) Option {
	return func(f *Formatter) {
		if class != "" {
			f.listClass = class
		}
	}
}
