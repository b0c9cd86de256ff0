package validation

// Error codes identify each variant. They double as stable keys for
// translation catalogs and JSON snapshots.
const (
	CodeDoesNotExist   = "does_not_exist"
	CodeMinLength      = "min_length"
	CodeMaxLength      = "max_length"
	CodeNotRegex       = "not_regex"
	CodeNotNumeric     = "not_numeric"
	CodeNotInRange     = "not_in_range"
	CodeNotLessThan    = "not_less_than"
	CodeNotGreaterThan = "not_greater_than"
	CodeNotOneOf       = "not_one_of"
	CodeNotFormat      = "not_format"
	CodeNotEqualTo     = "not_equal_to"
	CodeCustom         = "custom"
)

// Error is a single rule failure. The set of implementations is closed: only
// the variants declared in this file satisfy it.
type Error interface {
	Code() string
	isValidationError()
}

// DoesNotExist reports an empty input where a value is required.
type DoesNotExist struct{}

// MinLength reports an input shorter than N characters.
type MinLength struct {
	N int `json:"n"`
}

// MaxLength reports an input longer than N characters.
type MaxLength struct {
	N int `json:"n"`
}

// NotRegex reports an input that does not match Pattern.
type NotRegex struct {
	Pattern string `json:"pattern"`
}

// NotNumeric reports an input that is not an integer.
type NotNumeric struct{}

// NotInRange reports an unparsable input for a bounded numeric rule.
type NotInRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// NotLessThan reports a value that is not below N.
type NotLessThan struct {
	N int `json:"n"`
}

// NotGreaterThan reports a value that is not above N.
type NotGreaterThan struct {
	N int `json:"n"`
}

// NotOneOf reports an input outside the allowed Options.
type NotOneOf struct {
	Options []string `json:"options"`
}

// NotFormat reports an input that fails a named format check (email, uri...).
type NotFormat struct {
	Format string `json:"format"`
}

// NotEqualTo reports an input that differs from the value of Field.
type NotEqualTo struct {
	Field string `json:"field"`
}

// Custom carries a caller supplied message.
type Custom struct {
	Message string `json:"message"`
}

func (DoesNotExist) Code() string   { return CodeDoesNotExist }
func (MinLength) Code() string      { return CodeMinLength }
func (MaxLength) Code() string      { return CodeMaxLength }
func (NotRegex) Code() string       { return CodeNotRegex }
func (NotNumeric) Code() string     { return CodeNotNumeric }
func (NotInRange) Code() string     { return CodeNotInRange }
func (NotLessThan) Code() string    { return CodeNotLessThan }
func (NotGreaterThan) Code() string { return CodeNotGreaterThan }
func (NotOneOf) Code() string       { return CodeNotOneOf }
func (NotFormat) Code() string      { return CodeNotFormat }
func (NotEqualTo) Code() string     { return CodeNotEqualTo }
func (Custom) Code() string         { return CodeCustom }

func (DoesNotExist) isValidationError()   {}
func (MinLength) isValidationError()      {}
func (MaxLength) isValidationError()      {}
func (NotRegex) isValidationError()       {}
func (NotNumeric) isValidationError()     {}
func (NotInRange) isValidationError()     {}
func (NotLessThan) isValidationError()    {}
func (NotGreaterThan) isValidationError() {}
func (NotOneOf) isValidationError()       {}
func (NotFormat) isValidationError()      {}
func (NotEqualTo) isValidationError()     {}
func (Custom) isValidationError()         {}

// Detail is the plain-data form of an Error used in snapshots and JSON
// payloads.
type Detail struct {
	Code   string         `json:"code"`
	Params map[string]any `json:"params,omitempty"`
}

// Describe flattens err into a Detail. A nil err yields the zero Detail.
func Describe(err Error) Detail {
	if err == nil {
		return Detail{}
	}
	return Detail{Code: err.Code(), Params: Params(err)}
}

// Params returns the variant parameters keyed by name, or nil for variants
// without parameters.
func Params(err Error) map[string]any {
	switch e := err.(type) {
	case MinLength:
		return map[string]any{"min": e.N}
	case MaxLength:
		return map[string]any{"max": e.N}
	case NotRegex:
		return map[string]any{"pattern": e.Pattern}
	case NotInRange:
		return map[string]any{"min": e.Min, "max": e.Max}
	case NotLessThan:
		return map[string]any{"max": e.N}
	case NotGreaterThan:
		return map[string]any{"min": e.N}
	case NotOneOf:
		return map[string]any{"options": append([]string(nil), e.Options...)}
	case NotFormat:
		return map[string]any{"format": e.Format}
	case NotEqualTo:
		return map[string]any{"field": e.Field}
	case Custom:
		return map[string]any{"message": e.Message}
	default:
		return nil
	}
}
