package definition

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/validation"
)

func compileRule(cfg RuleConfig) (validation.Rule, error) {
	rule, err := baseRule(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.Optional {
		rule = validation.Optional(rule)
	}
	return rule, nil
}

func baseRule(cfg RuleConfig) (validation.Rule, error) {
	kind := strings.TrimSpace(cfg.Kind)
	switch kind {
	case RuleRequired:
		return validation.Existence(), nil
	case RuleMinLength:
		n, err := intParam(kind, "value", cfg.Value)
		if err != nil {
			return nil, err
		}
		return validation.MinLen(n), nil
	case RuleMaxLength:
		n, err := intParam(kind, "value", cfg.Value)
		if err != nil {
			return nil, err
		}
		return validation.MaxLen(n), nil
	case RulePattern:
		if cfg.Pattern == "" {
			return nil, fmt.Errorf("%w: %s requires pattern", ErrMissingParam, kind)
		}
		return validation.Pattern(cfg.Pattern)
	case RuleNumeric:
		return validation.Numeric(), nil
	case RuleRange:
		lo, err := intParam(kind, "min", cfg.Min)
		if err != nil {
			return nil, err
		}
		hi, err := intParam(kind, "max", cfg.Max)
		if err != nil {
			return nil, err
		}
		return validation.NumericRange(lo, hi), nil
	case RuleLessThan:
		n, err := intParam(kind, "value", cfg.Value)
		if err != nil {
			return nil, err
		}
		return validation.LessThan(n), nil
	case RuleGreaterThan:
		n, err := intParam(kind, "value", cfg.Value)
		if err != nil {
			return nil, err
		}
		return validation.GreaterThan(n), nil
	case RuleOneOf:
		if len(cfg.Options) == 0 {
			return nil, fmt.Errorf("%w: %s requires options", ErrMissingParam, kind)
		}
		return validation.OneOf(cfg.Options...), nil
	case RuleFormat:
		if cfg.Format == "" {
			return nil, fmt.Errorf("%w: %s requires format", ErrMissingParam, kind)
		}
		return validation.Format(cfg.Format)
	case RuleCustom:
		if cfg.Message == "" || cfg.Pattern == "" {
			return nil, fmt.Errorf("%w: %s requires message and pattern", ErrMissingParam, kind)
		}
		re, err := regexp.Compile(cfg.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", validation.ErrInvalidPattern, err)
		}
		return validation.Check(cfg.Message, re.MatchString), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRule, cfg.Kind)
	}
}

func compileDependency(cfg DependencyConfig, declared map[string]bool) (form.DependencyValidator, error) {
	switch strings.TrimSpace(cfg.Kind) {
	case DependencySameValue:
		source := strings.TrimSpace(cfg.Source)
		target := strings.TrimSpace(cfg.Target)
		if source == "" || target == "" {
			return nil, fmt.Errorf("%w: %s requires source and target", ErrMissingParam, cfg.Kind)
		}
		for _, name := range []string{source, target} {
			if !declared[name] {
				return nil, fmt.Errorf("%w %q", ErrUnknownField, name)
			}
		}
		return form.HaveSameValue(source, target), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownDependency, cfg.Kind)
	}
}

func intParam(kind, name string, value *int) (int, error) {
	if value == nil {
		return 0, fmt.Errorf("%w: %s requires %s", ErrMissingParam, kind, name)
	}
	return *value, nil
}
