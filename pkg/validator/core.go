package validator

import (
	"errors"
	"strings"
)

// ValidationError is one failed check on a named field. TranslationKey and
// TranslationValues feed the i18n catalog when the error reaches a client.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures in the order the checks ran.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Fields lists each failing field once, first failure first.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]struct{}, len(ve))
	for _, e := range ve {
		if _, ok := seen[e.Field]; ok {
			continue
		}
		seen[e.Field] = struct{}{}
		fields = append(fields, e.Field)
	}
	return fields
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the failures as ValidationErrors, or nil.
func Apply(rules ...Rule) error {
	var failed ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			failed = append(failed, rule.Error)
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return failed
}

// Merge folds rule failures and rejected domain values into one
// ValidationErrors. nil errors are skipped. It returns the first error that is
// neither kind unchanged, and nil when nothing failed.
func Merge(errs ...error) error {
	var merged ValidationErrors
	for _, err := range errs {
		if err == nil {
			continue
		}
		if verrs := ExtractValidationErrors(err); verrs != nil {
			merged = append(merged, verrs...)
			continue
		}
		if verrs := FromDomainError(err); verrs != nil {
			merged = append(merged, verrs...)
			continue
		}
		return err
	}
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, or nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}
