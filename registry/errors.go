package registry

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// UnknownTypeError reports an operation against a type name that was never
// registered. It signals a wiring mistake rather than bad input data, so
// callers usually treat it as fatal.
type UnknownTypeError struct {
	Name TypeName
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("type %q is not registered", string(e.Name))
}

// NoApplicableRuleError reports an input that was not already canonical and
// matched none of the target type's coercion rules.
type NoApplicableRuleError struct {
	Name  TypeName
	Given cty.Type
}

func (e *NoApplicableRuleError) Error() string {
	given := "null"
	if e.Given != cty.NilType {
		given = e.Given.FriendlyName()
	}
	return fmt.Sprintf("no coercion to %q from %s", string(e.Name), given)
}

// ConversionFailedError reports that the matched rule's conversion rejected
// the input. The constructor's own error is preserved unchanged underneath.
type ConversionFailedError struct {
	Name TypeName
	Rule string
	Err  error
}

func (e *ConversionFailedError) Error() string {
	return fmt.Sprintf("coercing to %q via rule %q: %s", string(e.Name), e.Rule, e.Err)
}

// Unwrap returns the underlying constructor error.
func (e *ConversionFailedError) Unwrap() error { return e.Err }
