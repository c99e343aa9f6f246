package temporal

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/chronotype/registry"
	"github.com/zclconf/go-cty/cty"
	"golang.org/x/text/language"
)

// LocaleName is the registry name of the locale type.
const LocaleName registry.TypeName = "locale"

// LocaleType is the canonical capsule type carrying a BCP 47 language.Tag.
var LocaleType = cty.CapsuleWithOps("locale", reflect.TypeOf(language.Tag{}), &cty.CapsuleOps{
	GoString: func(v any) string {
		return fmt.Sprintf("temporal.LocaleVal(language.MustParse(%q))", v.(*language.Tag).String())
	},
	TypeGoString: func(reflect.Type) string {
		return "temporal.LocaleType"
	},
	Equals: func(a, b any) cty.Value {
		return cty.BoolVal(*a.(*language.Tag) == *b.(*language.Tag))
	},
	RawEquals: func(a, b any) bool {
		return *a.(*language.Tag) == *b.(*language.Tag)
	},
})

// LanguageTagger is implemented by foreign values that can name their own
// BCP 47 language tag. Any capsule value whose encapsulated Go value
// implements it is accepted as a locale coercion source, no matter which
// package defined it.
type LanguageTagger interface {
	LanguageTag() string
}

// LocaleVal wraps tag in a canonical locale value.
func LocaleVal(tag language.Tag) cty.Value {
	return cty.CapsuleVal(LocaleType, &tag)
}

// AsLocale unwraps a canonical locale value. It panics if v is not a known,
// non-null value of LocaleType.
func AsLocale(v cty.Value) language.Tag {
	return *v.EncapsulatedValue().(*language.Tag)
}

// loadLocale parses a BCP 47 tag. Underscore separators are normalized to
// hyphens first, so the common POSIX spelling "he_IL" loads the same tag as
// "he-IL". Parsing errors come straight from language.Parse.
func loadLocale(tag string) (language.Tag, error) {
	return language.Parse(strings.ReplaceAll(tag, "_", "-"))
}

// localeFromTag resolves a tag string through loadLocale.
func localeFromTag(v cty.Value) (cty.Value, error) {
	tag, err := loadLocale(v.AsString())
	if err != nil {
		return cty.NilVal, err
	}
	return LocaleVal(tag), nil
}

// isLanguageTagger matches foreign capsules whose encapsulated value can
// name its language tag. Canonical locale values never reach this
// predicate: they take the identity path first.
func isLanguageTagger(v cty.Value) bool {
	if !registry.IsCapsule(v) {
		return false
	}
	_, ok := v.EncapsulatedValue().(LanguageTagger)
	return ok
}

// localeFromTagger asks the foreign value for its tag and delegates to the
// same loader the string rule uses.
func localeFromTagger(v cty.Value) (cty.Value, error) {
	tagger := v.EncapsulatedValue().(LanguageTagger)
	tag, err := loadLocale(tagger.LanguageTag())
	if err != nil {
		return cty.NilVal, err
	}
	return LocaleVal(tag), nil
}
