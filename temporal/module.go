package temporal

import (
	"github.com/vk/chronotype/registry"
)

// Module registers the four canonical types and their coercion rules. It
// implements registry.Module and is part of the application's core module
// list.
type Module struct{}

// Register wires the full rule table. Rule order within each type matters:
// Coerce applies the first matching rule, so the narrow "now" literal rule
// sits between the broader number and mapping rules for datetime.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterType(DateTimeName, DateTimeType)
	mustAdd(r, DateTimeName, registry.CoercionRule{
		Name:    "from-epoch-seconds",
		Matches: registry.IsNumber,
		Convert: dateTimeFromEpoch,
	})
	mustAdd(r, DateTimeName, registry.CoercionRule{
		Name:    "now-literal",
		Matches: registry.IsLiteral("now"),
		Convert: dateTimeNow,
	})
	mustAdd(r, DateTimeName, registry.CoercionRule{
		Name:    "from-fields",
		Matches: registry.IsMapping,
		Convert: dateTimeFromFields,
	})

	r.RegisterType(DurationName, DurationType)
	mustAdd(r, DurationName, registry.CoercionRule{
		Name:    "from-seconds",
		Matches: registry.IsNumber,
		Convert: durationFromSeconds,
	})
	mustAdd(r, DurationName, registry.CoercionRule{
		Name:    "from-fields",
		Matches: registry.IsMapping,
		Convert: durationFromFields,
	})

	r.RegisterType(TimeZoneName, TimeZoneType)
	mustAdd(r, TimeZoneName, registry.CoercionRule{
		Name:    "from-name",
		Matches: registry.IsString,
		Convert: timeZoneFromString,
	})

	r.RegisterType(LocaleName, LocaleType)
	mustAdd(r, LocaleName, registry.CoercionRule{
		Name:    "from-tag",
		Matches: registry.IsString,
		Convert: localeFromTag,
	})
	mustAdd(r, LocaleName, registry.CoercionRule{
		Name:    "from-language-tagger",
		Matches: isLanguageTagger,
		Convert: localeFromTagger,
	})
}

// mustAdd panics on a failed AddCoercion. Register always creates the type
// before adding its rules, so a failure here is a programming error.
func mustAdd(r *registry.Registry, name registry.TypeName, rule registry.CoercionRule) {
	if err := r.AddCoercion(name, rule); err != nil {
		panic(err)
	}
}
