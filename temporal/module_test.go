package temporal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/chronotype/registry"
)

// newRegistry builds a registry with the full temporal module installed.
func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	(&Module{}).Register(r)
	return r
}

func TestModule_RegistersAllTypes(t *testing.T) {
	t.Parallel()

	// --- Arrange & Act ---
	r := newRegistry(t)

	// --- Assert ---
	assert.Equal(t, []registry.TypeName{"datetime", "duration", "locale", "timezone"}, r.TypeNames())
}

func TestModule_RegistrationIsIdempotent(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := newRegistry(t)
	before, err := r.Describe(DateTimeName)
	require.NoError(t, err)

	// --- Act ---
	(&Module{}).Register(r)

	// --- Assert ---
	after, err := r.Describe(DateTimeName)
	require.NoError(t, err)
	assert.True(t, after.Target.Equals(before.Target))
	assert.Len(t, after.Rules(), 2*len(before.Rules()),
		"re-registering appends rules but the earlier copies keep winning")
}

func TestModule_RuleOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r := newRegistry(t)

	testCases := []struct {
		typeName registry.TypeName
		rules    []string
	}{
		{typeName: DateTimeName, rules: []string{"from-epoch-seconds", "now-literal", "from-fields"}},
		{typeName: DurationName, rules: []string{"from-seconds", "from-fields"}},
		{typeName: TimeZoneName, rules: []string{"from-name"}},
		{typeName: LocaleName, rules: []string{"from-tag", "from-language-tagger"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.typeName), func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			desc, err := r.Describe(tc.typeName)
			require.NoError(t, err)

			// --- Assert ---
			names := make([]string, 0, len(desc.Rules()))
			for _, rule := range desc.Rules() {
				names = append(names, rule.Name)
			}
			assert.Equal(t, tc.rules, names)
		})
	}
}
