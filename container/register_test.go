package container_test

import (
	"testing"

	"github.com/sghaida/cradle/container"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settings is a plain struct used by the instance-registration tests.
type settings struct {
	Name    string
	Retries int
}

//
// -----------------------------------------------------------------------------
// Instance registration
// -----------------------------------------------------------------------------

// TestSingletonInstance_AlwaysTheRegisteredValue verifies a pre-built value
// registered as a singleton comes back identical on every resolution.
func TestSingletonInstance_AlwaysTheRegisteredValue(t *testing.T) {
	t.Parallel()

	original := &memLogger{}
	c := container.New()
	require.NoError(t, container.AddSingletonInstance[Logger](c, original))

	for i := 0; i < 3; i++ {
		got, err := container.Resolve[Logger](c)
		require.NoError(t, err)
		assert.Same(t, original, got)
	}
}

// TestTransientInstance_CopiesPointee verifies a pointer registered as a
// transient instance yields a fresh shallow copy per resolution: handles are
// distinct, carry the registered state, and mutating one does not touch the
// original.
func TestTransientInstance_CopiesPointee(t *testing.T) {
	t.Parallel()

	original := &settings{Name: "default", Retries: 3}
	c := container.New()
	require.NoError(t, container.AddTransientInstance(c, original))

	first, err := container.Resolve[*settings](c)
	require.NoError(t, err)
	second, err := container.Resolve[*settings](c)
	require.NoError(t, err)

	assert.NotSame(t, original, first)
	assert.NotSame(t, first, second)
	assert.Equal(t, *original, *first)

	first.Retries = 99
	assert.Equal(t, 3, original.Retries)
	assert.Equal(t, 3, second.Retries)
}

// TestTransientInstance_NonPointerValue verifies non-pointer instances are
// handed back by value; the unwrap copy keeps resolutions independent.
func TestTransientInstance_NonPointerValue(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, container.AddTransientInstance(c, settings{Name: "v", Retries: 1}))

	first, err := container.Resolve[settings](c)
	require.NoError(t, err)
	first.Retries = 99

	second, err := container.Resolve[settings](c)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Retries)
}

//
// -----------------------------------------------------------------------------
// Provider composition
// -----------------------------------------------------------------------------

// TestProvider_ResolvesOwnDependencies verifies a provider for one type can
// resolve another registered service during its own construction and the
// result holds a valid reference to it.
func TestProvider_ResolvesOwnDependencies(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, container.AddSingleton[Logger, memLogger](c))
	require.NoError(t, container.AddTransientProvider(c, func(c *container.Container) (Mailer, error) {
		lg, err := container.Resolve[Logger](c)
		if err != nil {
			return nil, err
		}
		return &logMailer{logger: lg}, nil
	}))

	m, err := container.Resolve[Mailer](c)
	require.NoError(t, err)

	mailer := m.(*logMailer)
	require.NotNil(t, mailer.logger)

	shared, err := container.Resolve[Logger](c)
	require.NoError(t, err)
	assert.Same(t, shared, mailer.logger)
}

// TestScenario_SingletonLoggerTransientService wires the canonical scenario:
// a singleton logger with a construction probe and a transient service built
// by a provider that resolves the logger. Three resolutions must yield three
// distinct services wrapping one logger built exactly once.
func TestScenario_SingletonLoggerTransientService(t *testing.T) {
	t.Parallel()

	c := container.New()
	built := 0
	require.NoError(t, container.AddSingletonFunc(c, func() (Logger, error) {
		built++
		return &memLogger{}, nil
	}))
	require.NoError(t, container.AddTransientProvider(c, func(c *container.Container) (Mailer, error) {
		lg, err := container.Resolve[Logger](c)
		if err != nil {
			return nil, err
		}
		return &logMailer{logger: lg}, nil
	}))

	mailers := make([]*logMailer, 3)
	for i := range mailers {
		m, err := container.Resolve[Mailer](c)
		require.NoError(t, err)
		mailers[i] = m.(*logMailer)
	}

	assert.NotSame(t, mailers[0], mailers[1])
	assert.NotSame(t, mailers[1], mailers[2])
	assert.NotSame(t, mailers[0], mailers[2])

	assert.Same(t, mailers[0].logger, mailers[1].logger)
	assert.Same(t, mailers[1].logger, mailers[2].logger)
	assert.Equal(t, 1, built)
}

// TestFunc_ZeroArgumentCreator verifies the zero-argument creator shape for
// both lifetimes.
func TestFunc_ZeroArgumentCreator(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, container.AddTransientFunc(c, func() (*settings, error) {
		return &settings{Name: "fresh"}, nil
	}))

	first := container.MustResolve[*settings](c)
	second := container.MustResolve[*settings](c)
	assert.NotSame(t, first, second)
	assert.Equal(t, "fresh", first.Name)
}
