package registry

import (
	"testing"

	"go-context-registry/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBody(required ...string) model.SchemaBody {
	return model.SchemaBody{Required: required}
}

func TestRegisterVersion(t *testing.T) {
	t.Run("advances active pointer", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RegisterVersion("1.0.0", testBody("pipeline_id"), "initial")
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", m.ActiveVersion())

		_, err = m.RegisterVersion("1.1.0", testBody("pipeline_id", "final_query"), "add final_query")
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", m.ActiveVersion())
	})

	t.Run("rejects invalid version strings", func(t *testing.T) {
		m := NewManager(nil)
		for _, v := range []string{"", "1", "1.0", "v1.0.0", "abc", "1.0.0+meta+bad"} {
			_, err := m.RegisterVersion(v, testBody(), "")
			assert.ErrorIs(t, err, ErrInvalidVersion, "version %q", v)
		}
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RegisterVersion("1.0.0", testBody(), "")
		require.NoError(t, err)

		_, err = m.RegisterVersion("1.0.0", testBody("extra"), "")
		assert.ErrorIs(t, err, ErrDuplicateVersion)
	})

	t.Run("rejects non-monotonic versions and leaves state unchanged", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RegisterVersion("2.0.0", testBody("pipeline_id"), "")
		require.NoError(t, err)

		_, err = m.RegisterVersion("1.5.0", testBody(), "")
		assert.ErrorIs(t, err, ErrNonMonotonicVersion)

		assert.Equal(t, "2.0.0", m.ActiveVersion())
		assert.Len(t, m.History(), 1)
		_, err = m.Resolve("1.5.0")
		assert.ErrorIs(t, err, ErrUnknownVersion)
	})

	t.Run("pre-release orders below its release", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RegisterVersion("2.0.0-coc", testBody(), "")
		require.NoError(t, err)
		_, err = m.RegisterVersion("2.0.0", testBody(), "")
		require.NoError(t, err)

		_, err = m.RegisterVersion("2.0.0-other", testBody(), "")
		assert.ErrorIs(t, err, ErrNonMonotonicVersion)
	})
}

func TestSchemaImmutability(t *testing.T) {
	m := NewManager(nil)
	body := model.SchemaBody{
		Required: []string{"pipeline_id"},
		Sources: map[string]model.SourceSchema{
			"txn_data": {Features: map[string]model.FeatureSpec{
				"amount_spent": {Type: model.FeatureNumerical, Default: 0.0},
			}},
		},
	}
	_, err := m.RegisterVersion("1.0.0", body, "")
	require.NoError(t, err)

	// Mutating the caller's copy must not leak into the store
	body.Required[0] = "tampered"
	body.Sources["txn_data"].Features["amount_spent"] = model.FeatureSpec{Type: model.FeatureText}

	sv, err := m.Resolve("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"pipeline_id"}, sv.Body.Required)
	assert.Equal(t, model.FeatureNumerical, sv.Body.Sources["txn_data"].Features["amount_spent"].Type)

	// Mutating a resolved copy must not leak either
	sv.Body.Required[0] = "tampered"
	again, err := m.Resolve("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, []string{"pipeline_id"}, again.Body.Required)
}

func TestHistoryOrder(t *testing.T) {
	m := NewManager(nil)
	versions := []string{"1.0.0", "1.1.0", "2.0.0", "2.1.0"}
	for _, v := range versions {
		_, err := m.RegisterVersion(v, testBody(), "")
		require.NoError(t, err)
	}

	history := m.History()
	require.Len(t, history, len(versions))
	for i, e := range history {
		assert.Equal(t, versions[i], e.Version)
		assert.Equal(t, model.EventRegister, e.Kind)
	}
}

func TestResolveCurrent(t *testing.T) {
	t.Run("fails before any registration", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.ResolveCurrent()
		assert.ErrorIs(t, err, ErrNoActiveVersion)
	})

	t.Run("returns the active schema", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RegisterVersion("1.0.0", testBody("pipeline_id"), "")
		require.NoError(t, err)

		sv, err := m.ResolveCurrent()
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", sv.Version)
		assert.Equal(t, []string{"pipeline_id"}, sv.Body.Required)
	})
}

func TestRollback(t *testing.T) {
	setup := func(t *testing.T) *Manager {
		m := NewManager(nil)
		for _, v := range []string{"1.0.0", "2.0.0", "3.0.0"} {
			_, err := m.RegisterVersion(v, testBody(), "")
			require.NoError(t, err)
		}
		return m
	}

	t.Run("rollback to a prior version", func(t *testing.T) {
		m := setup(t)
		entry, err := m.RollbackTo("1.0.0")
		require.NoError(t, err)
		assert.Equal(t, model.EventRollback, entry.Kind)

		sv, err := m.ResolveCurrent()
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", sv.Version)
	})

	t.Run("unknown version leaves the pointer unchanged", func(t *testing.T) {
		m := setup(t)
		_, err := m.RollbackTo("9.9.9")
		assert.ErrorIs(t, err, ErrUnknownVersion)
		assert.Equal(t, "3.0.0", m.ActiveVersion())
	})

	t.Run("rollback is logged, never deleted", func(t *testing.T) {
		m := setup(t)
		_, err := m.RollbackTo("1.0.0")
		require.NoError(t, err)

		history := m.History()
		require.Len(t, history, 4)
		assert.Equal(t, model.EventRollback, history[3].Kind)
		assert.Equal(t, "1.0.0", history[3].Version)

		// Future versions stay registered and can be rolled forward to
		_, err = m.RollbackTo("3.0.0")
		require.NoError(t, err)
		assert.Equal(t, "3.0.0", m.ActiveVersion())
	})

	t.Run("rollback is reversible", func(t *testing.T) {
		m := setup(t)
		before, err := m.Resolve("1.0.0")
		require.NoError(t, err)

		_, err = m.RollbackTo("1.0.0")
		require.NoError(t, err)
		_, err = m.RollbackTo("2.0.0")
		require.NoError(t, err)
		_, err = m.RollbackTo("1.0.0")
		require.NoError(t, err)

		assert.Equal(t, "1.0.0", m.ActiveVersion())
		after, err := m.Resolve("1.0.0")
		require.NoError(t, err)
		assert.Equal(t, before.Body, after.Body)
	})

	t.Run("rollback to previous", func(t *testing.T) {
		m := setup(t)
		entry, err := m.RollbackToPrevious()
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", entry.Version)

		entry, err = m.RollbackToPrevious()
		require.NoError(t, err)
		assert.Equal(t, "1.0.0", entry.Version)

		_, err = m.RollbackToPrevious()
		assert.ErrorIs(t, err, ErrNoPreviousVersion)
		assert.Equal(t, "1.0.0", m.ActiveVersion())
	})

	t.Run("rollback to previous without any registration", func(t *testing.T) {
		m := NewManager(nil)
		_, err := m.RollbackToPrevious()
		assert.ErrorIs(t, err, ErrNoActiveVersion)
	})
}

func TestVersionLogLatest(t *testing.T) {
	t.Run("empty log", func(t *testing.T) {
		l := NewVersionLog(NewSchemaStore())
		_, err := l.Latest()
		assert.ErrorIs(t, err, ErrEmptyLog)
	})

	t.Run("highest semver wins, rollbacks ignored", func(t *testing.T) {
		m := NewManager(nil)
		for _, v := range []string{"1.0.0", "2.0.0"} {
			_, err := m.RegisterVersion(v, testBody(), "")
			require.NoError(t, err)
		}
		_, err := m.RollbackTo("1.0.0")
		require.NoError(t, err)

		latest, err := m.log.Latest()
		require.NoError(t, err)
		assert.Equal(t, "2.0.0", latest.Version)
	})
}

func TestVersionLogDanglingReference(t *testing.T) {
	store := NewSchemaStore()
	l := NewVersionLog(store)
	err := l.Append(model.VersionLogEntry{ID: "x", Kind: model.EventRegister, Version: "1.0.0"})
	assert.ErrorIs(t, err, ErrDanglingReference)
	assert.Zero(t, l.Len())
}

func TestRestore(t *testing.T) {
	t.Run("rebuilds state", func(t *testing.T) {
		src := NewManager(nil)
		for _, v := range []string{"1.0.0", "2.0.0"} {
			_, err := src.RegisterVersion(v, testBody("pipeline_id"), "")
			require.NoError(t, err)
		}
		_, err := src.RollbackTo("1.0.0")
		require.NoError(t, err)

		var schemas []model.SchemaVersion
		for _, v := range []string{"1.0.0", "2.0.0"} {
			sv, err := src.Resolve(v)
			require.NoError(t, err)
			schemas = append(schemas, sv)
		}

		dst := NewManager(nil)
		require.NoError(t, dst.Restore(schemas, src.History(), src.ActiveVersion()))
		assert.Equal(t, "1.0.0", dst.ActiveVersion())
		assert.Equal(t, src.History(), dst.History())
	})

	t.Run("rejects dangling active pointer", func(t *testing.T) {
		m := NewManager(nil)
		err := m.Restore(nil, nil, "1.0.0")
		assert.ErrorIs(t, err, ErrUnknownVersion)
	})
}

func TestSeeds(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, SeedManager(m))

	// 2.0.0-coc registers between 1.0.0 and 2.0.0
	regs := m.Registrations()
	require.Len(t, regs, 3)
	assert.Equal(t, "1.0.0", regs[0].Version)
	assert.Equal(t, "2.0.0-coc", regs[1].Version)
	assert.Equal(t, "2.0.0", regs[2].Version)
	assert.Equal(t, "2.0.0", m.ActiveVersion())

	sv, err := m.Resolve("2.0.0")
	require.NoError(t, err)
	assert.Contains(t, sv.Body.Required, "global_settings")
	assert.Contains(t, sv.Body.Sources, "customer_notes")
}
