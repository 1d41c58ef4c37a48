package checkit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/checks"
)

func TestCompile(t *testing.T) {
	t.Parallel()
	t.Run("empty definition always succeeds", func(t *testing.T) {
		c, err := checkit.Compile()
		require.NoError(t, err)
		assert.NoError(t, c.Eval("anything", nil))
		assert.NoError(t, c.Eval(nil, nil))
	})

	t.Run("single definition compiles without an and wrapper", func(t *testing.T) {
		c, err := checkit.Compile(checks.Gt(0))
		require.NoError(t, err)
		assert.Equal(t, "gt(0)", c.Name())
	})

	t.Run("raw boolean predicate", func(t *testing.T) {
		c, err := checkit.Compile(func(v any) bool { return v == "ok" })
		require.NoError(t, err)
		assert.NoError(t, c.Eval("ok", nil))

		err = c.Eval("nope", nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Contains(t, f.Error(), "returned [false]")
	})

	t.Run("several definitions combine with an implicit and", func(t *testing.T) {
		c, err := checkit.Compile(checks.Gt(0), checks.Lt(10))
		require.NoError(t, err)
		assert.NoError(t, c.Eval(5, nil))
		assert.Error(t, c.Eval(50, nil))
	})

	t.Run("a slice definition unwraps to an implicit and", func(t *testing.T) {
		c, err := checkit.Compile([]any{checks.Gt(0), checks.IsMultipleOf(100)})
		require.NoError(t, err)
		assert.NoError(t, c.Eval(300, nil))

		err = c.Eval(250, nil)
		var cf *checkit.CompositionFailure
		require.ErrorAs(t, err, &cf)
	})

	t.Run("nested groups beyond one level are rejected", func(t *testing.T) {
		_, err := checkit.Compile([]any{[]any{checks.Gt(0)}})
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})

	t.Run("nil definition is rejected", func(t *testing.T) {
		_, err := checkit.Compile(nil)
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})

	t.Run("unsupported callable shape is rejected", func(t *testing.T) {
		_, err := checkit.Compile(func(int) bool { return true })
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})

	t.Run("panicking callable fails instead of crashing", func(t *testing.T) {
		c, err := checkit.Compile(func(v any) bool { return v.(int) > 0 })
		require.NoError(t, err)

		err = c.Eval("not an int", nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, checkit.KindType, f.Classification())
	})
}

func TestCompileDef(t *testing.T) {
	t.Parallel()
	t.Run("custom help message", func(t *testing.T) {
		c, err := checkit.Compile(checkit.WithMessage(func(v any) bool { return v.(int) > 0 }, "Must be positive"))
		require.NoError(t, err)

		err = c.Eval(-1, nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Contains(t, f.Error(), "Must be positive")
	})

	t.Run("custom message with template fields", func(t *testing.T) {
		def := checkit.Def{
			Fn:      func(v any) bool { return v.(int) > 0 },
			HelpMsg: "Must be > {minimum}",
			Fields:  map[string]any{"minimum": 0},
		}
		c, err := checkit.Compile(def)
		require.NoError(t, err)

		err = c.Eval(-1, nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		msg, merr := f.Message()
		require.NoError(t, merr)
		assert.Equal(t, "Must be > 0", msg)
	})

	t.Run("custom failure spec", func(t *testing.T) {
		spec := &checkit.FailureSpec{Name: "NotPositive", HelpMsg: "value should be positive"}
		c, err := checkit.Compile(checkit.WithFailure(func(v any) bool { return v.(int) > 0 }, spec))
		require.NoError(t, err)

		err = c.Eval(-1, nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "NotPositive", f.Name())
		assert.Contains(t, f.Error(), "value should be positive")
	})

	t.Run("def without a callable is rejected", func(t *testing.T) {
		_, err := checkit.Compile(checkit.Def{HelpMsg: "orphan message"})
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})
}

func TestCompileMap(t *testing.T) {
	t.Parallel()
	t.Run("keys become help messages", func(t *testing.T) {
		c, err := checkit.CompileMap(map[string]any{
			"Must be positive": func(v any) bool { return v.(int) > 0 },
		})
		require.NoError(t, err)
		assert.NoError(t, c.Eval(5, nil))

		err = c.Eval(-1, nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Contains(t, f.Error(), "Must be positive")
	})

	t.Run("pairs combine with and in sorted key order", func(t *testing.T) {
		c, err := checkit.CompileMap(map[string]any{
			"b: must be even":     checks.IsEven(),
			"a: must be positive": checks.Gt(0),
		})
		require.NoError(t, err)
		assert.NoError(t, c.Eval(4, nil))

		err = c.Eval(-2, nil)
		var cf *checkit.CompositionFailure
		require.ErrorAs(t, err, &cf)
		require.NotEmpty(t, cf.Results)
		assert.Equal(t, "gt(0)", cf.Results[0].Name)
	})

	t.Run("value may group a callable with a failure spec", func(t *testing.T) {
		spec := &checkit.FailureSpec{Name: "NotPositive"}
		c, err := checkit.CompileMap(map[string]any{
			"Must be positive": []any{func(v any) bool { return v.(int) > 0 }, spec},
		})
		require.NoError(t, err)

		err = c.Eval(-1, nil)
		var f *checkit.Failure
		require.ErrorAs(t, err, &f)
		assert.Equal(t, "NotPositive", f.Name())
	})

	t.Run("two callables in one pair are rejected", func(t *testing.T) {
		fn := func(any) bool { return true }
		_, err := checkit.CompileMap(map[string]any{
			"msg": []any{fn, fn},
		})
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})

	t.Run("two help messages in one pair are rejected", func(t *testing.T) {
		_, err := checkit.CompileMap(map[string]any{
			"msg": []any{func(any) bool { return true }, "another msg"},
		})
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})

	t.Run("pair without a callable is rejected", func(t *testing.T) {
		_, err := checkit.CompileMap(map[string]any{
			"msg": []any{&checkit.FailureSpec{Name: "Orphan"}},
		})
		assert.ErrorIs(t, err, checkit.ErrBadDefinition)
	})
}
