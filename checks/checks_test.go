package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/checkit"
	"github.com/dmitrymomot/checkit/checks"
)

// failureOf extracts the *checkit.Failure from a check outcome.
func failureOf(t *testing.T, err error) *checkit.Failure {
	t.Helper()
	var f *checkit.Failure
	require.ErrorAs(t, err, &f)
	return f
}

func TestIsType(t *testing.T) {
	t.Parallel()
	t.Run("passes for matching dynamic type", func(t *testing.T) {
		c := checks.IsType[int]()
		assert.Equal(t, "instance_of(int)", c.Name())
		assert.NoError(t, c.Eval(42, nil))
	})

	t.Run("fails as type related for other types", func(t *testing.T) {
		c := checks.IsType[int]()
		f := failureOf(t, c.Eval("foo", nil))
		assert.Equal(t, "HasWrongType", f.Name())
		assert.Equal(t, checkit.KindType, f.Classification())
		assert.Contains(t, f.Error(), "instance of int")
	})

	t.Run("interface types accept implementations", func(t *testing.T) {
		c := checks.IsType[error]()
		assert.NoError(t, c.Eval(assert.AnError, nil))
		assert.Error(t, c.Eval(42, nil))
	})
}

func TestOrderedChecks(t *testing.T) {
	t.Parallel()
	t.Run("gt is strict", func(t *testing.T) {
		c := checks.Gt(0)
		assert.NoError(t, c.Eval(1, nil))
		assert.Error(t, c.Eval(0, nil))

		f := failureOf(t, c.Eval(-1, nil))
		assert.Equal(t, "TooSmall", f.Name())
		assert.Equal(t, checkit.KindValue, f.Classification())
	})

	t.Run("gte includes the bound", func(t *testing.T) {
		c := checks.Gte(0)
		assert.NoError(t, c.Eval(0, nil))
		assert.Error(t, c.Eval(-1, nil))
	})

	t.Run("lt and lte", func(t *testing.T) {
		assert.NoError(t, checks.Lt(10).Eval(9, nil))
		assert.Error(t, checks.Lt(10).Eval(10, nil))
		assert.NoError(t, checks.Lte(10).Eval(10, nil))
		assert.Error(t, checks.Lte(10).Eval(11, nil))
	})

	t.Run("between is inclusive on both bounds", func(t *testing.T) {
		c := checks.Between(1, 10)
		assert.NoError(t, c.Eval(1, nil))
		assert.NoError(t, c.Eval(10, nil))

		f := failureOf(t, c.Eval(11, nil))
		assert.Equal(t, "NotInRange", f.Name())
	})

	t.Run("works for strings", func(t *testing.T) {
		assert.NoError(t, checks.Gt("a").Eval("b", nil))
		assert.Error(t, checks.Gt("b").Eval("a", nil))
	})

	t.Run("mismatched dynamic type fails as type related", func(t *testing.T) {
		f := failureOf(t, checks.Gt(0).Eval("foo", nil))
		assert.Equal(t, "HasWrongType", f.Name())
		assert.Equal(t, checkit.KindType, f.Classification())
	})

	t.Run("eq and not_eq", func(t *testing.T) {
		assert.NoError(t, checks.Eq("on").Eval("on", nil))
		f := failureOf(t, checks.Eq("on").Eval("off", nil))
		assert.Equal(t, "NotEqual", f.Name())

		assert.NoError(t, checks.NotEq(0).Eval(1, nil))
		f = failureOf(t, checks.NotEq(0).Eval(0, nil))
		assert.Equal(t, "IsForbiddenValue", f.Name())
	})
}

func TestIntegerChecks(t *testing.T) {
	t.Parallel()
	t.Run("is_even", func(t *testing.T) {
		c := checks.IsEven()
		assert.NoError(t, c.Eval(0, nil))
		assert.NoError(t, c.Eval(-4, nil))

		f := failureOf(t, c.Eval(7, nil))
		assert.Equal(t, "IsNotEven", f.Name())
	})

	t.Run("is_odd", func(t *testing.T) {
		c := checks.IsOdd()
		assert.NoError(t, c.Eval(7, nil))
		assert.Error(t, c.Eval(4, nil))
	})

	t.Run("is_multiple_of", func(t *testing.T) {
		c := checks.IsMultipleOf(100)
		assert.Equal(t, "is_multiple_of(100)", c.Name())
		assert.NoError(t, c.Eval(300, nil))
		assert.NoError(t, c.Eval(0, nil))

		f := failureOf(t, c.Eval(250, nil))
		assert.Equal(t, "IsNotMultipleOf", f.Name())
	})

	t.Run("multiple of zero admits only zero", func(t *testing.T) {
		c := checks.IsMultipleOf(0)
		assert.NoError(t, c.Eval(0, nil))
		assert.Error(t, c.Eval(5, nil))
	})

	t.Run("accepts every integer kind", func(t *testing.T) {
		c := checks.IsEven()
		assert.NoError(t, c.Eval(int8(4), nil))
		assert.NoError(t, c.Eval(uint32(4), nil))
		assert.NoError(t, c.Eval(int64(4), nil))
	})

	t.Run("non-integers fail as type related", func(t *testing.T) {
		f := failureOf(t, checks.IsEven().Eval(4.5, nil))
		assert.Equal(t, "HasWrongType", f.Name())
		assert.Equal(t, checkit.KindType, f.Classification())
	})
}

func TestLengthChecks(t *testing.T) {
	t.Parallel()
	t.Run("minlen", func(t *testing.T) {
		c := checks.MinLen(3)
		assert.NoError(t, c.Eval("abc", nil))
		assert.NoError(t, c.Eval([]int{1, 2, 3, 4}, nil))

		f := failureOf(t, c.Eval("ab", nil))
		assert.Equal(t, "TooShort", f.Name())
	})

	t.Run("maxlen", func(t *testing.T) {
		c := checks.MaxLen(3)
		assert.NoError(t, c.Eval("abc", nil))

		f := failureOf(t, c.Eval("abcd", nil))
		assert.Equal(t, "TooLong", f.Name())
	})

	t.Run("len_between", func(t *testing.T) {
		c := checks.LenBetween(2, 3)
		assert.NoError(t, c.Eval("ab", nil))
		assert.Error(t, c.Eval("a", nil))
		assert.Error(t, c.Eval("abcd", nil))
	})

	t.Run("not_empty", func(t *testing.T) {
		assert.NoError(t, checks.NotEmpty().Eval("a", nil))
		assert.NoError(t, checks.NotEmpty().Eval(map[string]int{"a": 1}, nil))

		f := failureOf(t, checks.NotEmpty().Eval("", nil))
		assert.Equal(t, "Empty", f.Name())
	})

	t.Run("unsized values fail as type related", func(t *testing.T) {
		f := failureOf(t, checks.MinLen(1).Eval(42, nil))
		assert.Equal(t, "HasWrongType", f.Name())
		assert.Equal(t, checkit.KindType, f.Classification())
	})
}

func TestMembershipChecks(t *testing.T) {
	t.Parallel()
	t.Run("is_in", func(t *testing.T) {
		c := checks.IsIn("red", "green", "blue")
		assert.NoError(t, c.Eval("green", nil))

		f := failureOf(t, c.Eval("yellow", nil))
		assert.Equal(t, "NotInAllowedValues", f.Name())
	})

	t.Run("not_in", func(t *testing.T) {
		c := checks.NotIn(0, -1)
		assert.NoError(t, c.Eval(5, nil))

		f := failureOf(t, c.Eval(0, nil))
		assert.Equal(t, "InForbiddenValues", f.Name())
	})

	t.Run("is_subset", func(t *testing.T) {
		c := checks.IsSubset("a", "b", "c")
		assert.NoError(t, c.Eval([]string{"a", "c"}, nil))
		assert.NoError(t, c.Eval([]string{}, nil))

		f := failureOf(t, c.Eval([]string{"a", "z"}, nil))
		assert.Equal(t, "NotSubsetOf", f.Name())
	})

	t.Run("contains on strings", func(t *testing.T) {
		c := checks.Contains("ell")
		assert.NoError(t, c.Eval("hello", nil))

		f := failureOf(t, c.Eval("world", nil))
		assert.Equal(t, "DoesNotContainValue", f.Name())
	})

	t.Run("contains on slices", func(t *testing.T) {
		c := checks.Contains(2)
		assert.NoError(t, c.Eval([]int{1, 2, 3}, nil))
		assert.Error(t, c.Eval([]int{4, 5}, nil))
	})

	t.Run("contains on map keys", func(t *testing.T) {
		c := checks.Contains("k")
		assert.NoError(t, c.Eval(map[string]int{"k": 1}, nil))
		assert.Error(t, c.Eval(map[string]int{"other": 1}, nil))
	})

	t.Run("non-containers fail as type related", func(t *testing.T) {
		f := failureOf(t, checks.Contains(1).Eval(42, nil))
		assert.Equal(t, "HasWrongType", f.Name())
	})
}
