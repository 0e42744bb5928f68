package react

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	t.Run("holds its initial value without notifying", func(t *testing.T) {
		notified := false

		v := NewValue(10)
		v.OnChange(func(int, int) error {
			notified = true
			return nil
		})

		assert.Equal(t, 10, v.Get())
		assert.False(t, notified)
	})

	t.Run("update notifies with new and old", func(t *testing.T) {
		type change struct{ newValue, oldValue int }
		log := []change{}

		v := NewValue(1)
		v.OnChange(func(newValue, oldValue int) error {
			log = append(log, change{newValue, oldValue})
			return nil
		})

		old, err := v.Update(2)
		assert.NoError(t, err)
		assert.Equal(t, 1, old)

		old, err = v.Update(3)
		assert.NoError(t, err)
		assert.Equal(t, 2, old)

		assert.Equal(t, []change{{2, 1}, {3, 2}}, log)
	})

	t.Run("equal update does not notify", func(t *testing.T) {
		calls := 0

		v := NewValue("a")
		v.OnChange(func(string, string) error {
			calls++
			return nil
		})

		old, err := v.Update("a")
		assert.NoError(t, err)
		assert.Equal(t, "a", old)
		assert.Equal(t, 0, calls)
	})

	t.Run("forced update always notifies", func(t *testing.T) {
		calls := 0

		v := NewValue("a")
		v.OnChange(func(string, string) error {
			calls++
			return nil
		})

		_, err := v.UpdateForce("a")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("nil-safe equality", func(t *testing.T) {
		calls := 0

		v := NewValue[error](nil)
		v.OnChange(func(error, error) error {
			calls++
			return nil
		})

		_, err := v.Update(nil)
		assert.NoError(t, err)
		assert.Equal(t, 0, calls, "nil to nil is equal")

		_, err = v.Update(errors.New("oops"))
		assert.NoError(t, err)
		assert.Equal(t, 1, calls, "nil to non-nil is a change")
	})

	t.Run("injected comparator gates updates", func(t *testing.T) {
		calls := 0

		v := NewValue("Go", WithEquality(strings.EqualFold))
		v.OnChange(func(string, string) error {
			calls++
			return nil
		})

		_, err := v.Update("GO")
		assert.NoError(t, err)
		assert.Equal(t, 0, calls)
		assert.Equal(t, "GO", v.Get(), "value is replaced even when equal")

		_, err = v.Update("Rust")
		assert.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("failing listener does not stop siblings", func(t *testing.T) {
		boom := errors.New("boom")
		log := []int{}

		v := NewValue(0)
		v.OnChange(func(int, int) error { return boom })
		v.OnChange(func(newValue, _ int) error {
			log = append(log, newValue)
			return nil
		})

		old, err := v.Update(1)
		assert.Equal(t, 0, old)

		var agg *AggregateError
		assert.ErrorAs(t, err, &agg)
		assert.Equal(t, []error{boom}, agg.Causes())
		assert.Equal(t, []int{1}, log)
		assert.Equal(t, 1, v.Get(), "the value sticks despite the failure")
	})
}

func TestValueOnChangeNotify(t *testing.T) {
	t.Run("fires immediately with the current value", func(t *testing.T) {
		type change struct{ newValue, oldValue int }
		log := []change{}

		v := NewValue(5)
		c, err := v.OnChangeNotify(func(newValue, oldValue int) error {
			log = append(log, change{newValue, oldValue})
			return nil
		})
		assert.NoError(t, err)
		assert.NotNil(t, c)

		_, err = v.Update(6)
		assert.NoError(t, err)

		assert.Equal(t, []change{{5, 0}, {6, 5}}, log)
	})

	t.Run("tears down the connection when the initial call fails", func(t *testing.T) {
		boom := errors.New("boom")

		v := NewValue(5)
		c, err := v.OnChangeNotify(func(int, int) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.Nil(t, c)
		assert.Empty(t, v.d.conns, "no live handle bound to a failed listener")
	})

	t.Run("tears down on a panicking initial call", func(t *testing.T) {
		v := NewValue(5)
		c, err := v.OnChangeNotify(func(int, int) error { panic("kaboom") })

		var pe *PanicError
		assert.ErrorAs(t, err, &pe)
		assert.Nil(t, c)
		assert.Empty(t, v.d.conns)
	})
}

func TestValueChanges(t *testing.T) {
	t.Run("emits every new value", func(t *testing.T) {
		log := []int{}

		v := NewValue(0)
		changes := v.Changes()
		changes.Connect(func(newValue int) error {
			log = append(log, newValue)
			return nil
		})

		_, _ = v.Update(1)
		_, _ = v.Update(1)
		_, _ = v.Update(2)

		assert.Equal(t, []int{1, 2}, log)
	})

	t.Run("next change as a future", func(t *testing.T) {
		v := NewValue(0)
		next := v.Changes().Next()

		_, err := v.Update(9)
		assert.NoError(t, err)

		res, ok := next.Result()
		assert.True(t, ok)
		assert.Equal(t, 9, res.Value())
		assert.Empty(t, v.d.conns, "one-shot listener chain fully detached")
	})
}

func TestMapValue(t *testing.T) {
	t.Run("current value is recomputed on demand", func(t *testing.T) {
		v := NewValue(2)
		squared := MapValue(v, func(x int) int { return x * x })

		assert.Equal(t, 4, squared.Get())

		_, err := v.Update(3)
		assert.NoError(t, err)
		assert.Equal(t, 9, squared.Get(), "no listeners, still current")
	})

	t.Run("notifies mapped pairs on every upstream change", func(t *testing.T) {
		type change struct{ newValue, oldValue bool }
		log := []change{}

		v := NewValue(1)
		positive := MapValue(v, func(x int) bool { return x > 0 })
		positive.OnChange(func(newValue, oldValue bool) error {
			log = append(log, change{newValue, oldValue})
			return nil
		})

		_, _ = v.Update(2)
		_, _ = v.Update(3)

		// mapped values never changed, notifications still fire
		assert.Equal(t, []change{{true, true}, {true, true}}, log)
	})

	t.Run("rejects local update", func(t *testing.T) {
		v := NewValue(1)
		mapped := MapValue(v, func(x int) int { return x })

		_, err := mapped.Update(2)
		assert.ErrorIs(t, err, ErrReadOnly)
		_, err = mapped.UpdateForce(2)
		assert.ErrorIs(t, err, ErrReadOnly)
	})

	t.Run("upstream connection follows own listener count", func(t *testing.T) {
		v := NewValue(1)
		mapped := MapValue(v, func(x int) int { return x })

		assert.Empty(t, v.d.conns)

		c := mapped.OnChange(func(int, int) error { return nil })
		assert.Len(t, v.d.conns, 1)

		c.Dispose()
		assert.Empty(t, v.d.conns)
	})
}

func TestFlatMapValue(t *testing.T) {
	setup := func() (*Value[bool], *Value[int], *Value[int], *Value[int]) {
		toggle := NewValue(true)
		value1 := NewValue(42)
		value2 := NewValue(0)
		flat := FlatMapValue(toggle, func(on bool) *Value[int] {
			if on {
				return value1
			}
			return value2
		})
		return toggle, value1, value2, flat
	}

	t.Run("tracks the selected source", func(t *testing.T) {
		toggle, value1, value2, flat := setup()

		log := []int{}
		flat.OnChange(func(newValue, _ int) error {
			log = append(log, newValue)
			return nil
		})

		assert.Equal(t, 42, flat.Get())

		_, err := value1.Update(10)
		assert.NoError(t, err)
		assert.Equal(t, 10, flat.Get())
		assert.Equal(t, []int{10}, log)

		_, err = toggle.Update(false)
		assert.NoError(t, err)
		_, err = value2.Update(15)
		assert.NoError(t, err)
		assert.Equal(t, 15, flat.Get())

		// the deselected source no longer notifies
		before := len(log)
		_, err = value1.Update(99)
		assert.NoError(t, err)
		assert.Len(t, log, before)
	})

	t.Run("selector change notifies with the new selection", func(t *testing.T) {
		type change struct{ newValue, oldValue int }
		log := []change{}

		toggle, _, value2, flat := setup()
		_, _ = value2.UpdateForce(7)

		flat.OnChange(func(newValue, oldValue int) error {
			log = append(log, change{newValue, oldValue})
			return nil
		})

		_, err := toggle.Update(false)
		assert.NoError(t, err)
		assert.Equal(t, []change{{7, 42}}, log)
	})

	t.Run("holds two connections while observed, none after", func(t *testing.T) {
		toggle, value1, value2, flat := setup()

		c := flat.OnChange(func(int, int) error { return nil })
		assert.Len(t, toggle.d.conns, 1)
		assert.Len(t, value1.d.conns, 1)
		assert.Empty(t, value2.d.conns)

		_, err := toggle.Update(false)
		assert.NoError(t, err)
		assert.Empty(t, value1.d.conns, "old selection dropped")
		assert.Len(t, value2.d.conns, 1)

		c.Dispose()
		assert.Empty(t, toggle.d.conns)
		assert.Empty(t, value2.d.conns)
	})

	t.Run("unobserved flat map still reads through", func(t *testing.T) {
		toggle, _, value2, flat := setup()

		_, _ = toggle.Update(false)
		_, _ = value2.Update(3)

		assert.Equal(t, 3, flat.Get())
		assert.Empty(t, toggle.d.conns)
	})
}
