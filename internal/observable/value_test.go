package observable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueSetNotifiesInOrder(t *testing.T) {
	v := NewValue(1)
	var calls []string
	v.Subscribe(func(n int) { calls = append(calls, "a") })
	v.Subscribe(func(n int) { calls = append(calls, "b") })

	v.Set(2)

	require.Equal(t, 2, v.Get())
	assert.Equal(t, []string{"a", "b"}, calls)
}

func TestValueSetSameValueStillNotifies(t *testing.T) {
	v := NewValue("x")
	count := 0
	v.Changed(func() { count++ })

	v.Set("x")
	v.Set("x")

	assert.Equal(t, 2, count)
}

func TestValueUnsubscribe(t *testing.T) {
	v := NewValue(0)
	count := 0
	unsub := v.Subscribe(func(int) { count++ })

	v.Set(1)
	unsub()
	unsub()
	v.Set(2)

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, v.Subscribers())
}

func TestValueUnsubscribeDuringNotify(t *testing.T) {
	v := NewValue(0)
	var second func()
	secondCalls := 0
	v.Subscribe(func(int) { second() })
	second = v.Subscribe(func(int) { secondCalls++ })

	v.Set(1)

	assert.Equal(t, 0, secondCalls, "unsubscribed listener must not run in the same notification")
}

func TestValueReentrantWrite(t *testing.T) {
	v := NewValue(0)
	var seen []int
	v.Subscribe(func(n int) {
		seen = append(seen, n)
		if n < 3 {
			v.Set(n + 1)
		}
	})

	v.Set(1)

	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, 3, v.Get())
}
