package app

import (
	"testing"
	"time"
)

func TestNameClock_StrictlyIncreasing(t *testing.T) {
	t.Parallel()

	readings := []int64{1000, 1000, 999, 1005, 1005}
	i := 0
	c := newNameClock(func() time.Time {
		ms := readings[i]
		i++
		return time.UnixMilli(ms)
	})

	want := []int64{1000, 1001, 1002, 1005, 1006}
	for j, w := range want {
		if got := c.next().UnixMilli(); got != w {
			t.Errorf("next() #%d = %d, want %d", j, got, w)
		}
	}
}
