package memofake

import (
	"errors"
	"testing"
)

func TestFakeCountsAndResults(t *testing.T) {
	f := New[string](3)
	fn := f.Func()

	if got, err := fn("a"); err != nil || got != 3 {
		t.Fatalf("unexpected result: got=%d err=%v", got, err)
	}
	fn("a")
	fn("b", "c")

	f.AssertTotal(t, 3)
	f.AssertCalled(t, 2, "a")
	f.AssertCalled(t, 1, "b", "c")
	f.AssertNotCalled(t, "b")

	boom := errors.New("boom")
	f.SetError(boom)
	if _, err := fn("a"); !errors.Is(err, boom) {
		t.Fatalf("expected configured error, got %v", err)
	}
	f.SetResult(9)
	if got, _ := fn("a"); got != 9 {
		t.Fatalf("expected updated result 9, got %d", got)
	}

	f.Reset()
	f.AssertTotal(t, 0)
	f.AssertNotCalled(t, "a")
}
