package memo

import "testing"

func TestDefaultKeyEqualArgs(t *testing.T) {
	if DefaultKey(1, 2) != DefaultKey(1, 2) {
		t.Fatalf("expected equal argument lists to give equal keys")
	}
	if DefaultKey(1, 2) == DefaultKey(2, 1) {
		t.Fatalf("expected argument order to matter")
	}
}

func TestDefaultKeyDistinguishesTypesAndQuoting(t *testing.T) {
	if DefaultKey[any](1) == DefaultKey[any](int64(1)) {
		t.Fatalf("expected dynamic type to be part of the key")
	}
	if DefaultKey[any](1) == DefaultKey[any]("1") {
		t.Fatalf("expected string and int keys to differ")
	}
	if DefaultKey("a, b") == DefaultKey("a", "b") {
		t.Fatalf("expected quoted strings not to collide with separate args")
	}
}

func TestDefaultKeyEmptyArgs(t *testing.T) {
	if got := DefaultKey[string](); got != "()" {
		t.Fatalf("expected () for no args, got %q", got)
	}
	if DefaultKey([]string{}...) != DefaultKey[string]() {
		t.Fatalf("expected nil and empty arg lists to share a key")
	}
}

func TestDefaultKeyFormat(t *testing.T) {
	if got := DefaultKey[any](1, "a"); got != `(int(1), string("a"))` {
		t.Fatalf("unexpected key %q", got)
	}
}
