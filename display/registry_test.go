package display

import (
	"errors"
	"strings"
	"testing"
)

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	backends.mu.Lock()
	defer backends.mu.Unlock()
	backends.factories = nil
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("test", func() Backend {
		return newMockBackend("test")
	})

	backend, err := NewBackend("test")
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	mock, ok := backend.(*mockBackend)
	if !ok {
		t.Fatal("backend is not a mockBackend")
	}
	if mock.name != "test" {
		t.Errorf("got name %q, want %q", mock.name, "test")
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("known", func() Backend { return newMockBackend("known") })
	_, err := NewBackend("nope")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("NewBackend(\"nope\") = %v, want ErrUnknownBackend", err)
	}
	if !strings.Contains(err.Error(), "known") {
		t.Errorf("error %q should list the registered backends", err)
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil factory", func() { Register("nil", nil) }},
		{"duplicate", func() {
			Register("dup", func() Backend { return newMockBackend("dup") })
			Register("dup", func() Backend { return newMockBackend("dup") })
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestBackendsSortedAndUnregister(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		n := name
		Register(n, func() Backend { return newMockBackend(n) })
	}

	got := Backends()
	want := []string{"alpha", "mid", "zeta"}
	if len(got) != len(want) {
		t.Fatalf("Backends() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Backends()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	Unregister("mid")
	if IsRegistered("mid") {
		t.Error("mid still registered after Unregister")
	}
	if !IsRegistered("alpha") {
		t.Error("alpha should still be registered")
	}
	Unregister("never-there")
}
