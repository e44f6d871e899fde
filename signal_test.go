package wtree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSignal(t *testing.T) {
	var s Signal[int]
	var got []string
	unsubA := s.Subscribe(func(v int) {
		got = append(got, "a")
	})
	s.Subscribe(func(v int) {
		got = append(got, "b")
	})
	s.Emit(1)
	unsubA()
	unsubA()
	s.Emit(2)
	if diff := cmp.Diff([]string{"a", "b", "b"}, got); diff != "" {
		t.Fatalf("calls (-exp +got):\n%s", diff)
	}
	if s.Len() != 1 {
		t.Fatalf("subscribers %d, need 1", s.Len())
	}
}

func TestSignalChangeDuringEmit(t *testing.T) {
	var s Signal[string]
	var got []string
	var unsubB func()
	s.Subscribe(func(v string) {
		got = append(got, "a"+v)
		if v == "1" {
			unsubB()
			s.Subscribe(func(v string) {
				got = append(got, "c"+v)
			})
		}
	})
	unsubB = s.Subscribe(func(v string) {
		got = append(got, "b"+v)
	})
	s.Emit("1")
	s.Emit("2")
	if diff := cmp.Diff([]string{"a1", "b1", "a2", "c2"}, got); diff != "" {
		t.Fatalf("calls (-exp +got):\n%s", diff)
	}
}
