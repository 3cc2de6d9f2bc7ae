package arena

import "testing"

func TestStore_AddAssignsSequentialHandles(t *testing.T) {
	s := NewStore[string]()
	if got := s.Add("a"); got != 0 {
		t.Errorf("first handle = %d, want 0", got)
	}
	if got := s.Add("b"); got != 1 {
		t.Errorf("second handle = %d, want 1", got)
	}

	v, ok := s.Get(1)
	if !ok || v != "b" {
		t.Errorf("Get(1) = %q, %v; want \"b\", true", v, ok)
	}
	if _, ok := s.Get(5); ok {
		t.Error("Get out of range should report false")
	}
	if _, ok := s.Get(-1); ok {
		t.Error("Get(-1) should report false")
	}
}

func TestStore_AllReturnsSnapshot(t *testing.T) {
	s := NewStore[int]()
	s.Add(10)
	s.Add(20)

	snap := s.All()
	snap[0] = 99
	if v, _ := s.Get(0); v != 10 {
		t.Error("mutating the snapshot must not touch the store")
	}
}

func TestStore_Reset(t *testing.T) {
	s := NewStore[int]()
	s.Add(1)
	s.Reset()
	if s.Len() != 0 {
		t.Errorf("len after reset = %d, want 0", s.Len())
	}
	if got := s.Add(2); got != 0 {
		t.Errorf("handle after reset = %d, want 0", got)
	}
}
