package script

import "testing"

func TestRegistryRun(t *testing.T) {
	r := NewRegistry()

	var gotCaller, gotTriggerer uint32
	calls := 0
	r.Register("k_open_door", func(caller, triggerer uint32) {
		calls++
		gotCaller, gotTriggerer = caller, triggerer
	})

	r.Run("k_open_door", 4, 9)
	if calls != 1 || gotCaller != 4 || gotTriggerer != 9 {
		t.Errorf("routine called %d times with (%d, %d)", calls, gotCaller, gotTriggerer)
	}

	// Unknown and empty names are ignored.
	r.Run("k_missing", 1, 2)
	r.Run("", 1, 2)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestRegistryImplementsRunner(t *testing.T) {
	var _ Runner = NewRegistry()
}
