package formz

import "testing"

func TestMessageRing_NilSafe(t *testing.T) {
	var r *messageRing

	// All operations should be safe on nil
	r.push(Failure{Message: "test"})
	r.clear()

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestMessageRing_ZeroSize(t *testing.T) {
	r := newMessageRing(0)
	if r != nil {
		t.Error("expected nil ring for size 0")
	}
}

func TestMessageRing_NegativeSize(t *testing.T) {
	r := newMessageRing(-1)
	if r != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestMessageRing_SingleFailure(t *testing.T) {
	r := newMessageRing(3)

	r.push(Failure{Message: "failure1"})

	failures := r.all()
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Message != "failure1" {
		t.Error("expected same failure message")
	}
}

func TestMessageRing_FillsWithoutWrapping(t *testing.T) {
	r := newMessageRing(3)

	r.push(Failure{Message: "failure1"})
	r.push(Failure{Message: "failure2"})
	r.push(Failure{Message: "failure3"})

	failures := r.all()
	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d", len(failures))
	}

	// Oldest first
	if failures[0].Message != "failure1" {
		t.Error("expected failure1 first")
	}
	if failures[1].Message != "failure2" {
		t.Error("expected failure2 second")
	}
	if failures[2].Message != "failure3" {
		t.Error("expected failure3 third")
	}
}

func TestMessageRing_WrapsAndEvictsOldest(t *testing.T) {
	r := newMessageRing(3)

	r.push(Failure{Message: "failure1"})
	r.push(Failure{Message: "failure2"})
	r.push(Failure{Message: "failure3"})
	r.push(Failure{Message: "failure4"}) // Should evict failure1

	failures := r.all()
	if len(failures) != 3 {
		t.Fatalf("expected 3 failures, got %d", len(failures))
	}

	if failures[0].Message != "failure2" {
		t.Error("expected failure2 first after wrap")
	}
	if failures[2].Message != "failure4" {
		t.Error("expected failure4 last")
	}
}

func TestMessageRing_Clear(t *testing.T) {
	r := newMessageRing(3)

	r.push(Failure{Message: "failure1"})
	r.push(Failure{Message: "failure2"})

	r.clear()

	if failures := r.all(); failures != nil {
		t.Errorf("expected nil after clear, got %v", failures)
	}
}

func TestMessageRing_SizeOne(t *testing.T) {
	r := newMessageRing(1)

	r.push(Failure{Message: "failure1"})
	r.push(Failure{Message: "failure2"})

	failures := r.all()
	if len(failures) != 1 || failures[0].Message != "failure2" {
		t.Error("expected latest failure to replace the older one")
	}
}
