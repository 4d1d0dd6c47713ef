package event

import "testing"

func TestFunc(t *testing.T) {
	cb := Func(func(args ...any) int { return len(args) })

	result, err := cb("a", "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != 2 {
		t.Errorf("expected 2, got %d", result)
	}
}

func TestFunc_Nil(t *testing.T) {
	if Func[int](nil) != nil {
		t.Error("expected nil callback for nil func")
	}
}

func TestFunc_Register(t *testing.T) {
	e := New[string]()
	e.On("greet", Func(func(args ...any) string { return "hi" }))

	result, ok, err := e.Trigger("greet")
	if err != nil || !ok || result != "hi" {
		t.Errorf("Trigger = (%q, %v, %v), want (\"hi\", true, nil)", result, ok, err)
	}
}
