package buildinfo

import "testing"

func TestString(t *testing.T) {
	old := Version
	Version = "v1.2.3"
	t.Cleanup(func() { Version = old })

	want := "fwkit v1.2.3 (commit=none, date=unknown)"
	if got := String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if Fields()["version"] != "v1.2.3" {
		t.Fatalf("expected version field, got %v", Fields())
	}
}
