package profile

import "testing"

func TestApplyOnlyTouchesSetFields(t *testing.T) {
	p := Profile{Name: "Ada", Values: Values{Motto: "keep going"}}
	p.Apply(Patch{Sleep: "23:00", Motto: "  "})
	if p.Name != "Ada" {
		t.Fatalf("name changed to %q", p.Name)
	}
	if p.Basics.Sleep != "23:00" {
		t.Fatalf("sleep not applied: %+v", p.Basics)
	}
	if p.Values.Motto != "keep going" {
		t.Fatalf("blank motto must not overwrite, got %q", p.Values.Motto)
	}
}

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme("Dark"); err != nil || th != ThemeDark {
		t.Fatalf("expected dark, got %q %v", th, err)
	}
	if _, err := ParseTheme("blue"); err == nil {
		t.Fatalf("expected error")
	}
	if !(Patch{}).Empty() {
		t.Fatalf("expected empty patch")
	}
}
