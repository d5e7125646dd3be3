package naming

import (
	"errors"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"MyClass", true},
		{"My Class", false},
		{"NS::Inner", true},
		{"A::B::C_1", true},
		{"_private", true},
		{"  Padded\t", true},
		{"3Bad", false},
		{"", false},
		{"   ", false},
		{"Trailing::", false},
		{"::Leading", false},
		{"A:::B", false},
		{"Bad-Name", false},
		{"Ns::9Inner", false},
		{"Foo<int>", false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := IsValid(tt.text); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	n, err := Validate("  Widget ")
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if n.String() != "Widget" {
		t.Errorf("String() = %q, want %q", n.String(), "Widget")
	}

	_, err = Validate("My Class")
	if !errors.Is(err, ErrInvalidName) {
		t.Errorf("Validate(%q) error = %v, want ErrInvalidName", "My Class", err)
	}
}

func TestDerivedNames(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		guard    string
		segments int
	}{
		{"Widget", "Widget", "WIDGET_H", 1},
		{"NS::Inner", "Inner", "NS_INNER_H", 2},
		{"a::b::camelCase", "camelCase", "A_B_CAMELCASE_H", 3},
	}
	for _, tt := range tests {
		n := MustParse(tt.name)
		if got := n.Base(); got != tt.base {
			t.Errorf("%s: Base() = %q, want %q", tt.name, got, tt.base)
		}
		if got := n.FileStem(); got != tt.base {
			t.Errorf("%s: FileStem() = %q, want %q", tt.name, got, tt.base)
		}
		if got := n.HeaderGuard(); got != tt.guard {
			t.Errorf("%s: HeaderGuard() = %q, want %q", tt.name, got, tt.guard)
		}
		if got := len(n.Segments()); got != tt.segments {
			t.Errorf("%s: len(Segments()) = %d, want %d", tt.name, got, tt.segments)
		}
	}
}

func TestZeroClassName(t *testing.T) {
	var n ClassName
	if !n.IsZero() {
		t.Error("zero ClassName should report IsZero")
	}
	if n.Segments() != nil {
		t.Errorf("Segments() = %v, want nil", n.Segments())
	}
}
