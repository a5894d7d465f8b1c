package ident

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1_number_before", "x1_number_before"},
		{"_special  &% characters{", "special_characters"},
		{"simple", "simple"},
		{"CamelCase", "CamelCase"},
		{"double__underscore", "double_underscore"},
		{"trailing_", "trailing"},
		{"__both__", "both"},
		{"", "x"},
		{"___", "x"},
		{"{}", "x"},
		{"42", "x42"},
		{"Größe", "Grosse"},
		{"Ångström", "Angstrom"},
		{"façade état", "facade_etat"},
		{"Łódź", "Lodz"},
		{"smørrebrød", "smorrebrod"},
		{"ﬁle", "file"},
		{"温度 sensor", "sensor"},
		{"a-b.c/d", "a_b_c_d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func checkIdentifier(t *testing.T, in, out string) {
	t.Helper()
	if out == "" {
		t.Fatalf("Sanitize(%q) is empty", in)
	}
	if c := out[0]; c >= '0' && c <= '9' {
		t.Errorf("Sanitize(%q) = %q starts with a digit", in, out)
	}
	if strings.HasPrefix(out, "_") || strings.HasSuffix(out, "_") {
		t.Errorf("Sanitize(%q) = %q has an outer underscore", in, out)
	}
	if strings.Contains(out, "__") {
		t.Errorf("Sanitize(%q) = %q has a doubled underscore", in, out)
	}
	for _, c := range out {
		if !(c == '_' || (c < 128 && isAlnum(byte(c)))) {
			t.Errorf("Sanitize(%q) = %q contains %q", in, out, c)
		}
	}
	if again := Sanitize(out); again != out {
		t.Errorf("Sanitize is not idempotent: %q -> %q -> %q", in, out, again)
	}
}

func TestSanitizeProperties(t *testing.T) {
	inputs := []string{
		"", " ", "_", "0", "9lives", "a b  c", "ÆØÅ", "__init__", "x_", "end",
		"\x00\xff", "日本語", "tab\tsep", "{project}_{}", "_2", "a_2_", "ǅemal",
	}
	for _, in := range inputs {
		checkIdentifier(t, in, Sanitize(in))
	}
}

func FuzzSanitize(f *testing.F) {
	for _, seed := range []string{"1_number_before", "_special  &% characters{", "Größe", "__", "9"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		checkIdentifier(t, in, Sanitize(in))
	})
}

func TestValid(t *testing.T) {
	if !Valid("reg_a") {
		t.Error("reg_a should be valid")
	}
	for _, s := range []string{"", "_a", "a__b", "1a", "a-b"} {
		if Valid(s) {
			t.Errorf("%q should not be valid", s)
		}
	}
}
