package skin

import (
	"errors"
	"testing"
)

func TestLookup_AllTypes(t *testing.T) {
	for _, typ := range Types() {
		entry, err := Lookup(typ)
		if err != nil {
			t.Fatalf("Lookup(%s) failed: %v", typ, err)
		}
		if entry.Code != typ {
			t.Errorf("Lookup(%s) returned entry for %s", typ, entry.Code)
		}
		if entry.KoreanName == "" || entry.Description == "" || entry.CareMethod == "" || entry.Guide == "" {
			t.Errorf("Lookup(%s) has empty metadata fields", typ)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, err := Lookup(Type("SEBORRHEIC")); !errors.Is(err, ErrUnknownClassification) {
		t.Fatalf("expected ErrUnknownClassification, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"OILY", TypeOily, false},
		{"oily", TypeOily, false},
		{"  Comedones ", TypeComedones, false},
		{"folliculitis", TypeFolliculitis, false},
		{"", "", true},
		{"ACNE", "", true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownClassification) {
				t.Errorf("Parse(%q): expected ErrUnknownClassification, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromInferenceLabel(t *testing.T) {
	tests := []struct {
		label string
		want  Type
	}{
		{"Comedones", TypeComedones},
		{"Pustules", TypePustules},
		{"Papules", TypePapules},
		{"Folliculitis", TypeFolliculitis},
	}
	for _, tt := range tests {
		got, err := FromInferenceLabel(tt.label)
		if err != nil {
			t.Errorf("FromInferenceLabel(%q) failed: %v", tt.label, err)
			continue
		}
		if got != tt.want {
			t.Errorf("FromInferenceLabel(%q) = %s, want %s", tt.label, got, tt.want)
		}
	}

	// Labels are exact; casing or unknown classes must be rejected.
	for _, label := range []string{"comedones", "Nodules", ""} {
		if _, err := FromInferenceLabel(label); !errors.Is(err, ErrUnknownClassification) {
			t.Errorf("FromInferenceLabel(%q): expected ErrUnknownClassification, got %v", label, err)
		}
	}
}

func TestTypesReturnsCopy(t *testing.T) {
	first := Types()
	first[0] = Type("MUTATED")
	if second := Types(); second[0] != TypeNormal {
		t.Fatal("Types() exposes internal slice")
	}
}
