package verse

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Ref
		wantErr  bool
	}{
		{
			input:    "Gen.1.1",
			expected: Ref{Book: "Gen", Chapter: 1, Verse: 1},
		},
		{
			input:    "Gen.14:7",
			expected: Ref{Book: "Gen", Chapter: 14, Verse: 7},
		},
		{
			input:    "2Esdr.11.2",
			expected: Ref{Book: "2Esdr", Chapter: 11, Verse: 2},
		},
		{
			input:    "1Sa.3:4",
			expected: Ref{Book: "1Sa", Chapter: 3, Verse: 4},
		},
		{
			input:    "JoshB.10.12",
			expected: Ref{Book: "JoshB", Chapter: 10, Verse: 12},
		},
		{
			input:    " Neh.1:2 ",
			expected: Ref{Book: "Neh", Chapter: 1, Verse: 2},
		},
		{input: "", wantErr: true},
		{input: "Gen", wantErr: true},
		{input: "Gen.1", wantErr: true},
		{input: "not a ref", wantErr: true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error, got %+v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestString(t *testing.T) {
	r := Ref{Book: "2Esdr", Chapter: 11, Verse: 2}
	if got := r.String(); got != "2Esdr.11.2" {
		t.Errorf("String() = %q, want 2Esdr.11.2", got)
	}
}

func TestIsZero(t *testing.T) {
	if !(Ref{}).IsZero() {
		t.Errorf("zero Ref should report IsZero")
	}
	if (Ref{Book: "Gen", Chapter: 1, Verse: 1}).IsZero() {
		t.Errorf("non-zero Ref should not report IsZero")
	}
}
