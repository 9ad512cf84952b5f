package ocr

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    float64
		wantErr bool
	}{
		{"plain integer", "50", 50, false},
		{"decimal point", "12.5", 12.5, false},
		{"decimal comma", "12,5", 12.5, false},
		{"negative", "-3", -3, false},
		{"embedded in noise", "score: 128 pts", 128, false},
		{"first token wins", "10 then 20", 10, false},
		{"garbled around digits", "|l1O 42O|", 1, false},
		{"no digits", "no value here", 0, true},
		{"empty", "", 0, true},
		{"whitespace only", "  \n ", 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := ParseNumber(tc.text)
			if tc.wantErr {
				if !errors.Is(err, ErrNoNumber) {
					t.Fatalf("err=%v, want ErrNoNumber", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q): %v", tc.text, err)
			}
			if v != tc.want {
				t.Fatalf("ParseNumber(%q) = %v, want %v", tc.text, v, tc.want)
			}
		})
	}
}
