package analysis

import (
	"errors"
	"strings"
	"testing"
)

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(string(l))
		if err != nil || got != l {
			t.Errorf("ParseLanguage(%q) = %q, %v", l, got, err)
		}
	}

	got, err := ParseLanguage("")
	if err != nil || got != Other {
		t.Errorf("ParseLanguage(\"\") = %q, %v, want other", got, err)
	}

	_, err = ParseLanguage("cobol")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("ParseLanguage(cobol) error = %v, want ValidationError", err)
	}
	want := "Invalid language. Must be one of: javascript, typescript, python, java, csharp, go, rust, cpp, ruby, php, other"
	if ve.Message != want {
		t.Errorf("Message = %q, want %q", ve.Message, want)
	}
}

func TestRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		maxLen  int
		wantErr string
	}{
		{"empty code", Request{Code: "", Language: Go}, 0, "Code is required and must be a string"},
		{"blank code", Request{Code: "  \n\t ", Language: Go}, 0, "Code cannot be empty"},
		{"too long", Request{Code: strings.Repeat("a", 50001), Language: Go}, 0, "Code exceeds maximum length of 50,000 characters"},
		{"custom limit", Request{Code: "abcdef", Language: Go}, 5, "Code exceeds maximum length of 5 characters"},
		{"bad language", Request{Code: "x", Language: "cobol"}, 0, "Invalid language. Must be one of:"},
		{"blank beats bad language", Request{Code: " ", Language: "cobol"}, 0, "Code cannot be empty"},
		{"at limit", Request{Code: strings.Repeat("a", 50000), Language: Go}, 0, ""},
		{"runes not bytes", Request{Code: strings.Repeat("é", 5), Language: Go}, 5, ""},
		{"valid", Request{Code: "x = 1", Language: Python}, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate(tt.maxLen)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate error = %v, want ValidationError", err)
			}
			if !strings.HasPrefix(ve.Message, tt.wantErr) {
				t.Errorf("Message = %q, want prefix %q", ve.Message, tt.wantErr)
			}
		})
	}
}

func TestRequest_ValidateDefaultsLanguage(t *testing.T) {
	req := Request{Code: "puts 1"}
	if err := req.Validate(0); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if req.Language != Other {
		t.Errorf("Language = %q, want %q", req.Language, Other)
	}
}

func TestGroupThousands(t *testing.T) {
	tests := map[int]string{
		5:       "5",
		999:     "999",
		1000:    "1,000",
		50000:   "50,000",
		123456:  "123,456",
		1000000: "1,000,000",
	}
	for n, want := range tests {
		if got := groupThousands(n); got != want {
			t.Errorf("groupThousands(%d) = %q, want %q", n, got, want)
		}
	}
}
