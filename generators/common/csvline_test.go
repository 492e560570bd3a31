package common

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"Empty", "", []string{""}},
		{"Single", "abc", []string{"abc"}},
		{"Simple", "1,2,3", []string{"1", "2", "3"}},
		{"EmptyFields", "1,,3,", []string{"1", "", "3", ""}},
		{"QuotedComma", `17,"Jorge Garcia, Inc.",x`, []string{"17", "Jorge Garcia, Inc.", "x"}},
		{"QuotesDropped", `"abc"`, []string{"abc"}},
		{"QuotesMidField", `a"b,c"d,e`, []string{"ab,cd", "e"}},
		{"DoubledQuoteNotEscape", `"a""b"`, []string{"ab"}},
		{"UnterminatedQuote", `"a,b`, []string{"a,b"}},
		{"Whitespace", " a , b ", []string{" a ", " b "}},
		{"SingleQuote", "O'Brien,1", []string{"O'Brien", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseLine(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestEncodeLine(t *testing.T) {
	fields := []string{"17", "Jorge Garcia, Inc.", "", "O'Brien"}
	line, err := EncodeLine(fields)
	if err != nil {
		t.Fatalf("EncodeLine failed: %v", err)
	}
	if want := `17,"Jorge Garcia, Inc.",,O'Brien`; line != want {
		t.Errorf("EncodeLine = %q, want %q", line, want)
	}
	if diff := cmp.Diff(fields, ParseLine(line)); diff != "" {
		t.Errorf("ParseLine(EncodeLine) mismatch (-want +got):\n%s", diff)
	}

	for _, bad := range []string{`say "hi"`, "two\nlines"} {
		if _, err := EncodeLine([]string{bad}); !errors.Is(err, ErrUnencodable) {
			t.Errorf("EncodeLine(%q) error = %v, want ErrUnencodable", bad, err)
		}
	}
}

func TestResourceName(t *testing.T) {
	if got := ResourceName("Sales_Fact_1997"); got != "sales_fact_1997.csv" {
		t.Errorf("ResourceName = %q", got)
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"LF", "a\nb\n", []string{"a", "b"}},
		{"CR", "a\rb\r", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"Unterminated", "a\nb", []string{"a", "b"}},
		{"EmptyLines", "\n\r\r\n", []string{"", "", ""}},
		{"TrailingCR", "a\r", []string{"a"}},
		{"Empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := bufio.NewReader(strings.NewReader(tt.input))
			var got []string
			for {
				line, err := ReadLine(r)
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					t.Fatalf("ReadLine failed: %v", err)
				}
				got = append(got, line)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadLine(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestIsBlank(t *testing.T) {
	for _, line := range []string{"", " ", "\t \t", "\x00", "\x1f\x0b "} {
		if !IsBlank(line) {
			t.Errorf("IsBlank(%q) = false", line)
		}
	}
	for _, line := range []string{"a", " , ", "\u00a0", "\u3000"} {
		if IsBlank(line) {
			t.Errorf("IsBlank(%q) = true", line)
		}
	}
}
