package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestKindOfWrappedErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{WrapError(ErrTimeout, "complete", errors.New("deadline")), "timeout"},
		{&UnsupportedFormatError{Extension: ".exe"}, "unsupported_format"},
		{&ParseError{Raw: "x"}, "parse_failure"},
		{&PayloadTooLargeError{Size: 3, Limit: 2}, "payload_too_large"},
		{errors.New("boom"), "internal"},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Fatalf("KindOf(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestUnsupportedFormatErrorListsAllowed(t *testing.T) {
	err := &UnsupportedFormatError{Extension: ".exe", Allowed: []string{".docx", ".txt"}}
	if !strings.Contains(err.Error(), ".exe") || !strings.Contains(err.Error(), ".docx, .txt") {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestParseErrorTruncatesRawReply(t *testing.T) {
	err := &ParseError{Raw: strings.Repeat("回", 300)}
	if strings.Count(err.Error(), "回") != 200 {
		t.Fatalf("expected raw reply truncated to 200 runes: %s", err.Error())
	}
}
