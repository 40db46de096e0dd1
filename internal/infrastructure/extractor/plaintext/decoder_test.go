package plaintext

import (
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestDecodeUTF8RoundTrip(t *testing.T) {
	d := NewDecoder()
	for _, text := range []string{"", "hello", "文档概要：测试", "emoji 🚀 and tabs\t\n"} {
		if got := d.Decode([]byte(text), "a.txt", ".txt"); got != text {
			t.Fatalf("Decode(%q) = %q", text, got)
		}
	}
}

func TestDecodeFallsBackToGBK(t *testing.T) {
	raw, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("中文内容"))
	if err != nil {
		t.Fatalf("encode gbk: %v", err)
	}
	if got := NewDecoder().Decode(raw, "a.txt", ".txt"); got != "中文内容" {
		t.Fatalf("expected GBK decoding, got %q", got)
	}
}

func TestDecodeFallsBackToLatin1(t *testing.T) {
	// 0xFF is invalid as a GBK lead byte and as UTF-8.
	raw := []byte{'c', 'a', 'f', 0xE9, 0xFF}
	got := NewDecoder().Decode(raw, "a.txt", ".txt")
	if got != "caféÿ" {
		t.Fatalf("expected latin-1 decoding, got %q", got)
	}
}

func TestDecodePlaceholderWhenChainExhausted(t *testing.T) {
	d := &Decoder{chain: []decodeFunc{decodeUTF8}}
	got := d.Decode([]byte{0xFF, 0xFE}, "bin.txt", ".txt")
	if !strings.Contains(got, "文档名称: bin.txt") || !strings.Contains(got, "无法解码文件内容") {
		t.Fatalf("unexpected placeholder: %q", got)
	}
}
