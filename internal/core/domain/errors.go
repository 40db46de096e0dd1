package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrGatewayNotConfigured = errors.New("completion gateway not configured")
	ErrUpstreamAuth         = errors.New("upstream authentication failed")
	ErrRateLimited          = errors.New("upstream rate limited")
	ErrTimeout              = errors.New("upstream timeout")
	ErrUnreachable          = errors.New("upstream unreachable")
	ErrUpstream             = errors.New("upstream error")
	ErrParseFailure         = errors.New("response parse failure")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}

var kindNames = []struct {
	kind error
	name string
}{
	{ErrInvalidInput, "invalid_input"},
	{ErrUnsupportedFormat, "unsupported_format"},
	{ErrPayloadTooLarge, "payload_too_large"},
	{ErrGatewayNotConfigured, "gateway_not_configured"},
	{ErrUpstreamAuth, "auth_error"},
	{ErrRateLimited, "rate_limited"},
	{ErrTimeout, "timeout"},
	{ErrUnreachable, "unreachable"},
	{ErrUpstream, "upstream_error"},
	{ErrParseFailure, "parse_failure"},
}

// KindOf returns the stable boundary name of err's kind, or "internal".
func KindOf(err error) string {
	for _, k := range kindNames {
		if errors.Is(err, k.kind) {
			return k.name
		}
	}
	return "internal"
}

type UnsupportedFormatError struct {
	Extension string
	Allowed   []string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("不支持的文件格式: %s。支持的格式: %s", e.Extension, strings.Join(e.Allowed, ", "))
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

type PayloadTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("文件大小超过限制。最大支持 %dMB，当前文件大小: %.2fMB",
		e.Limit/(1024*1024), float64(e.Size)/(1024*1024))
}

func (e *PayloadTooLargeError) Unwrap() error { return ErrPayloadTooLarge }

// ParseError keeps the raw model reply for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "AI 响应格式不正确，无法解析。原始响应: " + Truncate(e.Raw, 200) + "..."
}

func (e *ParseError) Unwrap() error { return ErrParseFailure }

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
