package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestRegType_String(t *testing.T) {
	tests := []struct {
		name     string
		regType  RegType
		expected string
	}{
		{name: "REG_SZ", regType: REG_SZ, expected: "REG_SZ"},
		{name: "REG_EXPAND_SZ", regType: REG_EXPAND_SZ, expected: "REG_EXPAND_SZ"},
		{name: "REG_MULTI_SZ", regType: REG_MULTI_SZ, expected: "REG_MULTI_SZ"},
		{name: "REG_DWORD", regType: REG_DWORD, expected: "REG_DWORD"},
		{name: "REG_QWORD", regType: REG_QWORD, expected: "REG_QWORD"},
		{name: "unknown", regType: RegType(0xFFFFFFFF), expected: "UNKNOWN_TYPE_-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.regType.String(); got != tt.expected {
				t.Errorf("RegType(%d).String() = %q, want %q", tt.regType, got, tt.expected)
			}
		})
	}
}

func TestParseStore(t *testing.T) {
	tests := []struct {
		in      string
		want    Store
		wantErr bool
	}{
		{in: "", want: StoreMachine},
		{in: "machine", want: StoreMachine},
		{in: "HKLM", want: StoreMachine},
		{in: "hkey_local_machine", want: StoreMachine},
		{in: "user", want: StoreUser},
		{in: "HKCU", want: StoreUser},
		{in: "HKEY_USERS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStore(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStore(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrArgument) {
					t.Errorf("ParseStore(%q) error kind = %v, want argument", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseStore(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSkipSource_RoundTrip(t *testing.T) {
	for _, s := range []SkipSource{SkipNone, SkipDefault, SkipFile, SkipDefaultWithFile} {
		got, err := ParseSkipSource(s.String())
		if err != nil {
			t.Fatalf("ParseSkipSource(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseSkipSource(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseSkipSource("everything"); err == nil {
		t.Error("expected error for unknown skip source")
	}
}

func TestSkipSource_NeedsFile(t *testing.T) {
	if SkipNone.NeedsFile() || SkipDefault.NeedsFile() {
		t.Error("none/default must not read the skip file")
	}
	if !SkipFile.NeedsFile() || !SkipDefaultWithFile.NeedsFile() {
		t.Error("file sources must read the skip file")
	}
}

func TestView_Other(t *testing.T) {
	if View32.Other() != View64 || View64.Other() != View32 {
		t.Error("Other must swap views")
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := NewAccessError("SRV01", "Remote Registry", errors.New("rpc unavailable"))
	wrapped := fmt.Errorf("read startup entries: %w", err)

	if !errors.Is(wrapped, ErrAccess) {
		t.Fatal("access error must match ErrAccess")
	}
	if errors.Is(wrapped, ErrPermission) {
		t.Fatal("access error must not match ErrPermission")
	}
	if got := err.Error(); got != "on <SRV01>, <Remote Registry> service is not running: rpc unavailable" {
		t.Errorf("unexpected message %q", got)
	}

	kind, ok := KindOf(wrapped)
	if !ok || kind != ErrKindAccess {
		t.Errorf("KindOf = %v, %v; want access, true", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf must report false for untyped errors")
	}
}
