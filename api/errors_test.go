// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// errors_test.go — Structured error type and sentinel mapping.
package api_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/momentics/disposepool/api"
)

// TestError_UnwrapMatchesSentinels checks that every code maps onto the
// sentinel callers match with errors.Is.
func TestError_UnwrapMatchesSentinels(t *testing.T) {
	cases := []struct {
		code     api.ErrorCode
		sentinel error
	}{
		{api.ErrCodeDisposedAccess, api.ErrUseAfterDispose},
		{api.ErrCodeAllocationFailure, api.ErrAllocationFailure},
		{api.ErrCodeInvalidArgument, api.ErrInvalidArgument},
		{api.ErrCodeClosed, api.ErrProviderClosed},
	}
	for _, c := range cases {
		err := api.NewError(c.code, "boom")
		if !errors.Is(err, c.sentinel) {
			t.Errorf("code %d does not match its sentinel", c.code)
		}
	}

	// Codes without a sentinel unwrap to nothing.
	if errors.Unwrap(api.NewError(api.ErrCodeInternal, "boom")) != nil {
		t.Error("internal code unexpectedly unwraps to a sentinel")
	}
}

// TestError_ContextFormatting verifies message-only and contextual
// renderings plus lazy context allocation.
func TestError_ContextFormatting(t *testing.T) {
	plain := api.NewError(api.ErrCodeInvalidArgument, "bad capacity")
	if plain.Error() != "bad capacity" {
		t.Errorf("plain rendering = %q", plain.Error())
	}
	if plain.Context != nil {
		t.Error("context allocated before WithContext")
	}

	rich := plain.WithContext("capacity", -1)
	if got := rich.Error(); !strings.Contains(got, "capacity") {
		t.Errorf("contextual rendering lost the key: %q", got)
	}
	if rich.Context["capacity"] != -1 {
		t.Error("context value not stored")
	}
}
