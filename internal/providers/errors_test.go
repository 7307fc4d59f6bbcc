package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{Source: "football-data", StatusCode: 403, Body: "restricted resource"}
	want := "football-data: unexpected status 403: restricted resource"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}

	bare := &UpstreamError{Source: "espn", StatusCode: 502}
	if bare.Error() != "espn: unexpected status 502" {
		t.Fatalf("unexpected message %q", bare.Error())
	}
}

func TestAsHelpersUnwrapWrappedErrors(t *testing.T) {
	upstream := fmt.Errorf("fetch competitions: %w", &UpstreamError{Source: "football-data", StatusCode: 500})
	if got, ok := AsUpstreamError(upstream); !ok || got.StatusCode != 500 {
		t.Fatalf("expected wrapped upstream error, got %v %v", got, ok)
	}

	notFound := fmt.Errorf("resolve: %w", &NotFoundError{Kind: "competition", Name: "Serie Z"})
	if got, ok := AsNotFoundError(notFound); !ok || got.Name != "Serie Z" {
		t.Fatalf("expected wrapped not-found error, got %v %v", got, ok)
	}

	invalid := fmt.Errorf("validate: %w", &InvalidArgumentError{Field: "month", Reason: "must be between 1 and 12"})
	if got, ok := AsInvalidArgumentError(invalid); !ok || got.Field != "month" {
		t.Fatalf("expected wrapped invalid-argument error, got %v %v", got, ok)
	}

	if _, ok := AsUpstreamError(errors.New("plain")); ok {
		t.Fatalf("plain error should not unwrap")
	}
}
