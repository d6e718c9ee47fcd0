package openai

import (
	"context"
	"errors"
	"testing"

	"github.com/lumelab/focuswatch/internal/domain/analysis"
)

func TestClassifyMissingCredential(t *testing.T) {
	t.Setenv(credentialEnv, "")

	c := NewClient("")
	_, err := c.Classify(context.Background(), "payload")
	if !errors.Is(err, analysis.ErrCredentialMissing) {
		t.Fatalf("error = %v, want ErrCredentialMissing", err)
	}
}

func TestClassifyCredentialReadExactlyOnce(t *testing.T) {
	t.Setenv(credentialEnv, "")

	c := NewClient("")
	if _, err := c.Classify(context.Background(), "payload"); !errors.Is(err, analysis.ErrCredentialMissing) {
		t.Fatalf("first call error = %v, want ErrCredentialMissing", err)
	}

	// Setting the credential after first use must not change anything:
	// the handle is memoized per process lifetime.
	t.Setenv(credentialEnv, "sk-now-present")
	if _, err := c.Classify(context.Background(), "payload"); !errors.Is(err, analysis.ErrCredentialMissing) {
		t.Errorf("second call error = %v, want the same ErrCredentialMissing", err)
	}
}

func TestClassifyWhitespaceCredentialIsMissing(t *testing.T) {
	t.Setenv(credentialEnv, "   ")

	c := NewClient("")
	_, err := c.Classify(context.Background(), "payload")
	if !errors.Is(err, analysis.ErrCredentialMissing) {
		t.Fatalf("error = %v, want ErrCredentialMissing", err)
	}
}
