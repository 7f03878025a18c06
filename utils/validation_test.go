package utils

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	Email string `validate:"required,email"`
	Limit int    `validate:"min=1"`
}

func TestValidateStruct(t *testing.T) {
	if err := ValidateStruct(sampleRequest{Email: "jo@example.com", Limit: 5}); err != nil {
		t.Errorf("valid struct: got %v", err)
	}

	err := ValidateStruct(sampleRequest{Email: "not-an-email", Limit: 0})
	if err == nil {
		t.Fatal("invalid struct should fail")
	}
	if !strings.Contains(err.Error(), "Email") || !strings.Contains(err.Error(), "Limit") {
		t.Errorf("error should name both failing fields, got %q", err.Error())
	}
}

func TestGenerateQueryCacheKeyIsOrderIndependent(t *testing.T) {
	a := GenerateQueryCacheKey("properties", map[string]string{"city": "NYC", "page": "2"})
	b := GenerateQueryCacheKey("properties", map[string]string{"page": "2", "city": "NYC"})
	if a != b {
		t.Errorf("same params should produce the same key: %q vs %q", a, b)
	}

	c := GenerateQueryCacheKey("properties", map[string]string{"city": "LA", "page": "2"})
	if a == c {
		t.Error("different params should produce different keys")
	}
}
