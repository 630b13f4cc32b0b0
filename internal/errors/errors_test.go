package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestRenderError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *RenderError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := test.err.Error()
			if result != test.expected {
				t.Errorf("Error() = %q, want %q", result, test.expected)
			}
		})
	}
}

func TestRenderError_WithContext(t *testing.T) {
	err := New(CategoryRender, SeverityWarning, "page render failed").
		WithContext("page", "pkg/index.html").
		WithContext("node", "pkg")

	if err.Context == nil {
		t.Fatal("Context should not be nil")
	}

	if err.Context["page"] != "pkg/index.html" {
		t.Errorf("Context[page] = %v, want pkg/index.html", err.Context["page"])
	}

	if err.Context["node"] != "pkg" {
		t.Errorf("Context[node] = %v, want pkg", err.Context["node"])
	}
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	locationErr := New(CategoryLocation, SeverityFatal, "location error")
	standardErr := fmt.Errorf("standard error")
	wrapped := fmt.Errorf("outer: %w", locationErr)

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match location category", configErr, CategoryLocation, false},
		{"location error matches location category", locationErr, CategoryLocation, true},
		{"wrapped location error still matches", wrapped, CategoryLocation, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := IsCategory(test.err, test.category)
			if result != test.expected {
				t.Errorf("IsCategory() = %v, want %v", result, test.expected)
			}
		})
	}
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/config.yaml")
		if err.Category != CategoryConfig {
			t.Errorf("Category = %v, want %v", err.Category, CategoryConfig)
		}
		if err.Severity != SeverityFatal {
			t.Errorf("Severity = %v, want %v", err.Severity, SeverityFatal)
		}
		if err.Context["path"] != "/path/to/config.yaml" {
			t.Errorf("Context[path] = %v, want /path/to/config.yaml", err.Context["path"])
		}
	})

	t.Run("PageRenderError", func(t *testing.T) {
		cause := fmt.Errorf("dangling link")
		err := PageRenderError("pkg/f.html", cause)
		if err.Category != CategoryRender {
			t.Errorf("Category = %v, want %v", err.Category, CategoryRender)
		}
		if !stdErrors.Is(err, cause) {
			t.Errorf("Cause should match wrapped cause: %v", cause)
		}
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("output.locations", "unsupported value")
		if err.Category != CategoryValidation {
			t.Errorf("Category = %v, want %v", err.Category, CategoryValidation)
		}
		if err.Context["field"] != "output.locations" {
			t.Errorf("Context[field] = %v, want output.locations", err.Context["field"])
		}
		if err.Context["reason"] != "unsupported value" {
			t.Errorf("Context[reason] = %v, want unsupported value", err.Context["reason"])
		}
	})
}
