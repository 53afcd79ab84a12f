// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/url"
	"testing"
	"time"
)

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// DecodeJSON unmarshals data into a T, failing the test on malformed input.
func DecodeJSON[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatalf("Failed to decode %s: %v", data, err)
	}
	return v
}

// FormFile is one file part of a multipart form.
type FormFile struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartForm encodes fields and files the way a browser submits an admin form.
// It returns the body and the Content-Type header carrying the boundary.
func MultipartForm(t *testing.T, fields url.Values, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, values := range fields {
		for _, v := range values {
			if err := w.WriteField(key, v); err != nil {
				t.Fatalf("Failed to write field %s: %v", key, err)
			}
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			t.Fatalf("Failed to create part %s: %v", f.Filename, err)
		}
		if _, err := part.Write(f.Content); err != nil {
			t.Fatalf("Failed to write part %s: %v", f.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close form: %v", err)
	}
	return &buf, w.FormDataContentType()
}
