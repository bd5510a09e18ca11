package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIncomingPath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"url absolut dibuang scheme+host-nya", "http://host/uploads/candidates/a.jpg", "/uploads/candidates/a.jpg"},
		{"https juga", "https://cdn.example.edu/uploads/candidates/b.png", "/uploads/candidates/b.png"},
		{"root-relative tetap", "/uploads/candidates/a.jpg", "/uploads/candidates/a.jpg"},
		{"nama file polos diberi prefix /", "a.jpg", "/a.jpg"},
		{"kosong tetap kosong", "", ""},
		{"whitespace saja", "   ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, NormalizeIncomingPath(tc.in))
		})
	}
}

func TestToAbsoluteURL(t *testing.T) {
	r := NewImageURLResolver("http://api.example.edu/")

	abs := r.ToAbsoluteURL("/uploads/candidates/a.jpg")
	require.NotNil(t, abs)
	assert.Equal(t, "http://api.example.edu/uploads/candidates/a.jpg", *abs)

	// Tanpa leading slash tetap di-resolve benar.
	abs = r.ToAbsoluteURL("uploads/candidates/a.jpg")
	require.NotNil(t, abs)
	assert.Equal(t, "http://api.example.edu/uploads/candidates/a.jpg", *abs)

	// Sudah absolut → pass through.
	abs = r.ToAbsoluteURL("https://cdn.example.edu/x.jpg")
	require.NotNil(t, abs)
	assert.Equal(t, "https://cdn.example.edu/x.jpg", *abs)

	// Kosong → nil (JSON null).
	assert.Nil(t, r.ToAbsoluteURL(""))
	assert.Nil(t, r.ToAbsoluteURL("   "))
}
