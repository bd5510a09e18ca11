package utils

import (
	"net/url"
	"strings"
)

// ImageURLResolver mengurus dua arah normalisasi path gambar kandidat:
//   - masuk  : apapun bentuk inputnya (URL absolut / path root-relative / nama
//     file polos) → disimpan sebagai path relatif kanonik, mis. "/uploads/candidates/a.jpg"
//   - keluar : path relatif di database → URL absolut terhadap BaseURL yang
//     sedang dikonfigurasi, supaya frontend tinggal pakai.
type ImageURLResolver struct {
	BaseURL string // mis. "http://localhost:8080", tanpa trailing slash
}

// NewImageURLResolver membuat resolver dengan BaseURL yang sudah dirapikan.
func NewImageURLResolver(baseURL string) *ImageURLResolver {
	return &ImageURLResolver{BaseURL: strings.TrimRight(baseURL, "/")}
}

// NormalizeIncomingPath mengubah nilai image mentah menjadi path relatif kanonik.
//   - "http://host/uploads/candidates/a.jpg" → "/uploads/candidates/a.jpg" (scheme+host dibuang)
//   - "/uploads/candidates/a.jpg"            → tetap
//   - "a.jpg"                                → "/a.jpg"
//   - ""                                     → ""
func NormalizeIncomingPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	// URL absolut: ambil path-nya saja.
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		u, err := url.Parse(raw)
		if err != nil || u.Path == "" {
			return ""
		}
		return u.Path
	}

	// Sudah root-relative.
	if strings.HasPrefix(raw, "/") {
		return raw
	}

	// Nama file polos.
	return "/" + raw
}

// ToAbsoluteURL me-resolve path relatif tersimpan menjadi URL absolut.
// Mengembalikan nil untuk input kosong/tidak valid supaya JSON-nya jadi null,
// bukan string kosong yang menyesatkan frontend.
func (r *ImageURLResolver) ToAbsoluteURL(stored string) *string {
	stored = strings.TrimSpace(stored)
	if stored == "" {
		return nil
	}

	// Sudah absolut → pass through.
	if strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return &stored
	}

	if !strings.HasPrefix(stored, "/") {
		stored = "/" + stored
	}

	abs := r.BaseURL + stored
	return &abs
}
