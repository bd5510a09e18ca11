package utils

// APIResponse adalah format standar JSON yang diterima Frontend.
// Contoh sukses : { "success": true,  "message": "Vote recorded", "data": { ... } }
// Contoh gagal  : { "success": false, "message": "you've already voted" }
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`   // omitempty: kalau nil, field tidak dimunculkan
	Errors  interface{} `json:"errors,omitempty"` // detail teknis; bisa string / map tergantung kebutuhan
}

// BuildResponseSuccess digunakan saat request berhasil (HTTP 200/201).
func BuildResponseSuccess(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// BuildResponseFailed digunakan saat terjadi error (HTTP 400, 401, 404, 409, 500).
// - message: pesan utama untuk user (misal: "you've already voted").
// - err    : detail error teknis (biasanya string).
func BuildResponseFailed(message string, err interface{}, data interface{}) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
		Errors:  err,
		Data:    data,
	}
}
