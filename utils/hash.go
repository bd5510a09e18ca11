package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyCredential dikembalikan kalau plaintext atau hash yang mau
// dibandingkan kosong. Input kosong adalah input error, bukan "password salah".
var ErrEmptyCredential = errors.New("empty credential input")

// HashPassword meng-hash password plaintext dengan bcrypt.
// Password asli tidak pernah disimpan ke database.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyCredential
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword membandingkan plaintext dengan hash bcrypt di database.
// Mengembalikan (true, nil) kalau cocok, (false, nil) kalau tidak cocok,
// dan error hanya untuk input kosong / hash rusak.
func VerifyPassword(plaintext, hashed string) (bool, error) {
	if plaintext == "" || hashed == "" {
		return false, ErrEmptyCredential
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
