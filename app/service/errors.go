package service

import "errors"

// Sentinel error domain. Pesan-pesan ini adalah kontrak dengan frontend:
// handler memetakannya ke {success:false, message} + status code yang sesuai,
// tidak pernah dilempar sebagai 500.
var (
	// Konflik (dipetakan ke 409)
	ErrAlreadyFiled = errors.New("already filed")
	ErrVoterExists  = errors.New("student ID already exists")
	ErrAlreadyVoted = errors.New("you've already voted")
	ErrAdminExists  = errors.New("admin ID already exists")

	// Not found (dipetakan ke 404)
	ErrStudentNotFound  = errors.New("student not found")
	ErrVoterNotFound    = errors.New("voter not found")
	ErrAdminNotFound    = errors.New("admin not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrNoDataFound      = errors.New("no data found")

	// Autentikasi (dipetakan ke 401)
	ErrInvalidPassword = errors.New("invalid password")
)
