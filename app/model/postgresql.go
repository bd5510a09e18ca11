package model

import (
	"time"
)

// Student merepresentasikan data roster mahasiswa dari sistem akademik.
// Tabel ini read-only bagi aplikasi: hanya dipakai untuk memvalidasi
// kelayakan registrasi voter (student_id + firstname harus cocok).
type Student struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StudentID string `gorm:"type:varchar(20);uniqueIndex;not null;column:student_id" json:"studentId"`
	Firstname string `gorm:"type:varchar(100);not null" json:"firstname"`
}

// Voter merepresentasikan mahasiswa yang sudah terdaftar sebagai pemilih.
// Invariant: maksimal satu Voter per student_id (unique index).
// VotersID digenerate dengan format VOTER-<tahun>-<seq 3 digit>,
// sequence reset setiap tahun.
type Voter struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	StudentID        string    `gorm:"type:varchar(20);uniqueIndex;not null;column:student_id" json:"studentId"`
	VotersID         string    `gorm:"type:varchar(20);uniqueIndex;not null;column:voters_id" json:"votersId"`
	Firstname        string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname         string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Department       string    `gorm:"type:varchar(100)" json:"department"`
	Course           string    `gorm:"type:varchar(100)" json:"course"`
	Year             string    `gorm:"type:varchar(20)" json:"year"`
	Email            string    `gorm:"type:varchar(150)" json:"email"`
	Password         string    `gorm:"not null" json:"-"` // hash bcrypt, jangan pernah dikirim ke frontend
	FacialDescriptor string    `gorm:"type:text;column:facial_descriptor" json:"facialDescriptor"`
	Gender           string    `gorm:"type:varchar(10);default:'Other'" json:"gender"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Candidate merepresentasikan satu pengajuan pencalonan (candidacy filing).
// Invariant: maksimal satu pencalonan per student_id, dicek dulu lewat lookup
// supaya pesannya ramah, tapi unique index tetap jadi penjaga terakhir.
type Candidate struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StudentID       string    `gorm:"type:varchar(20);uniqueIndex;not null;column:student_id" json:"studentId"`
	Firstname       string    `gorm:"type:varchar(100);not null" json:"firstname"`
	Lastname        string    `gorm:"type:varchar(100);not null" json:"lastname"`
	Department      string    `gorm:"type:varchar(100)" json:"department"`
	Email           string    `gorm:"type:varchar(150)" json:"email"`
	Position        string    `gorm:"type:varchar(50);not null" json:"position"`
	ElectionType    string    `gorm:"type:varchar(50);not null;column:election_type" json:"electionType"`
	Party           string    `gorm:"type:varchar(100)" json:"party"`
	AboutYourself   string    `gorm:"type:text;column:about_yourself" json:"aboutYourself"`
	Purpose         string    `gorm:"type:text" json:"purpose"`
	Status          string    `gorm:"type:varchar(20);default:'PENDING'" json:"status"` // dinormalisasi uppercase di service
	ApproverRemarks string    `gorm:"type:text;column:approver_remarks" json:"approverRemarks"`
	Image           *string   `gorm:"type:varchar(255)" json:"image"` // path relatif kanonik; di-resolve ke URL absolut saat retrieval
	FiledDate       time.Time `gorm:"column:filed_date" json:"filedDate"`
}

// Admin merepresentasikan akun pengelola pemilu.
// Departments disimpan sebagai string gabungan koma (mis. "CCS,CBA").
type Admin struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AdminID     string    `gorm:"type:varchar(50);uniqueIndex;not null;column:admin_id" json:"adminId"`
	Password    string    `gorm:"not null" json:"-"` // hash bcrypt (disatukan dengan skema voter)
	Fullname    string    `gorm:"type:varchar(150);not null" json:"fullname"`
	Email       string    `gorm:"type:varchar(150)" json:"email"`
	Departments string    `gorm:"type:varchar(255)" json:"departments"`
	Position    string    `gorm:"type:varchar(100)" json:"position"`
	AddedBy     string    `gorm:"type:varchar(150);column:added_by" json:"addedBy"`
	DateAdded   time.Time `gorm:"autoCreateTime;column:date_added" json:"dateAdded"`
}

// CandidacySchedule menyimpan jendela waktu pengajuan pencalonan per tipe.
// Di-upsert: kalau baris untuk candidacy_type sudah ada → update, kalau belum → insert.
type CandidacySchedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CandidacyType string    `gorm:"type:varchar(50);uniqueIndex;not null;column:candidacy_type" json:"candidacyType"`
	OpenDate      time.Time `gorm:"column:open_date" json:"openDate"` // di-set ke now setiap (re)aktivasi
	CloseDate     time.Time `gorm:"column:close_date" json:"closeDate"`
	Status        string    `gorm:"type:varchar(20)" json:"status"`
	OpenedBy      string    `gorm:"type:varchar(150);column:opened_by" json:"openedBy"`
}

// ElectionSchedule menyimpan jendela waktu pemilihan per tipe,
// semantik upsert-nya sama dengan CandidacySchedule.
type ElectionSchedule struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ElectionType string    `gorm:"type:varchar(50);uniqueIndex;not null;column:election_type" json:"electionType"`
	OpenDate     time.Time `gorm:"column:open_date" json:"openDate"`
	CloseDate    time.Time `gorm:"column:close_date" json:"closeDate"`
	Status       string    `gorm:"type:varchar(20)" json:"status"`
	OpenedBy     string    `gorm:"type:varchar(150);column:opened_by" json:"openedBy"`
}

// Vote adalah satu surat suara. Append-only: tidak pernah di-update/di-delete
// lewat API. Satu kolom per posisi; string kosong artinya posisi tidak dipilih
// atau memang tidak dikontes.
//
// Invariant satu-suara-per-siklus dijaga composite unique index
// (student_id, election_type, vote_year). VoteYear disimpan denormalisasi
// karena mengekstrak tahun dari timestamp di dalam unique index tidak
// portabel antar database.
type Vote struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	StudentID       string    `gorm:"type:varchar(20);not null;column:student_id;uniqueIndex:idx_one_vote_per_cycle" json:"studentId"`
	VotersID        string    `gorm:"type:varchar(20);column:voters_id" json:"votersId"`
	Fullname        string    `gorm:"type:varchar(200)" json:"fullname"`
	Email           string    `gorm:"type:varchar(150)" json:"email"`
	Department      string    `gorm:"type:varchar(100)" json:"department"`
	ElectionType    string    `gorm:"type:varchar(50);not null;column:election_type;uniqueIndex:idx_one_vote_per_cycle" json:"electionType"`
	VoteYear        int       `gorm:"not null;column:vote_year;uniqueIndex:idx_one_vote_per_cycle" json:"voteYear"`
	President       string    `gorm:"type:varchar(200)" json:"president"`
	VicePresident   string    `gorm:"type:varchar(200);column:vice_president" json:"vicePresident"`
	Secretary       string    `gorm:"type:varchar(200)" json:"secretary"`
	Treasurer       string    `gorm:"type:varchar(200)" json:"treasurer"`
	Auditor         string    `gorm:"type:varchar(200)" json:"auditor"`
	MMO             string    `gorm:"type:varchar(200);column:mmo" json:"mmo"`
	Representatives string    `gorm:"type:varchar(200)" json:"representatives"`
	VotedDate       time.Time `gorm:"column:voted_date" json:"votedDate"`
}
