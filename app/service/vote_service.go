package service

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"

	"gorm.io/gorm"
)

// Positions adalah daftar jabatan tetap yang di-tally independen per pemilihan.
// Urutannya dipakai juga untuk urutan penyajian hasil.
var Positions = []string{
	"president",
	"vice_president",
	"secretary",
	"treasurer",
	"auditor",
	"mmo",
	"representatives",
}

// Taksonomi year-level untuk statistik non-SSG. Semua yang dihitung ≥5
// masuk bucket teratas.
var yearLevelBuckets = []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year+"}

// PositionTally adalah satu pasangan (nama kandidat, jumlah suara).
type PositionTally struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ElectionResults adalah hasil agregasi per posisi untuk satu tipe pemilihan.
// Tiap posisi berisi tally terurut count menurun; seri mempertahankan urutan
// kemunculan pertama (stable sort).
type ElectionResults struct {
	ElectionType string                     `json:"electionType"`
	TotalVoters  int64                      `json:"totalVoters"`
	PerPosition  map[string][]PositionTally `json:"perPosition"`
}

// GenderBreakdown adalah rekap jumlah pemilih per gender.
// Gender kosong/tidak dikenal dihitung sebagai Other.
type GenderBreakdown struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
	Other  int64 `json:"other"`
}

// DepartmentStat adalah satu bucket statistik per department (khusus SSG),
// dengan sub-breakdown gender.
type DepartmentStat struct {
	Department string          `json:"department"`
	Total      int64           `json:"total"`
	Genders    GenderBreakdown `json:"genders"`
}

// ElectionStatistics adalah statistik partisipasi tahun berjalan.
// SSG di-bucket per department; tipe lain per year-level.
// Genders selalu terisi rekap keseluruhan.
type ElectionStatistics struct {
	ElectionType string           `json:"electionType"`
	TotalVotes   int64            `json:"totalVotes"`
	ByDepartment []DepartmentStat `json:"byDepartment,omitempty"`
	ByYearLevel  map[string]int64 `json:"byYearLevel,omitempty"`
	Genders      GenderBreakdown  `json:"genders"`
}

// VotingHistory mempartisi pemilih menjadi sudah/belum memberikan suara
// untuk satu tipe pemilihan di tahun berjalan.
type VotingHistory struct {
	ElectionType  string        `json:"electionType"`
	Voted         []model.Voter `json:"voted"`
	NotVoted      []model.Voter `json:"notVoted"`
	VotedCount    int           `json:"votedCount"`
	NotVotedCount int           `json:"notVotedCount"`
}

// VoteService adalah inti domain pemilihan: pencatatan suara (dengan invariant
// satu-suara-per-siklus) dan seluruh agregasi hasil/statistik/riwayat.
type VoteService interface {
	// Cast mencatat satu surat suara. Pelanggaran satu-suara-per-siklus
	// dikembalikan sebagai ErrAlreadyVoted, tidak pernah sebagai 500.
	Cast(vote *model.Vote) error

	Results(electionType string) (*ElectionResults, error)
	Statistics(electionType string) (*ElectionStatistics, error)
	History(electionType string) (*VotingHistory, error)
}

type voteService struct {
	voteRepo  repository.VoteRepository
	voterRepo repository.VoterRepository
	auditRepo repository.AuditRepository
	now       func() time.Time
}

// NewVoteService menghubungkan Service dengan Repository.
func NewVoteService(
	voteRepo repository.VoteRepository,
	voterRepo repository.VoterRepository,
	auditRepo repository.AuditRepository,
) VoteService {
	return &voteService{
		voteRepo:  voteRepo,
		voterRepo: voterRepo,
		auditRepo: auditRepo,
		now:       time.Now,
	}
}

// Cast mencatat satu surat suara.
//
// Tidak ada pre-check "sudah memilih atau belum": insert-nya sendiri yang jadi
// wasit lewat composite unique index (student_id, election_type, vote_year).
// Field posisi yang tidak dikirim otomatis string kosong.
func (s *voteService) Cast(vote *model.Vote) error {
	now := s.now().UTC()
	vote.VotedDate = now
	vote.VoteYear = now.Year()

	if err := s.voteRepo.Create(vote); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrAlreadyVoted
		}
		return err
	}

	logAudit(s.auditRepo, vote.VotersID, model.AuditActionVoteCast, vote.StudentID, vote.ElectionType)
	return nil
}

// Results men-tally kemunculan tiap nama kandidat per posisi, independen
// antar posisi. String kosong (posisi tidak dipilih/dikontes) tidak dihitung.
func (s *voteService) Results(electionType string) (*ElectionResults, error) {
	votes, err := s.voteRepo.FindByElectionType(electionType)
	if err != nil {
		return nil, err
	}

	results := &ElectionResults{
		ElectionType: electionType,
		TotalVoters:  int64(len(votes)),
		PerPosition:  make(map[string][]PositionTally, len(Positions)),
	}

	for _, position := range Positions {
		counts := make(map[string]int64)
		order := []string{} // urutan kemunculan pertama, basis stable sort

		for _, v := range votes {
			name := positionValue(&v, position)
			if name == "" {
				continue
			}
			if _, seen := counts[name]; !seen {
				order = append(order, name)
			}
			counts[name]++
		}

		tallies := make([]PositionTally, 0, len(order))
		for _, name := range order {
			tallies = append(tallies, PositionTally{Name: name, Count: counts[name]})
		}

		// Stable: kandidat dengan count sama tetap pada urutan first-seen.
		sort.SliceStable(tallies, func(i, j int) bool {
			return tallies[i].Count > tallies[j].Count
		})

		results.PerPosition[position] = tallies
	}

	return results, nil
}

// Statistics membangun statistik partisipasi tahun berjalan.
// SSG → bucket per department + sub-breakdown gender per department.
// Selainnya → bucket per year-level (taksonomi tetap 1st..4th Year, 5th Year+).
// Rekap gender keseluruhan selalu ikut.
func (s *voteService) Statistics(electionType string) (*ElectionStatistics, error) {
	year := s.now().UTC().Year()

	rows, err := s.voteRepo.FindWithVoterInfo(electionType, year)
	if err != nil {
		return nil, err
	}

	stats := &ElectionStatistics{
		ElectionType: electionType,
		TotalVotes:   int64(len(rows)),
	}

	for _, row := range rows {
		bumpGender(&stats.Genders, row.Gender)
	}

	if electionType == "SSG" {
		stats.ByDepartment = bucketByDepartment(rows)
	} else {
		stats.ByYearLevel = bucketByYearLevel(rows, year)
	}

	return stats, nil
}

// History mengambil seluruh pemilih (difilter department kecuali SSG) dan
// mempartisinya berdasarkan sudah/belum memberikan suara tahun ini.
func (s *voteService) History(electionType string) (*VotingHistory, error) {
	var voters []model.Voter
	var err error

	if electionType == "SSG" {
		voters, err = s.voterRepo.FindAll()
	} else {
		// Pemilihan non-SSG berskala department: tipenya sekaligus
		// nama department pemiliknya.
		voters, err = s.voterRepo.FindByDepartment(electionType)
	}
	if err != nil {
		return nil, err
	}

	votedIDs, err := s.voteRepo.VotedStudentIDs(electionType, s.now().UTC().Year())
	if err != nil {
		return nil, err
	}

	votedSet := make(map[string]struct{}, len(votedIDs))
	for _, id := range votedIDs {
		votedSet[id] = struct{}{}
	}

	history := &VotingHistory{
		ElectionType: electionType,
		Voted:        []model.Voter{},
		NotVoted:     []model.Voter{},
	}

	for _, v := range voters {
		if _, ok := votedSet[v.StudentID]; ok {
			history.Voted = append(history.Voted, v)
		} else {
			history.NotVoted = append(history.NotVoted, v)
		}
	}

	history.VotedCount = len(history.Voted)
	history.NotVotedCount = len(history.NotVoted)
	return history, nil
}

// positionValue mengambil nilai kolom posisi dari satu surat suara.
func positionValue(v *model.Vote, position string) string {
	switch position {
	case "president":
		return v.President
	case "vice_president":
		return v.VicePresident
	case "secretary":
		return v.Secretary
	case "treasurer":
		return v.Treasurer
	case "auditor":
		return v.Auditor
	case "mmo":
		return v.MMO
	case "representatives":
		return v.Representatives
	}
	return ""
}

// bumpGender menghitung satu pemilih ke rekap gender.
// Selain "Male"/"Female" (case-insensitive) dihitung Other.
func bumpGender(g *GenderBreakdown, gender string) {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male":
		g.Male++
	case "female":
		g.Female++
	default:
		g.Other++
	}
}

// bucketByDepartment mengelompokkan suara per department (urut nama department).
func bucketByDepartment(rows []repository.VoteWithVoterInfo) []DepartmentStat {
	byDept := make(map[string]*DepartmentStat)
	order := []string{}

	for _, row := range rows {
		dept := row.Department
		if dept == "" {
			dept = "Unknown"
		}
		stat, ok := byDept[dept]
		if !ok {
			stat = &DepartmentStat{Department: dept}
			byDept[dept] = stat
			order = append(order, dept)
		}
		stat.Total++
		bumpGender(&stat.Genders, row.Gender)
	}

	sort.Strings(order)
	out := make([]DepartmentStat, 0, len(order))
	for _, dept := range order {
		out = append(out, *byDept[dept])
	}
	return out
}

// bucketByYearLevel mengelompokkan suara per year-level. Semua bucket taksonomi
// tetap ada di hasil walau nilainya 0.
func bucketByYearLevel(rows []repository.VoteWithVoterInfo, currentYear int) map[string]int64 {
	buckets := make(map[string]int64, len(yearLevelBuckets))
	for _, b := range yearLevelBuckets {
		buckets[b] = 0
	}

	for _, row := range rows {
		buckets[deriveYearLevel(row.YearLevel, row.StudentID, currentYear)]++
	}
	return buckets
}

// deriveYearLevel menentukan bucket year-level seorang pemilih:
//   - pakai field year_level kalau ada dan bisa dibaca;
//   - kalau tidak, hitung dari 4 karakter pertama student_id sebagai tahun
//     masuk: currentYear - enrollmentYear + 1;
//   - hasil ≥5 (atau tidak bisa ditentukan sama sekali) masuk "5th Year+".
func deriveYearLevel(yearLevel, studentID string, currentYear int) string {
	if level, ok := parseYearLevel(yearLevel); ok {
		return bucketForLevel(level)
	}

	if len(studentID) >= 4 {
		if enrollment, err := strconv.Atoi(studentID[:4]); err == nil && enrollment > 0 && enrollment <= currentYear {
			return bucketForLevel(currentYear - enrollment + 1)
		}
	}

	return yearLevelBuckets[len(yearLevelBuckets)-1]
}

// parseYearLevel membaca angka level dari field year_level ("3", "3rd Year", dst).
func parseYearLevel(yearLevel string) (int, bool) {
	yearLevel = strings.TrimSpace(yearLevel)
	if yearLevel == "" {
		return 0, false
	}

	digits := ""
	for _, r := range yearLevel {
		if r < '0' || r > '9' {
			break
		}
		digits += string(r)
	}
	if digits == "" {
		return 0, false
	}

	level, err := strconv.Atoi(digits)
	if err != nil || level < 1 {
		return 0, false
	}
	return level, true
}

// bucketForLevel memetakan level numerik ke bucket taksonomi, clamp ke "5th Year+".
func bucketForLevel(level int) string {
	if level >= 1 && level <= 4 {
		return yearLevelBuckets[level-1]
	}
	return yearLevelBuckets[len(yearLevelBuckets)-1]
}
