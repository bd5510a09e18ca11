package service

import (
	"testing"
	"time"

	"evoting-backend/app/model"
	"evoting-backend/app/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVoteServiceForTest(t *testing.T, now func() time.Time) (*voteService, *testingDeps) {
	t.Helper()

	db := setupTestDB(t)
	svc := NewVoteService(
		repository.NewVoteRepository(db),
		repository.NewVoterRepository(db),
		nil,
	).(*voteService)
	svc.now = now

	return svc, &testingDeps{db: db}
}

func ballot(studentID, electionType string) *model.Vote {
	return &model.Vote{
		StudentID:    studentID,
		VotersID:     "VOTER-2026-001",
		Fullname:     "Juan Dela Cruz",
		Department:   "CCS",
		ElectionType: electionType,
	}
}

func TestCastStampsAndRejectsDuplicate(t *testing.T) {
	svc, deps := newVoteServiceForTest(t, fixedClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))

	first := ballot("2024-0001", "SSG")
	first.President = "Reyes"
	require.NoError(t, svc.Cast(first))
	assert.Equal(t, 2026, first.VoteYear)
	assert.False(t, first.VotedDate.IsZero())

	// Suara kedua di siklus yang sama → ditolak, tidak ada baris kedua.
	second := ballot("2024-0001", "SSG")
	second.President = "Santos"
	assert.ErrorIs(t, svc.Cast(second), ErrAlreadyVoted)

	var count int64
	require.NoError(t, deps.db.Model(&model.Vote{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// Tipe pemilihan berbeda masih boleh.
	require.NoError(t, svc.Cast(ballot("2024-0001", "CCS")))
}

func TestCastAllowsNewCalendarYear(t *testing.T) {
	year := 2026
	svc, _ := newVoteServiceForTest(t, func() time.Time {
		return time.Date(year, 9, 1, 8, 0, 0, 0, time.UTC)
	})

	require.NoError(t, svc.Cast(ballot("2024-0001", "SSG")))

	// Tahun berikutnya, siklus baru: boleh memilih lagi.
	year = 2027
	require.NoError(t, svc.Cast(ballot("2024-0001", "SSG")))
}

func TestResultsTallyPerPosition(t *testing.T) {
	svc, _ := newVoteServiceForTest(t, stepClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))

	cast := func(studentID, president, secretary string) {
		v := ballot(studentID, "SSG")
		v.President = president
		v.Secretary = secretary
		require.NoError(t, svc.Cast(v))
	}

	cast("2024-0001", "Reyes", "Lim")
	cast("2024-0002", "Reyes", "Tan")
	cast("2024-0003", "Santos", "Lim")
	cast("2024-0004", "Reyes", "Tan")
	cast("2024-0005", "Cruz", "") // secretary kosong → tidak dihitung

	results, err := svc.Results("SSG")
	require.NoError(t, err)

	assert.EqualValues(t, 5, results.TotalVoters)

	president := results.PerPosition["president"]
	require.Len(t, president, 3)
	assert.Equal(t, PositionTally{Name: "Reyes", Count: 3}, president[0])
	assert.Equal(t, PositionTally{Name: "Santos", Count: 1}, president[1])
	assert.Equal(t, PositionTally{Name: "Cruz", Count: 1}, president[2])

	// Jumlah tally = jumlah surat suara dengan nilai non-kosong di posisi itu.
	var secretaryTotal int64
	for _, tally := range results.PerPosition["secretary"] {
		secretaryTotal += tally.Count
	}
	assert.EqualValues(t, 4, secretaryTotal)

	// Posisi yang tidak dikontes tetap ada di payload, kosong.
	assert.Empty(t, results.PerPosition["treasurer"])
}

func TestResultsTieKeepsFirstSeenOrder(t *testing.T) {
	svc, _ := newVoteServiceForTest(t, stepClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))

	order := []string{"Lim", "Tan", "Lim", "Tan"}
	for i, name := range order {
		v := ballot("2024-000"+string(rune('1'+i)), "SSG")
		v.Secretary = name
		require.NoError(t, svc.Cast(v))
	}

	results, err := svc.Results("SSG")
	require.NoError(t, err)

	secretary := results.PerPosition["secretary"]
	require.Len(t, secretary, 2)
	// Seri 2-2: Lim muncul duluan → tetap duluan (stable sort).
	assert.Equal(t, "Lim", secretary[0].Name)
	assert.Equal(t, "Tan", secretary[1].Name)
	assert.Equal(t, secretary[0].Count, secretary[1].Count)
}

func seedVoter(t *testing.T, deps *testingDeps, studentID, votersID, department, gender, year string) {
	t.Helper()
	require.NoError(t, deps.db.Create(&model.Voter{
		StudentID:  studentID,
		VotersID:   votersID,
		Firstname:  "Test",
		Lastname:   "Voter",
		Department: department,
		Year:       year,
		Password:   "x",
		Gender:     gender,
	}).Error)
}

func TestStatisticsSSGBucketsByDepartment(t *testing.T) {
	svc, deps := newVoteServiceForTest(t, stepClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))

	seedVoter(t, deps, "2024-0001", "VOTER-2026-001", "CCS", "Male", "")
	seedVoter(t, deps, "2024-0002", "VOTER-2026-002", "CCS", "Female", "")
	seedVoter(t, deps, "2024-0003", "VOTER-2026-003", "CBA", "", "")

	for _, id := range []string{"2024-0001", "2024-0002", "2024-0003"} {
		v := ballot(id, "SSG")
		if id == "2024-0003" {
			v.Department = "CBA"
		}
		require.NoError(t, svc.Cast(v))
	}

	stats, err := svc.Statistics("SSG")
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalVotes)
	require.Len(t, stats.ByDepartment, 2)

	// Terurut nama department: CBA dulu, lalu CCS.
	assert.Equal(t, "CBA", stats.ByDepartment[0].Department)
	assert.EqualValues(t, 1, stats.ByDepartment[0].Total)
	assert.EqualValues(t, 1, stats.ByDepartment[0].Genders.Other)

	assert.Equal(t, "CCS", stats.ByDepartment[1].Department)
	assert.EqualValues(t, 2, stats.ByDepartment[1].Total)
	assert.EqualValues(t, 1, stats.ByDepartment[1].Genders.Male)
	assert.EqualValues(t, 1, stats.ByDepartment[1].Genders.Female)

	// Rekap gender keseluruhan selalu ikut; gender kosong → Other.
	assert.EqualValues(t, 1, stats.Genders.Male)
	assert.EqualValues(t, 1, stats.Genders.Female)
	assert.EqualValues(t, 1, stats.Genders.Other)

	assert.Nil(t, stats.ByYearLevel)
}

func TestStatisticsNonSSGBucketsByYearLevel(t *testing.T) {
	svc, deps := newVoteServiceForTest(t, stepClock(time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)))

	// year_level eksplisit menang atas student_id.
	seedVoter(t, deps, "2023-0001", "VOTER-2024-001", "CCS", "Male", "2nd Year")
	// year_level kosong → dihitung dari 4 karakter pertama student_id:
	// 2024 - 2021 + 1 = 4 → "4th Year".
	seedVoter(t, deps, "2021-1234", "VOTER-2024-002", "CCS", "Female", "")
	// 2024 - 2018 + 1 = 7 → clamp ke "5th Year+".
	seedVoter(t, deps, "2018-0001", "VOTER-2024-003", "CCS", "Male", "")

	for _, id := range []string{"2023-0001", "2021-1234", "2018-0001"} {
		require.NoError(t, svc.Cast(ballot(id, "CCS")))
	}

	stats, err := svc.Statistics("CCS")
	require.NoError(t, err)

	require.NotNil(t, stats.ByYearLevel)
	assert.EqualValues(t, 0, stats.ByYearLevel["1st Year"])
	assert.EqualValues(t, 1, stats.ByYearLevel["2nd Year"])
	assert.EqualValues(t, 0, stats.ByYearLevel["3rd Year"])
	assert.EqualValues(t, 1, stats.ByYearLevel["4th Year"])
	assert.EqualValues(t, 1, stats.ByYearLevel["5th Year+"])

	assert.Nil(t, stats.ByDepartment)
}

func TestHistoryPartitionsVoters(t *testing.T) {
	svc, deps := newVoteServiceForTest(t, stepClock(time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)))

	seedVoter(t, deps, "2024-0001", "VOTER-2026-001", "CCS", "Male", "")
	seedVoter(t, deps, "2024-0002", "VOTER-2026-002", "CCS", "Female", "")
	seedVoter(t, deps, "2024-0003", "VOTER-2026-003", "CBA", "Male", "")

	require.NoError(t, svc.Cast(ballot("2024-0001", "CCS")))

	// Non-SSG: hanya pemilih department tersebut yang masuk hitungan.
	history, err := svc.History("CCS")
	require.NoError(t, err)

	assert.Equal(t, 1, history.VotedCount)
	assert.Equal(t, 1, history.NotVotedCount)
	require.Len(t, history.Voted, 1)
	assert.Equal(t, "2024-0001", history.Voted[0].StudentID)
	require.Len(t, history.NotVoted, 1)
	assert.Equal(t, "2024-0002", history.NotVoted[0].StudentID)

	// SSG: seluruh pemilih ikut.
	ssg, err := svc.History("SSG")
	require.NoError(t, err)
	assert.Equal(t, 0, ssg.VotedCount)
	assert.Equal(t, 3, ssg.NotVotedCount)
}
