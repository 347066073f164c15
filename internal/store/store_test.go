package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestStudent(t *testing.T, s *Store, domain string) *Student {
	t.Helper()
	st, err := s.Students().Create(context.Background(), NewStudent{
		Name:           "Asha",
		Domain:         domain,
		Branch:         "CSE",
		KnowledgeScale: 2,
	})
	if err != nil {
		t.Fatalf("create student: %v", err)
	}
	return st
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestCreateAssignsSequentialRolls(t *testing.T) {
	s := openTestStore(t)

	first := createTestStudent(t, s, "Python")
	second := createTestStudent(t, s, "Python")

	if first.RollNo == second.RollNo {
		t.Fatalf("expected distinct roll numbers, both got %s", first.RollNo)
	}

	firstSeq := first.RollNo[4:7]
	secondSeq := second.RollNo[4:7]
	if firstSeq != "001" || secondSeq != "002" {
		t.Errorf("sequences = %s, %s, want 001, 002", firstSeq, secondSeq)
	}
}

func TestCreateSequencesPerBranch(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	mk := func(branch string) *Student {
		t.Helper()
		st, err := s.Students().Create(ctx, NewStudent{
			Name:           "Asha",
			Domain:         "Python",
			Branch:         branch,
			KnowledgeScale: 2,
		})
		if err != nil {
			t.Fatalf("create %s student: %v", branch, err)
		}
		return st
	}

	ecse := mk("ECSE")
	if seq := ecse.RollNo[4:7]; seq != "001" {
		t.Errorf("ECSE sequence = %s, want 001", seq)
	}

	// Every ECSE roll also ends in CSE; the CSE branch still starts
	// its own sequence at 001.
	cse := mk("CSE")
	if seq := cse.RollNo[4:7]; seq != "001" {
		t.Errorf("CSE sequence = %s, want 001", seq)
	}
	if seq := mk("CSE").RollNo[4:7]; seq != "002" {
		t.Errorf("second CSE sequence = %s, want 002", seq)
	}
}

func TestCreateDefaultsAndInitialPerformance(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	st := createTestStudent(t, s, "Data Science")

	if st.HoursPerDay != 3 || st.Weeks != 4 {
		t.Errorf("defaults = %d h/day, %d weeks, want 3 and 4", st.HoursPerDay, st.Weeks)
	}
	if st.CurrentWeekNo != 1 || st.CurrentStep != 1 {
		t.Errorf("initial week/step = %d/%d, want 1/1", st.CurrentWeekNo, st.CurrentStep)
	}

	p, err := s.Performance().Get(ctx, st.RollNo)
	if err != nil {
		t.Fatalf("get performance: %v", err)
	}
	if p == nil {
		t.Fatal("expected initial performance row")
	}
	if p.OutcomeOfCourse != "Course started" {
		t.Errorf("outcome = %q, want %q", p.OutcomeOfCourse, "Course started")
	}
}

func TestGetMissingStudentReturnsNil(t *testing.T) {
	s := openTestStore(t)

	st, err := s.Students().Get(context.Background(), "25PY999CSE")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if st != nil {
		t.Fatal("expected nil for unknown roll number")
	}
}

func TestScoreUpdates(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	st := createTestStudent(t, s, "Python")

	if err := s.Students().SetCognitive(ctx, st.RollNo, 60, 104); err != nil {
		t.Fatalf("set cognitive: %v", err)
	}
	if err := s.Students().SetDomain(ctx, st.RollNo, 80, 112); err != nil {
		t.Fatalf("set domain: %v", err)
	}
	if err := s.Students().SetViva(ctx, st.RollNo, 90, "a long answer"); err != nil {
		t.Fatalf("set viva: %v", err)
	}

	got, err := s.Students().Get(ctx, st.RollNo)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CognitiveScore != 60 || got.CognitiveIQ != 104 {
		t.Errorf("cognitive = %d/%d, want 60/104", got.CognitiveScore, got.CognitiveIQ)
	}
	if got.DomainScore != 80 || got.DomainIQ != 112 {
		t.Errorf("domain = %d/%d, want 80/112", got.DomainScore, got.DomainIQ)
	}
	if got.VivaScore != 90 || got.VivaResponse != "a long answer" {
		t.Errorf("viva = %d/%q", got.VivaScore, got.VivaResponse)
	}
}

func TestQuizUpsertLastWriteWins(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	st := createTestStudent(t, s, "Python")

	q := &WeekQuiz{RollNo: st.RollNo, WeekNo: 2, Score: 33, IQ: 90, Analysis: "Needs more practice"}
	if err := s.Quizzes().Upsert(ctx, q); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	q.Score = 100
	q.IQ = 120
	q.Analysis = "Excellent performance"
	if err := s.Quizzes().Upsert(ctx, q); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	all, err := s.Quizzes().ByStudent(ctx, st.RollNo)
	if err != nil {
		t.Fatalf("by student: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected exactly one row for (roll, week=2), got %d", len(all))
	}
	if all[0].Score != 100 || all[0].Analysis != "Excellent performance" {
		t.Errorf("second write did not win: %+v", all[0])
	}
}

func TestContentCachedOncePerWeek(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	st := createTestStudent(t, s, "Machine Learning")

	got, err := s.Contents().Get(ctx, st.RollNo, 1)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if got != nil {
		t.Fatal("expected nil before generation")
	}

	if err := s.Contents().Save(ctx, st.RollNo, 1, "week 1 material"); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err = s.Contents().Get(ctx, st.RollNo, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Body != "week 1 material" {
		t.Fatalf("unexpected content: %+v", got)
	}
}

func TestDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	st := createTestStudent(t, s, "Python")

	if err := s.Quizzes().Upsert(ctx, &WeekQuiz{RollNo: st.RollNo, WeekNo: 1, Score: 66}); err != nil {
		t.Fatalf("upsert quiz: %v", err)
	}
	if err := s.Contents().Save(ctx, st.RollNo, 1, "body"); err != nil {
		t.Fatalf("save content: %v", err)
	}

	if err := s.Students().Delete(ctx, st.RollNo); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := s.Students().Get(ctx, st.RollNo); got != nil {
		t.Error("student survived delete")
	}
	if rows, _ := s.Quizzes().ByStudent(ctx, st.RollNo); len(rows) != 0 {
		t.Error("quizzes survived delete")
	}
	if c, _ := s.Contents().Get(ctx, st.RollNo, 1); c != nil {
		t.Error("content survived delete")
	}
	if p, _ := s.Performance().Get(ctx, st.RollNo); p != nil {
		t.Error("performance survived delete")
	}
}

func TestAccountLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Accounts().Create(ctx, "a@b.co", "hash"); err != nil {
		t.Fatalf("create: %v", err)
	}

	a, hash, err := s.Accounts().ByEmail(ctx, "a@b.co")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if a == nil || hash != "hash" {
		t.Fatalf("unexpected account: %+v hash=%q", a, hash)
	}
	if a.TotalLogins != 0 || a.LastLogin != nil {
		t.Errorf("fresh account has logins: %+v", a)
	}

	if err := s.Accounts().RecordLogin(ctx, "a@b.co"); err != nil {
		t.Fatalf("record login: %v", err)
	}
	a, _, _ = s.Accounts().ByEmail(ctx, "a@b.co")
	if a.TotalLogins != 1 || a.LastLogin == nil {
		t.Errorf("login not recorded: %+v", a)
	}
}

func TestLLMUsageTotals(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []LLMEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "content-gen", InputTokens: 200, OutputTokens: 400, Success: true},
	}
	for _, e := range events {
		if err := s.Events().AppendLLMEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := s.Events().Usage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 1 {
		t.Fatalf("expected one model, got %d", len(usage))
	}
	u := usage[0]
	if u.Calls != 2 || u.InputTokens != 300 || u.OutputTokens != 450 {
		t.Errorf("totals = %+v", u)
	}
}
