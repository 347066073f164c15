package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhisek/studyflow/internal/app"
	"github.com/abhisek/studyflow/internal/auth"
	"github.com/abhisek/studyflow/internal/questiongen"
	"github.com/abhisek/studyflow/internal/store"
)

type fixedGen struct{}

func (fixedGen) Question(ctx context.Context, in questiongen.QuestionInput) (*questiongen.Question, error) {
	return &questiongen.Question{
		Text:          "pick right",
		Options:       []string{"right", "w1", "w2", "w3"},
		CorrectOption: "right",
	}, nil
}

func (fixedGen) OpenQuestion(ctx context.Context, domain, difficulty string) (*questiongen.OpenQuestion, error) {
	return &questiongen.OpenQuestion{Text: "explain " + domain, ExpectedPoints: []string{"p1"}}, nil
}

func (fixedGen) CourseContent(ctx context.Context, in questiongen.ContentInput) (string, error) {
	return fmt.Sprintf("week %d material", in.WeekNo), nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dsn := fmt.Sprintf("file:srv_%s?mode=memory&cache=shared&_pragma=busy_timeout(5000)", t.Name())
	st, err := store.Open(dsn)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(app.New(st, fixedGen{}), auth.NewService(st.Accounts()), logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil && err != io.EOF {
		t.Fatalf("decode response: %v", err)
	}
	return resp, decoded
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, ts.URL+"/healthz", nil)
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Fatalf("status %d body %v", resp.StatusCode, body)
	}
}

func TestRegisterAndLoginEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, ts.URL+"/api/register", credentials{
		Email: "asha@example.com", Password: "secret1",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register status %d", resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/login", credentials{
		Email: "asha@example.com", Password: "secret1",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status %d", resp.StatusCode)
	}
	if body["total_logins"].(float64) != 1 {
		t.Errorf("total_logins = %v", body["total_logins"])
	}

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/login", credentials{
		Email: "asha@example.com", Password: "wrong",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad login status %d, want 400", resp.StatusCode)
	}
}

func TestIntakeAndAssessmentEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, ts.URL+"/api/students", app.BackgroundInput{
		Name: "Asha", Domain: "Python", KnowledgeLevel: "Beginner",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("intake status %d body %v", resp.StatusCode, body)
	}
	roll := body["roll_no"].(string)
	base := ts.URL + "/api/students/" + roll

	resp, body = doJSON(t, http.MethodGet, base+"/assessments/cognitive/question", nil)
	if resp.StatusCode != http.StatusOK || body["text"] != "pick right" {
		t.Fatalf("question status %d body %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, base+"/assessments/cognitive/answer",
		map[string]string{"answer": "right"})
	if resp.StatusCode != http.StatusOK || body["correct"] != true {
		t.Fatalf("answer status %d body %v", resp.StatusCode, body)
	}

	// Unknown assessment kind is a validation fault.
	resp, _ = doJSON(t, http.MethodGet, base+"/assessments/telepathy/question", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("bad kind status %d, want 400", resp.StatusCode)
	}
}

func TestFaultStatusMapping(t *testing.T) {
	ts := newTestServer(t)

	// Unknown roll: validation fault.
	resp, _ := doJSON(t, http.MethodGet, ts.URL+"/api/students/25PY999CSE", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("unknown roll status %d, want 400", resp.StatusCode)
	}

	// Intake then a forward jump past the gates: state fault.
	_, body := doJSON(t, http.MethodPost, ts.URL+"/api/students", app.BackgroundInput{
		Name: "Asha", Domain: "Python", KnowledgeLevel: "Beginner",
	})
	roll := body["roll_no"].(string)

	resp, _ = doJSON(t, http.MethodPost, ts.URL+"/api/students/"+roll+"/step",
		map[string]int{"step": 6})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("gate jump status %d, want 409", resp.StatusCode)
	}

	// Malformed body: validation fault.
	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/students", bytes.NewBufferString("{"))
	badResp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	badResp.Body.Close()
	if badResp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body status %d, want 400", badResp.StatusCode)
	}
}
