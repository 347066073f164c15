package server

import (
	"net/http"

	"github.com/abhisek/studyflow/internal/app"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.auth.Register(r.Context(), in.Email, in.Password); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "registered"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in credentials
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	acct, err := s.auth.Login(r.Context(), in.Email, in.Password)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"email":        acct.Email,
		"total_logins": acct.TotalLogins,
	})
}

func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var in app.BackgroundInput
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.app.SubmitBackground(r.Context(), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, view)
}

func (s *Server) handleStudent(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.Student(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Step int `json:"step"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.app.JumpTo(r.Context(), r.PathValue("roll"), in.Step)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.app.Logout(r.PathValue("roll"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.CurrentQuestion(r.Context(), r.PathValue("roll"), r.PathValue("kind"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Answer string `json:"answer"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.app.SubmitAnswer(r.Context(), r.PathValue("roll"), r.PathValue("kind"), in.Answer)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleVivaQuestion(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.VivaQuestion(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleVivaSubmit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Response string `json:"response"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.app.SubmitViva(r.Context(), r.PathValue("roll"), in.Response)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleConfigure(w http.ResponseWriter, r *http.Request) {
	var in app.ConfigureInput
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	view, err := s.app.Configure(r.Context(), r.PathValue("roll"), in)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleWeek(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.Week(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleStartQuiz(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.StartWeekQuiz(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleQuizAnswer(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Answer string `json:"answer"`
	}
	if err := decode(r, &in); err != nil {
		s.writeError(w, err)
		return
	}
	next, result, err := s.app.AnswerWeekQuiz(r.Context(), r.PathValue("roll"), in.Answer)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if result != nil {
		writeJSON(w, http.StatusOK, map[string]any{"done": true, "result": result})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"done": false, "next": next})
}

func (s *Server) handleAdvanceWeek(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.AdvanceWeek(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	view, err := s.app.Dashboard(r.Context(), r.PathValue("roll"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
