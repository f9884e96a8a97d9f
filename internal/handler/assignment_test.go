package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sekolahku/sekolahku-api/internal/model"
	"github.com/sekolahku/sekolahku-api/internal/repository"
)

type stubAssignmentStore struct {
	assignments []model.Assignment
	submissions []model.Submission // in creation order
	err         error
}

func (s *stubAssignmentStore) List(context.Context) ([]model.Assignment, error) {
	return s.assignments, s.err
}

func (s *stubAssignmentStore) GetByID(_ context.Context, id string) (model.Assignment, error) {
	if s.err != nil {
		return model.Assignment{}, s.err
	}
	for _, a := range s.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Assignment{}, repository.ErrAssignmentNotFound
}

func (s *stubAssignmentStore) CreateSubmission(_ context.Context, submission model.Submission) error {
	if s.err != nil {
		return s.err
	}
	s.submissions = append(s.submissions, submission)
	return nil
}

func TestSubmitAssignment(t *testing.T) {
	store := &stubAssignmentStore{assignments: []model.Assignment{{ID: "a-1", TeacherID: "u-7", Title: "Essay"}}}
	events := &stubPublisher{}
	h := NewAssignmentHandler(store, events)

	rec := serve(t, http.MethodPost, "/api/assignments/a-1/submit",
		`{"student_id":"s-1","file_url":"https://files.example.com/essay.pdf"}`, h.Submit, func(c echo.Context) {
			c.SetParamNames("id")
			c.SetParamValues("a-1")
		})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"submitted"}`, rec.Body.String())
	require.Len(t, store.submissions, 1)
	sub := store.submissions[0]
	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, "a-1", sub.AssignmentID)
	assert.Equal(t, "s-1", sub.StudentID)
	require.NotNil(t, sub.FileURL)
	assert.Equal(t, "https://files.example.com/essay.pdf", *sub.FileURL)

	require.Len(t, events.submissions, 1)
	assert.Equal(t, sub.ID, events.submissions[0].SubmissionID)
	assert.Equal(t, "a-1", events.submissions[0].AssignmentID)
}

func TestSubmitAssignmentUnknownID(t *testing.T) {
	h := NewAssignmentHandler(&stubAssignmentStore{}, &stubPublisher{})

	rec := serve(t, http.MethodPost, "/api/assignments/a-404/submit",
		`{"student_id":"s-1","file_url":"https://files.example.com/essay.pdf"}`, h.Submit, func(c echo.Context) {
			c.SetParamNames("id")
			c.SetParamValues("a-404")
		})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Assignment not found"}`, rec.Body.String())
}

func TestSubmitAssignmentMissingFields(t *testing.T) {
	h := NewAssignmentHandler(&stubAssignmentStore{}, &stubPublisher{})

	rec := serve(t, http.MethodPost, "/api/assignments/a-1/submit",
		`{"student_id":"s-1"}`, h.Submit, func(c echo.Context) {
			c.SetParamNames("id")
			c.SetParamValues("a-1")
		})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
