// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/testutil"
)

func TestCreatePollHandler(t *testing.T) {
	env := newTestEnv(t)
	alice := testutil.CreateTestUser(t, env.conn, "Alice", "alice", "alice@example.com")

	createReq := models.CreatePollRequest{
		Question:   "Tabs or spaces?",
		Choices:    []models.ChoiceRequest{{Text: "Tabs"}, {Text: "Spaces"}},
		PollLength: models.PollLength{Days: 1},
	}

	t.Run("authenticated creator", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/polls", createReq, map[string]string{
			"Authorization": env.bearer(t, alice),
		})
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.CreatePoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusCreated)

		var resp models.PollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.ID == "" || len(resp.Choices) != 2 || resp.TotalVotes != 0 {
			t.Errorf("Unexpected poll response: %+v", resp)
		}
		if resp.CreatedBy.Username != "alice" {
			t.Errorf("CreatedBy = %+v", resp.CreatedBy)
		}
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/polls", createReq, nil)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.CreatePoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("invalid token is rejected like no token", func(t *testing.T) {
		req := testutil.MakeRequest("POST", "/api/polls", createReq, map[string]string{
			"Authorization": "Bearer not.a.real.token",
		})
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.CreatePoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("invalid poll body", func(t *testing.T) {
		bad := createReq
		bad.Choices = bad.Choices[:1]
		req := testutil.MakeRequest("POST", "/api/polls", bad, map[string]string{
			"Authorization": env.bearer(t, alice),
		})
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.CreatePoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestListPollsHandler(t *testing.T) {
	env := newTestEnv(t)
	alice := testutil.CreateTestUser(t, env.conn, "Alice", "alice", "alice@example.com")
	for i := 0; i < 3; i++ {
		testutil.CreateTestPoll(t, env.conn, alice.ID, time.Now().Add(time.Hour), "Yes", "No")
	}

	t.Run("default paging", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls", nil, nil)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.ListPolls)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PagedResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.TotalElements != 3 || len(resp.Content) != 3 || !resp.Last {
			t.Errorf("Unexpected page: %+v", resp)
		}
		if resp.Size != models.DefaultPageSize {
			t.Errorf("Size = %d, want default %d", resp.Size, models.DefaultPageSize)
		}
	})

	t.Run("explicit paging", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls?page=1&size=2", nil, nil)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.ListPolls)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PagedResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.Page != 1 || len(resp.Content) != 1 || !resp.Last {
			t.Errorf("Unexpected page: %+v", resp)
		}
	})

	t.Run("size above the cap", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls?size=500", nil, nil)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.ListPolls)(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("negative page", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls?page=-1", nil, nil)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.ListPolls)(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestGetPollHandler(t *testing.T) {
	env := newTestEnv(t)
	alice := testutil.CreateTestUser(t, env.conn, "Alice", "alice", "alice@example.com")
	poll := testutil.CreateTestPoll(t, env.conn, alice.ID, time.Now().Add(time.Hour), "A", "B")
	testutil.CastTestVote(t, env.conn, poll.ID, poll.Choices[0].ID, alice.ID)

	t.Run("anonymous viewer sees counts but no selection", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls/"+poll.ID, nil, nil)
		req.SetPathValue("id", poll.ID)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.GetPoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.TotalVotes != 1 || resp.Choices[0].VoteCount != 1 {
			t.Errorf("Unexpected counts: %+v", resp)
		}
		if resp.SelectedChoice != nil {
			t.Error("Anonymous viewer got a selected choice")
		}
	})

	t.Run("authenticated viewer sees own selection", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls/"+poll.ID, nil, map[string]string{
			"Authorization": env.bearer(t, alice),
		})
		req.SetPathValue("id", poll.ID)
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.GetPoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.SelectedChoice == nil || *resp.SelectedChoice != poll.Choices[0].ID {
			t.Errorf("SelectedChoice = %v", resp.SelectedChoice)
		}
	})

	t.Run("unknown poll", func(t *testing.T) {
		req := testutil.MakeRequest("GET", "/api/polls/missing", nil, nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		env.authed(env.pollHandler.GetPoll)(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestCastVoteHandler(t *testing.T) {
	env := newTestEnv(t)
	alice := testutil.CreateTestUser(t, env.conn, "Alice", "alice", "alice@example.com")
	bob := testutil.CreateTestUser(t, env.conn, "Bob", "bob", "bob@example.com")
	poll := testutil.CreateTestPoll(t, env.conn, alice.ID, time.Now().Add(time.Hour), "A", "B")
	expired := testutil.CreateTestPoll(t, env.conn, alice.ID, time.Now().Add(-time.Minute), "A", "B")

	cast := func(t *testing.T, pollID string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
		t.Helper()
		req := testutil.MakeRequest("POST", "/api/polls/"+pollID+"/votes", body, headers)
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		env.authed(env.pollHandler.CastVote)(w, req)
		return w
	}

	bobAuth := map[string]string{"Authorization": env.bearer(t, bob)}

	t.Run("anonymous voter", func(t *testing.T) {
		w := cast(t, poll.ID, models.VoteRequest{ChoiceID: poll.Choices[0].ID}, nil)
		testutil.AssertStatus(t, w, http.StatusUnauthorized)
	})

	t.Run("missing choice_id", func(t *testing.T) {
		w := cast(t, poll.ID, models.VoteRequest{}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("unknown poll", func(t *testing.T) {
		w := cast(t, "missing", models.VoteRequest{ChoiceID: poll.Choices[0].ID}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("expired poll", func(t *testing.T) {
		w := cast(t, expired.ID, models.VoteRequest{ChoiceID: expired.Choices[0].ID}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusGone)
	})

	t.Run("choice from another poll", func(t *testing.T) {
		w := cast(t, poll.ID, models.VoteRequest{ChoiceID: expired.Choices[0].ID}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("successful cast returns refreshed aggregate", func(t *testing.T) {
		w := cast(t, poll.ID, models.VoteRequest{ChoiceID: poll.Choices[0].ID}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.PollResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.TotalVotes != 1 || resp.Choices[0].VoteCount != 1 {
			t.Errorf("Unexpected counts: %+v", resp)
		}
		if resp.SelectedChoice == nil || *resp.SelectedChoice != poll.Choices[0].ID {
			t.Errorf("SelectedChoice = %v", resp.SelectedChoice)
		}
	})

	t.Run("second cast conflicts", func(t *testing.T) {
		w := cast(t, poll.ID, models.VoteRequest{ChoiceID: poll.Choices[1].ID}, bobAuth)
		testutil.AssertStatus(t, w, http.StatusConflict)
	})
}
