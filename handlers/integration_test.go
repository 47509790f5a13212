// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/testutil"
)

// TestFullVotingWorkflow tests the complete end-to-end workflow:
// 1. Sign up two users
// 2. Sign in and obtain tokens
// 3. Creator opens a poll
// 4. Voter casts a vote
// 5. Results reflect the vote
// 6. Voter's profile and poll lists update
func TestFullVotingWorkflow(t *testing.T) {
	env := newTestEnv(t)

	// Step 1: Sign up creator and voter
	for _, u := range []models.SignUpRequest{
		{Name: "Poll Creator", Username: "creator", Email: "creator@example.com", Password: "secret123"},
		{Name: "Poll Voter", Username: "voter", Email: "voter@example.com", Password: "secret123"},
	} {
		req := testutil.MakeRequest("POST", "/api/auth/signup", u, nil)
		w := httptest.NewRecorder()
		env.authHandler.Signup(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("Step 1 - Signup %s failed: %d - %s", u.Username, w.Code, w.Body.String())
		}
	}

	// Step 2: Sign in both users
	signin := func(t *testing.T, usernameOrEmail string) string {
		t.Helper()
		req := testutil.MakeRequest("POST", "/api/auth/signin", models.LoginRequest{
			UsernameOrEmail: usernameOrEmail,
			Password:        "secret123",
		}, nil)
		w := httptest.NewRecorder()
		env.authHandler.Signin(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("Step 2 - Signin %s failed: %d - %s", usernameOrEmail, w.Code, w.Body.String())
		}
		var resp models.JwtAuthenticationResponse
		testutil.AssertJSON(t, w, &resp)
		return resp.TokenType + " " + resp.AccessToken
	}
	creatorAuth := signin(t, "creator")
	voterAuth := signin(t, "voter@example.com")

	// Step 3: Creator opens a poll
	createReq := models.CreatePollRequest{
		Question:   "Where should we have lunch?",
		Choices:    []models.ChoiceRequest{{Text: "Thai"}, {Text: "Pizza"}, {Text: "Sushi"}},
		PollLength: models.PollLength{Days: 1},
	}
	req := testutil.MakeRequest("POST", "/api/polls", createReq, map[string]string{"Authorization": creatorAuth})
	w := httptest.NewRecorder()
	env.authed(env.pollHandler.CreatePoll)(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 3 - Create poll failed: %d - %s", w.Code, w.Body.String())
	}
	var created models.PollResponse
	testutil.AssertJSON(t, w, &created)
	t.Logf("Step 3 - Created poll: %s", created.ID)

	// Step 4: Voter casts a vote for Pizza
	pizza := created.Choices[1].ID
	req = testutil.MakeRequest("POST", "/api/polls/"+created.ID+"/votes",
		models.VoteRequest{ChoiceID: pizza},
		map[string]string{"Authorization": voterAuth})
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	env.authed(env.pollHandler.CastVote)(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("Step 4 - Cast vote failed: %d - %s", w.Code, w.Body.String())
	}
	var afterVote models.PollResponse
	testutil.AssertJSON(t, w, &afterVote)
	if afterVote.TotalVotes != 1 || afterVote.Choices[1].VoteCount != 1 {
		t.Fatalf("Step 4 - Unexpected aggregate: %+v", afterVote)
	}
	if afterVote.SelectedChoice == nil || *afterVote.SelectedChoice != pizza {
		t.Fatalf("Step 4 - SelectedChoice = %v", afterVote.SelectedChoice)
	}

	// Step 5: The listing shows the same result to the voter
	req = testutil.MakeRequest("GET", "/api/polls", nil, map[string]string{"Authorization": voterAuth})
	w = httptest.NewRecorder()
	env.authed(env.pollHandler.ListPolls)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var listing models.PagedResponse
	testutil.AssertJSON(t, w, &listing)
	if listing.TotalElements != 1 || listing.Content[0].TotalVotes != 1 {
		t.Fatalf("Step 5 - Unexpected listing: %+v", listing)
	}

	// Step 6: The voter's profile and voted-polls list reflect the cast
	req = testutil.MakeRequest("GET", "/api/users/voter", nil, nil)
	req.SetPathValue("username", "voter")
	w = httptest.NewRecorder()
	env.userHandler.Profile(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var profile models.UserProfile
	testutil.AssertJSON(t, w, &profile)
	if profile.VoteCount != 1 {
		t.Errorf("Step 6 - Expected 1 vote in profile, got %d", profile.VoteCount)
	}

	req = testutil.MakeRequest("GET", "/api/users/voter/votes", nil, nil)
	req.SetPathValue("username", "voter")
	w = httptest.NewRecorder()
	env.authed(env.userHandler.PollsVotedBy)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	var voted models.PagedResponse
	testutil.AssertJSON(t, w, &voted)
	if voted.TotalElements != 1 || voted.Content[0].ID != created.ID {
		t.Errorf("Step 6 - Unexpected voted list: %+v", voted)
	}
}
