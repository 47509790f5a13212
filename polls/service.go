// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/berkayk/pollhub/models"
	"github.com/berkayk/pollhub/store"
)

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrChoiceNotFound = errors.New("choice does not belong to this poll")
	ErrPollExpired    = errors.New("poll has already expired")
	ErrAlreadyVoted   = errors.New("you have already cast your vote in this poll")
	ErrUserNotFound   = errors.New("user not found")
	ErrInvalidPoll    = errors.New("invalid poll request")
)

// Service implements poll creation, vote casting, and result aggregation.
// Identities are always passed in explicitly; a nil viewer means the caller
// is anonymous.
type Service struct {
	polls *store.PollStore
	votes *store.VoteStore
	users *store.UserStore
	now   func() time.Time
}

func NewService(polls *store.PollStore, votes *store.VoteStore, users *store.UserStore) *Service {
	return &Service{polls: polls, votes: votes, users: users, now: time.Now}
}

// Create validates and stores a new poll owned by creator, returning its
// aggregated view (all counts zero).
func (s *Service) Create(ctx context.Context, req models.CreatePollRequest, creator *models.Identity) (*models.PollResponse, error) {
	if req.Question == "" {
		return nil, fmt.Errorf("%w: question is required", ErrInvalidPoll)
	}
	if len(req.Question) > models.MaxQuestionLen {
		return nil, fmt.Errorf("%w: question must be at most %d characters", ErrInvalidPoll, models.MaxQuestionLen)
	}
	if len(req.Choices) < models.MinChoices || len(req.Choices) > models.MaxChoices {
		return nil, fmt.Errorf("%w: polls need %d-%d choices", ErrInvalidPoll, models.MinChoices, models.MaxChoices)
	}
	for _, c := range req.Choices {
		if c.Text == "" {
			return nil, fmt.Errorf("%w: choice text is required", ErrInvalidPoll)
		}
	}
	length := time.Duration(req.PollLength.Days)*24*time.Hour + time.Duration(req.PollLength.Hours)*time.Hour
	if length <= 0 || length > models.MaxPollDays*24*time.Hour {
		return nil, fmt.Errorf("%w: poll length must be between 1 hour and %d days", ErrInvalidPoll, models.MaxPollDays)
	}

	now := s.now()
	poll := &models.Poll{
		ID:        uuid.NewString(),
		Question:  req.Question,
		CreatedBy: creator.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(length),
	}
	for i, c := range req.Choices {
		poll.Choices = append(poll.Choices, models.Choice{
			ID:       uuid.NewString(),
			PollID:   poll.ID,
			Text:     c.Text,
			Position: i,
		})
	}

	if err := s.polls.Create(ctx, poll); err != nil {
		return nil, err
	}
	return s.Aggregate(ctx, poll, creator)
}

// Get loads one poll and aggregates it for viewer.
func (s *Service) Get(ctx context.Context, pollID string, viewer *models.Identity) (*models.PollResponse, error) {
	poll, err := s.polls.FindByID(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Aggregate(ctx, poll, viewer)
}

// CastVote records voter's choice in a poll and returns the refreshed
// aggregated view. Failure order: poll missing, poll expired, choice not in
// poll, vote already cast. The (poll, user) uniqueness constraint at the
// storage layer - not a check-then-insert - decides concurrent duplicates.
func (s *Service) CastVote(ctx context.Context, pollID, choiceID string, voter *models.Identity) (*models.PollResponse, error) {
	poll, err := s.polls.FindByID(ctx, pollID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrPollNotFound
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if !now.Before(poll.ExpiresAt) {
		return nil, ErrPollExpired
	}

	valid := false
	for _, c := range poll.Choices {
		if c.ID == choiceID {
			valid = true
			break
		}
	}
	if !valid {
		return nil, ErrChoiceNotFound
	}

	vote := &models.Vote{
		ID:       uuid.NewString(),
		PollID:   poll.ID,
		ChoiceID: choiceID,
		UserID:   voter.ID,
		CastAt:   now,
	}
	if err := s.votes.Insert(ctx, vote); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrAlreadyVoted
		}
		// Infrastructure failure: propagate as-is, never as a domain outcome.
		return nil, err
	}

	return s.Aggregate(ctx, poll, voter)
}

// List returns one page of all polls, newest first, aggregated for viewer.
func (s *Service) List(ctx context.Context, page, size int, viewer *models.Identity) (*models.PagedResponse, error) {
	pollPage, total, err := s.polls.List(ctx, page, size)
	if err != nil {
		return nil, err
	}
	return s.pagedResponse(ctx, pollPage, page, size, total, viewer)
}

// ListCreatedBy returns one page of polls created by the named user.
func (s *Service) ListCreatedBy(ctx context.Context, username string, page, size int, viewer *models.Identity) (*models.PagedResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	pollPage, total, err := s.polls.ListCreatedBy(ctx, user.ID, page, size)
	if err != nil {
		return nil, err
	}
	return s.pagedResponse(ctx, pollPage, page, size, total, viewer)
}

// ListVotedBy returns one page of polls the named user has voted in.
func (s *Service) ListVotedBy(ctx context.Context, username string, page, size int, viewer *models.Identity) (*models.PagedResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	pollPage, total, err := s.polls.ListVotedBy(ctx, user.ID, page, size)
	if err != nil {
		return nil, err
	}
	return s.pagedResponse(ctx, pollPage, page, size, total, viewer)
}

func (s *Service) pagedResponse(ctx context.Context, pollPage []models.Poll, page, size int, total int64, viewer *models.Identity) (*models.PagedResponse, error) {
	content, err := s.AggregateMany(ctx, pollPage, viewer)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(size)
	if total%int64(size) != 0 {
		totalPages++
	}
	return &models.PagedResponse{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          int64(page)+1 >= totalPages,
	}, nil
}
