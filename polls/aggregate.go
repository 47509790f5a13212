// Copyright (c) 2025 Berkay Karadag.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package polls

import (
	"context"

	"github.com/dustin/go-humanize"

	"github.com/berkayk/pollhub/models"
)

// Aggregate computes the full result view of one poll: per-choice counts,
// total votes, derived expiry, and the viewer's own selection if any.
func (s *Service) Aggregate(ctx context.Context, poll *models.Poll, viewer *models.Identity) (*models.PollResponse, error) {
	results, err := s.AggregateMany(ctx, []models.Poll{*poll}, viewer)
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// AggregateMany aggregates a batch of polls with a bounded number of bulk
// queries: one grouped vote count over all poll ids, one viewer-selection
// lookup over all poll ids, and one creator summary fetch. It never issues
// per-poll queries.
func (s *Service) AggregateMany(ctx context.Context, pollPage []models.Poll, viewer *models.Identity) ([]models.PollResponse, error) {
	responses := []models.PollResponse{}
	if len(pollPage) == 0 {
		return responses, nil
	}

	pollIDs := make([]string, 0, len(pollPage))
	creatorIDs := make([]string, 0, len(pollPage))
	seenCreators := make(map[string]bool)
	for _, p := range pollPage {
		pollIDs = append(pollIDs, p.ID)
		if !seenCreators[p.CreatedBy] {
			seenCreators[p.CreatedBy] = true
			creatorIDs = append(creatorIDs, p.CreatedBy)
		}
	}

	counts, err := s.votes.CountByChoiceForPolls(ctx, pollIDs)
	if err != nil {
		return nil, err
	}

	selections := map[string]string{}
	if viewer != nil {
		selections, err = s.votes.SelectionsByVoterForPolls(ctx, viewer.ID, pollIDs)
		if err != nil {
			return nil, err
		}
	}

	creators, err := s.users.SummariesByIDs(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, p := range pollPage {
		resp := models.PollResponse{
			ID:                 p.ID,
			Question:           p.Question,
			CreatedBy:          creators[p.CreatedBy],
			CreationDateTime:   p.CreatedAt,
			ExpirationDateTime: p.ExpiresAt,
			ExpiresIn:          humanize.Time(p.ExpiresAt),
			IsExpired:          !now.Before(p.ExpiresAt),
		}

		pollCounts := counts[p.ID]
		for _, c := range p.Choices {
			// Absent count means zero votes, not an error.
			resp.Choices = append(resp.Choices, models.ChoiceResponse{
				ID:        c.ID,
				Text:      c.Text,
				VoteCount: pollCounts[c.ID],
			})
			resp.TotalVotes += pollCounts[c.ID]
		}

		if choiceID, ok := selections[p.ID]; ok {
			resp.SelectedChoice = &choiceID
		}

		responses = append(responses, resp)
	}
	return responses, nil
}
