package controller

import (
	"context"

	"udm/internal/apperr"
)

// PollDrinkStreamRequest is reserved; poll-drink-stream has no
// implemented body in this revision (spec.md §4.6, §9 Open Question (b)).
type PollDrinkStreamRequest struct{}

// PollDrinkStreamResponse is never populated: PollDrinkStream always
// fails.
type PollDrinkStreamResponse struct{}

// PollDrinkStream returns unimplemented. The spec reserves this RPC for a
// future streaming revision; inventing behaviour for it now would exceed
// what §9 authorises.
func (s *Service) PollDrinkStream(ctx context.Context, req PollDrinkStreamRequest) (PollDrinkStreamResponse, error) {
	return PollDrinkStreamResponse{}, apperr.New(apperr.ApiFailure, "poll-drink-stream is not implemented")
}
