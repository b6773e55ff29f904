package service

import (
	"sort"

	"github.com/noah-isme/walkin-drive-api/internal/models"
)

// Transition is the candidate state change a feedback decision produces.
type Transition struct {
	Status models.CandidateStatus
	Round  string
}

// ApplyDecision computes the candidate's next status and round from a
// panel verdict. "next" moves the candidate to the requested round (or
// keeps the current one when none is given) and back into the queue,
// "reject" terminates the pipeline, and "hold" requeues the candidate for
// the same round.
func ApplyDecision(decision models.Decision, currentRound, nextRound string) Transition {
	switch decision {
	case models.DecisionReject:
		return Transition{Status: models.StatusRejected, Round: currentRound}
	case models.DecisionNext:
		round := nextRound
		if round == "" {
			round = currentRound
		}
		return Transition{Status: models.StatusInQueue, Round: round}
	default:
		return Transition{Status: models.StatusInQueue, Round: currentRound}
	}
}

// queueEligible reports whether the candidate is waiting in the given
// round's queue. Candidates already with a panel, completed, or rejected
// are not in any queue.
func queueEligible(c models.Candidate, round string) bool {
	if c.CurrentRound != round {
		return false
	}
	return c.Status == models.StatusRegistered || c.Status == models.StatusInQueue
}

// rankQueue filters candidates down to the round's waiting set and orders
// it first-come-first-served: ascending registration time, with the
// original listing order (ascending id) breaking ties.
func rankQueue(candidates []models.Candidate, round string) []models.Candidate {
	waiting := make([]models.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if queueEligible(c, round) {
			waiting = append(waiting, c)
		}
	}
	sort.SliceStable(waiting, func(i, j int) bool {
		return waiting[i].RegisteredAt.Before(waiting[j].RegisteredAt)
	})
	return waiting
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func statusPtr(v models.CandidateStatus) *models.CandidateStatus { return &v }
