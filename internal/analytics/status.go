package analytics

import "github.com/Cdhernandezr/abchroy-crm/internal/domain"

// Status is the lifecycle bucket of a deal derived from its stage
type Status string

const (
	StatusWon  Status = "won"
	StatusLost Status = "lost"
	StatusOpen Status = "open"
)

// DealStatus classifies a deal by the standard mapping of its stage.
// A deal whose stage cannot be found is open.
func DealStatus(deal *domain.Deal, stages []domain.Stage) Status {
	for i := range stages {
		if stages[i].ID == deal.StageID {
			return stageStatus(&stages[i])
		}
	}
	return StatusOpen
}

func stageStatus(stage *domain.Stage) Status {
	switch {
	case stage == nil:
		return StatusOpen
	case stage.IsWon():
		return StatusWon
	case stage.IsLost():
		return StatusLost
	default:
		return StatusOpen
	}
}

// stageIndex resolves stage IDs in constant time. The first stage carrying an
// ID wins, so lookups agree with a linear scan.
type stageIndex map[string]*domain.Stage

func indexStages(stages []domain.Stage) stageIndex {
	idx := make(stageIndex, len(stages))
	for i := range stages {
		if _, ok := idx[stages[i].ID]; !ok {
			idx[stages[i].ID] = &stages[i]
		}
	}
	return idx
}

// status is DealStatus against a prebuilt index
func (idx stageIndex) status(deal *domain.Deal) Status {
	return stageStatus(idx[deal.StageID])
}

// filter returns the deals whose status equals want, preserving input order
func (idx stageIndex) filter(deals []domain.Deal, want Status) []*domain.Deal {
	out := make([]*domain.Deal, 0, len(deals))
	for i := range deals {
		if idx.status(&deals[i]) == want {
			out = append(out, &deals[i])
		}
	}
	return out
}

func indexAccounts(accounts []domain.Account) map[string]*domain.Account {
	idx := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		if _, ok := idx[accounts[i].ID]; !ok {
			idx[accounts[i].ID] = &accounts[i]
		}
	}
	return idx
}

func indexUsers(users []domain.UserProfile) map[string]*domain.UserProfile {
	idx := make(map[string]*domain.UserProfile, len(users))
	for i := range users {
		if _, ok := idx[users[i].ID]; !ok {
			idx[users[i].ID] = &users[i]
		}
	}
	return idx
}
