package mapper

import (
	"time"

	"github.com/Cdhernandezr/abchroy-crm/internal/domain"
)

// NoAccountName is shown on deal cards without a known account
const NoAccountName = "N/A"

const timestampLayout = "2006-01-02T15:04:05Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// ToPipelineDTO converts Pipeline to PipelineDTO
func ToPipelineDTO(pipeline *domain.Pipeline) domain.PipelineDTO {
	return domain.PipelineDTO{
		ID:   pipeline.ID,
		Name: pipeline.Name,
	}
}

// ToDealDTO converts Deal to DealDTO
func ToDealDTO(deal *domain.Deal) domain.DealDTO {
	dto := domain.DealDTO{
		ID:                deal.ID,
		Title:             deal.Title,
		StageID:           deal.StageID,
		PipelineID:        deal.PipelineID,
		Value:             deal.Value,
		Probability:       deal.Probability,
		ExpectedCloseDate: deal.ExpectedCloseDate,
		OwnerID:           deal.OwnerID,
		AccountID:         deal.AccountID,
		Status:            deal.Status,
		Pain:              deal.Pain,
		Source:            deal.Source,
		NextSteps:         deal.NextSteps,
		CreatedAt:         formatTime(deal.CreatedAt),
	}
	if deal.ClosedAt != nil {
		closedAt := formatTime(*deal.ClosedAt)
		dto.ClosedAt = &closedAt
	}
	return dto
}

// ToGoalDTO converts Goal to GoalDTO. Months is never nil.
func ToGoalDTO(goal *domain.Goal) domain.GoalDTO {
	months := make(map[string]float64, len(goal.Months))
	for k, v := range goal.Months {
		months[k] = v
	}
	return domain.GoalDTO{Year: goal.Year, Months: months}
}

// ToBoardDealDTO converts a deal into a board card, resolving its owner and
// account. Missing relations leave the owner blank and the account as N/A.
func ToBoardDealDTO(deal *domain.Deal, users map[string]*domain.UserProfile, accounts map[string]*domain.Account) domain.BoardDealDTO {
	card := domain.BoardDealDTO{
		ID:                deal.ID,
		Title:             deal.Title,
		Value:             deal.ValueOrZero(),
		Probability:       deal.Probability,
		ExpectedCloseDate: deal.ExpectedCloseDate,
		OwnerID:           deal.OwnerID,
		AccountName:       NoAccountName,
		Status:            deal.Status,
	}
	if deal.OwnerID != nil {
		if user := users[*deal.OwnerID]; user != nil {
			if user.Name != nil {
				card.OwnerName = *user.Name
			}
			card.OwnerAvatar = user.Avatar
		}
	}
	if deal.AccountID != nil {
		if account := accounts[*deal.AccountID]; account != nil && account.Name != "" {
			card.AccountName = account.Name
		}
	}
	return card
}

// ToBoardDTO lays out the deals of a pipeline in its stage columns.
// Stages keep their given order; deals whose stage is not on the board are
// left out.
func ToBoardDTO(pipeline *domain.Pipeline, stages []domain.Stage, deals []domain.Deal, users []domain.UserProfile, accounts []domain.Account) domain.BoardDTO {
	userIdx := make(map[string]*domain.UserProfile, len(users))
	for i := range users {
		if _, ok := userIdx[users[i].ID]; !ok {
			userIdx[users[i].ID] = &users[i]
		}
	}
	accountIdx := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		if _, ok := accountIdx[accounts[i].ID]; !ok {
			accountIdx[accounts[i].ID] = &accounts[i]
		}
	}

	board := domain.BoardDTO{
		PipelineID:   pipeline.ID,
		PipelineName: pipeline.Name,
		Stages:       make([]domain.BoardStageDTO, len(stages)),
	}
	column := make(map[string]int, len(stages))
	for i := range stages {
		board.Stages[i] = domain.BoardStageDTO{
			ID:     stages[i].ID,
			Name:   stages[i].Name,
			Order:  stages[i].Order,
			StdMap: stages[i].StdMap,
			Deals:  []domain.BoardDealDTO{},
		}
		if _, ok := column[stages[i].ID]; !ok {
			column[stages[i].ID] = i
		}
	}
	for i := range deals {
		col, ok := column[deals[i].StageID]
		if !ok {
			continue
		}
		board.Stages[col].Deals = append(board.Stages[col].Deals, ToBoardDealDTO(&deals[i], userIdx, accountIdx))
	}
	return board
}
