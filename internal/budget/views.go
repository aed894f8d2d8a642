package budget

import (
	"github.com/fundledger/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// State is the spending state of an allocation.
type State string

const (
	StateOpen           State = "Open"
	StatePartiallySpent State = "PartiallySpent"
	StateExhausted      State = "Exhausted"
)

// StateOf returns the state of an allocation of allocated of which spent
// has been spent.
func StateOf(allocated, spent decimal.Decimal) State {
	if !spent.IsPositive() {
		return StateOpen
	}

	if spent.LessThan(allocated) {
		return StatePartiallySpent
	}

	return StateExhausted
}

// AllocationBudget is the budget of one allocation, computed from the
// allocation and its expenses at the time of the call.
type AllocationBudget struct {
	AllocationID    uuid.UUID       `json:"allocationId" example:"3f2a6c1e-9d0b-4b7a-8e5c-2d1f0a9b8c7d"`
	ProjectID       uuid.UUID       `json:"projectId" example:"0a5fbd1a-0b25-4f0c-9a39-39b8a6a5f7e2"`
	ProjectName     string          `json:"projectName" example:"Clean Water Initiative"`
	SubProjectID    *uuid.UUID      `json:"subProjectId" example:"5b0d6d0f-2a7e-4d8c-9a0b-6c7e2d4f1a3b"`
	FundingID       uuid.UUID       `json:"fundingId" example:"7c6b1d9a-8b45-4c89-8f0a-0d8a2c1f5e3b"`
	FundingDonor    string          `json:"fundingDonor" example:"Global Water Fund"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"6000"`
	SpentAmount     decimal.Decimal `json:"spentAmount" example:"4000"`
	AvailableAmount decimal.Decimal `json:"availableAmount" example:"2000"`
	State           State           `json:"state" example:"PartiallySpent"`
}

// Get returns the budget of the allocation with the given ID.
func Get(db *gorm.DB, allocationID uuid.UUID) (AllocationBudget, error) {
	var allocation models.Allocation
	err := db.Scopes(models.NotReversed("allocations")).Preload("Project").Preload("Funding").First(&allocation, allocationID).Error
	if err != nil {
		return AllocationBudget{}, err
	}

	spent, err := allocation.Spent(db)
	if err != nil {
		return AllocationBudget{}, err
	}

	return newAllocationBudget(allocation, spent), nil
}

// ProjectAllocationsWithBudget returns the budgets of all allocations,
// optionally restricted to one project, ordered by allocation date.
//
// The figures are never cached.
func ProjectAllocationsWithBudget(db *gorm.DB, projectID *uuid.UUID) ([]AllocationBudget, error) {
	q := db.Scopes(models.NotReversed("allocations")).Preload("Project").Preload("Funding").Order("date(date) ASC, created_at ASC")
	if projectID != nil {
		q = q.Where(&models.Allocation{ProjectID: *projectID})
	}

	var allocations []models.Allocation
	err := q.Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	var expenses []models.Expense
	err = db.Scopes(models.NotReversed("expenses")).Select("allocation_id", "amount").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(allocations))
	for _, e := range expenses {
		spent[e.AllocationID] = spent[e.AllocationID].Add(e.Amount)
	}

	budgets := make([]AllocationBudget, 0, len(allocations))
	for _, a := range allocations {
		budgets = append(budgets, newAllocationBudget(a, spent[a.ID]))
	}

	return budgets, nil
}

func newAllocationBudget(a models.Allocation, spent decimal.Decimal) AllocationBudget {
	return AllocationBudget{
		AllocationID:    a.ID,
		ProjectID:       a.ProjectID,
		ProjectName:     a.Project.Name,
		SubProjectID:    a.SubProjectID,
		FundingID:       a.FundingID,
		FundingDonor:    a.Funding.DonorName,
		AllocatedAmount: a.Amount,
		SpentAmount:     decimal.Zero.Add(spent),
		AvailableAmount: a.Amount.Sub(spent),
		State:           StateOf(a.Amount, spent),
	}
}

// FundingSummary is a funding with its allocated and unallocated amounts.
type FundingSummary struct {
	models.Funding
	AllocatedAmount   decimal.Decimal `json:"allocatedAmount" example:"6000"`
	UnallocatedAmount decimal.Decimal `json:"unallocatedAmount" example:"4000"`
}

// Summary returns the funding with the given ID and how much of it is
// allocated.
func Summary(db *gorm.DB, fundingID uuid.UUID) (FundingSummary, error) {
	var funding models.Funding
	err := db.First(&funding, fundingID).Error
	if err != nil {
		return FundingSummary{}, err
	}

	return summarize(db, funding)
}

func summarize(db *gorm.DB, funding models.Funding) (FundingSummary, error) {
	allocated, err := funding.Allocated(db)
	if err != nil {
		return FundingSummary{}, err
	}

	unallocated, err := funding.Unallocated(db)
	if err != nil {
		return FundingSummary{}, err
	}

	return FundingSummary{
		Funding:           funding,
		AllocatedAmount:   allocated,
		UnallocatedAmount: unallocated,
	}, nil
}

// Summaries returns all fundings with their allocated amounts, most recent
// receipt first.
func Summaries(db *gorm.DB) ([]FundingSummary, error) {
	var fundings []models.Funding
	err := db.Order("date(date_received) DESC, created_at DESC").Find(&fundings).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]FundingSummary, 0, len(fundings))
	for _, f := range fundings {
		s, err := summarize(db, f)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
