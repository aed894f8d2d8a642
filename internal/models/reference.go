package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ReferenceType is the kind of resource a transaction mirrors.
type ReferenceType string

const (
	ReferenceTypeNone       ReferenceType = "none"
	ReferenceTypeFunding    ReferenceType = "funding"
	ReferenceTypeAllocation ReferenceType = "allocation"
	ReferenceTypeExpense    ReferenceType = "expense"
)

// Reference is the resource a ledger transaction was posted for.
//
// The set of implementations is closed: FundingRef, AllocationRef and
// ExpenseRef. A nil Reference marks a manual journal entry.
type Reference interface {
	Kind() ReferenceType
	ResourceID() uuid.UUID
	reference()
}

// FundingRef references a donor funding receipt.
type FundingRef struct {
	ID uuid.UUID
}

func (r FundingRef) Kind() ReferenceType   { return ReferenceTypeFunding }
func (r FundingRef) ResourceID() uuid.UUID { return r.ID }
func (FundingRef) reference()              {}

// AllocationRef references the allocation of funding to a project.
type AllocationRef struct {
	ID uuid.UUID
}

func (r AllocationRef) Kind() ReferenceType   { return ReferenceTypeAllocation }
func (r AllocationRef) ResourceID() uuid.UUID { return r.ID }
func (AllocationRef) reference()              {}

// ExpenseRef references an expense against an allocation.
type ExpenseRef struct {
	ID uuid.UUID
}

func (r ExpenseRef) Kind() ReferenceType   { return ReferenceTypeExpense }
func (r ExpenseRef) ResourceID() uuid.UUID { return r.ID }
func (ExpenseRef) reference()              {}

// ReferenceObject is the API representation of a Reference.
type ReferenceObject struct {
	Type ReferenceType `json:"type" example:"expense"`                            // Kind of the referenced resource
	ID   uuid.UUID     `json:"id" example:"4e4a3e1d-7f0c-4e5b-9a51-1b2f8d7bb0c1"` // ID of the referenced resource
}

// NewReferenceObject returns the API representation of r, nil for manual entries.
func NewReferenceObject(r Reference) *ReferenceObject {
	if r == nil {
		return nil
	}

	return &ReferenceObject{Type: r.Kind(), ID: r.ResourceID()}
}

// MarshalJSON implements the json.Marshaler interface.
func (r FundingRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewReferenceObject(r))
}

// MarshalJSON implements the json.Marshaler interface.
func (r AllocationRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewReferenceObject(r))
}

// MarshalJSON implements the json.Marshaler interface.
func (r ExpenseRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewReferenceObject(r))
}
