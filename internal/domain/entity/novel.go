package entity

import (
	"time"

	"github.com/google/uuid"
)

// Novel is a work listed on the platform.
type Novel struct {
	ID              uuid.UUID
	Slug            string
	Title           string
	Author          string
	Description     string
	CoverImageURL   string
	AuthorProfileID *uuid.UUID // revenue beneficiary, optional
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasBeneficiary reports whether unlock revenue for this novel can be credited.
func (n *Novel) HasBeneficiary() bool {
	return n != nil && n.AuthorProfileID != nil && *n.AuthorProfileID != uuid.Nil
}
