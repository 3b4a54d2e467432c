// Package team provides persistence for named generation runs, the roster
// a table group keeps between sessions. Storage is optional: plain
// generation never touches it.
package team

import (
	"context"
	"time"

	"github.com/scoxgen/scox/internal/entities/insmv"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=teamrepomock github.com/scoxgen/scox/internal/repositories/team Repository

// StoredTeam is one saved generation run: both factions of a named roster
type StoredTeam struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Teams     []*insmv.Team `json:"teams"`
	CreatedAt time.Time     `json:"created_at"`
}

// SaveInput holds the roster to store
type SaveInput struct {
	Name  string
	Teams []*insmv.Team
}

// SaveOutput returns the stored record
type SaveOutput struct {
	Stored *StoredTeam
}

// GetInput identifies a roster by name
type GetInput struct {
	Name string
}

// GetOutput returns the requested roster
type GetOutput struct {
	Stored *StoredTeam
}

// ListInput has no parameters yet
type ListInput struct{}

// ListOutput returns all stored rosters, sorted by name
type ListOutput struct {
	Stored []*StoredTeam
}

// DeleteInput identifies a roster by name
type DeleteInput struct {
	Name string
}

// DeleteOutput confirms the deletion
type DeleteOutput struct{}

// Repository defines the interface for roster storage
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
