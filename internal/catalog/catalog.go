// Package catalog exposes the mock educational content catalogue and learner
// personas. In production this package would be replaced by a database
// adapter; the fixtures are embedded JSON validated against their schemas at
// load time.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/edu-recommender/internal/schemas"
	"github.com/jonathan/edu-recommender/internal/types"
)

//go:embed catalog.json
var catalogJSON string

//go:embed users.json
var usersJSON string

//go:embed catalog.schema.json
var catalogSchema string

//go:embed users.schema.json
var usersSchema string

// Store is a read-only view over the loaded fixtures.
type Store struct {
	items []types.ContentItem
	users []types.UserProfile
	byID  map[string]types.UserProfile
}

// Load parses and schema-validates the embedded fixtures.
func Load() (*Store, error) {
	if err := schemas.ValidateJSONString(catalogSchema, catalogJSON); err != nil {
		return nil, fmt.Errorf("content catalogue: %w", err)
	}
	if err := schemas.ValidateJSONString(usersSchema, usersJSON); err != nil {
		return nil, fmt.Errorf("user profiles: %w", err)
	}

	var items []types.ContentItem
	if err := json.Unmarshal([]byte(catalogJSON), &items); err != nil {
		return nil, fmt.Errorf("parsing content catalogue: %w", err)
	}
	var users []types.UserProfile
	if err := json.Unmarshal([]byte(usersJSON), &users); err != nil {
		return nil, fmt.Errorf("parsing user profiles: %w", err)
	}

	byID := make(map[string]types.UserProfile, len(users))
	for _, user := range users {
		byID[user.UserID] = user
	}
	return &Store{items: items, users: users, byID: byID}, nil
}

// MustLoad is Load for program start-up paths where a broken fixture is a
// build defect, not a runtime condition.
func MustLoad() *Store {
	store, err := Load()
	if err != nil {
		panic(err)
	}
	return store
}

// All returns the full content catalogue.
func (s *Store) All() []types.ContentItem {
	return s.items
}

// Users returns all learner personas.
func (s *Store) Users() []types.UserProfile {
	return s.users
}

// UserByID looks up a persona by id.
func (s *Store) UserByID(id string) (types.UserProfile, bool) {
	user, ok := s.byID[id]
	return user, ok
}
