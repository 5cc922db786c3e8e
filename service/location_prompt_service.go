package services

import (
	"errors"
	"strings"

	"travel-buddy/models"
)

var ErrMissingSession = errors.New("session is required")

// PromptStateStore persists the location prompt flags of a session.
type PromptStateStore interface {
	LoadPromptState(session string) (models.LocationPromptState, error)
	SavePromptState(session string, state models.LocationPromptState) error
}

// LocationPromptService owns the "share your location" prompt state. State is
// read on page load and written through on every change.
type LocationPromptService struct {
	store PromptStateStore
}

func NewLocationPromptService(store PromptStateStore) *LocationPromptService {
	return &LocationPromptService{store: store}
}

func (ps *LocationPromptService) State(session string) (models.LocationPromptState, error) {
	if strings.TrimSpace(session) == "" {
		return models.LocationPromptState{}, ErrMissingSession
	}
	return ps.store.LoadPromptState(session)
}

// Dismiss records "don't show again".
func (ps *LocationPromptService) Dismiss(session string) (models.LocationPromptState, error) {
	return ps.update(session, func(s *models.LocationPromptState) { s.Dismissed = true })
}

// Accept records that the user chose to share their location.
func (ps *LocationPromptService) Accept(session string) (models.LocationPromptState, error) {
	return ps.update(session, func(s *models.LocationPromptState) { s.Accepted = true })
}

func (ps *LocationPromptService) update(session string, change func(*models.LocationPromptState)) (models.LocationPromptState, error) {
	state, err := ps.State(session)
	if err != nil {
		return models.LocationPromptState{}, err
	}
	change(&state)
	if err := ps.store.SavePromptState(session, state); err != nil {
		return models.LocationPromptState{}, err
	}
	return state, nil
}
