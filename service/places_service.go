package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"travel-buddy/api/geoapify"
	"travel-buddy/geo"
	"travel-buddy/models"
	geoapifymodels "travel-buddy/models/geoapify"
)

var (
	// ErrStaleResponse is returned when a newer lookup was issued for the
	// same session while this one was in flight. Its results are discarded.
	ErrStaleResponse = errors.New("superseded by a newer lookup")

	ErrInvalidPlacesQuery = errors.New("invalid places query")
)

// PlacesQuery describes one nearby places lookup.
type PlacesQuery struct {
	Session      string
	Category     string
	RadiusMeters int
}

// DefaultSessionIdleTTL is how long a session without lookups keeps its state.
const DefaultSessionIdleTTL = 30 * time.Minute

type placesSession struct {
	issued    uint64
	inFlight  int
	committed *models.NearbyPlacesResponse
	touched   time.Time
}

// PlacesService runs nearby places lookups and keeps the last committed
// result of each session. Idle sessions are dropped by EvictIdleSessions.
type PlacesService struct {
	placesAPI     geoapify.PlacesAPI
	defaultRadius int
	limit         int
	idleTTL       time.Duration
	now           func() time.Time

	mu       sync.Mutex
	sessions map[string]*placesSession
}

func NewPlacesService(placesAPI geoapify.PlacesAPI, defaultRadius, limit int) *PlacesService {
	return &PlacesService{
		placesAPI:     placesAPI,
		defaultRadius: defaultRadius,
		limit:         limit,
		idleTTL:       DefaultSessionIdleTTL,
		now:           time.Now,
		sessions:      make(map[string]*placesSession),
	}
}

// SetSessionIdleTTL changes the idle time after which a session is evicted.
// Non-positive values are ignored.
func (s *PlacesService) SetSessionIdleTTL(ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idleTTL = ttl
}

// StartSessionSweeper evicts idle sessions once per idle TTL until ctx is done.
func (s *PlacesService) StartSessionSweeper(ctx context.Context) {
	s.mu.Lock()
	interval := s.idleTTL
	s.mu.Unlock()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.EvictIdleSessions(); n > 0 {
					log.Printf("[PlacesService] Evicted %d idle sessions", n)
				}
			}
		}
	}()
}

// EvictIdleSessions drops sessions with no lookup in flight that have not been
// used for longer than the idle TTL. It returns how many were dropped.
func (s *PlacesService) EvictIdleSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	evicted := 0
	for id, st := range s.sessions {
		if st.inFlight == 0 && now.Sub(st.touched) > s.idleTTL {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

// SessionCount reports how many sessions currently hold state.
func (s *PlacesService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// LookupNearby resolves the caller's position and fetches places around it.
// No request is sent when the position is unavailable. On failure the
// session's committed results are left as they were.
func (s *PlacesService) LookupNearby(ctx context.Context, locator Locator, q PlacesQuery) (*models.NearbyPlacesResponse, error) {
	if strings.TrimSpace(q.Session) == "" {
		return nil, ErrMissingSession
	}
	q.Category = strings.TrimSpace(q.Category)
	if q.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidPlacesQuery)
	}
	if q.RadiusMeters < 0 {
		return nil, fmt.Errorf("%w: radius must not be negative", ErrInvalidPlacesQuery)
	}
	if q.RadiusMeters == 0 {
		q.RadiusMeters = s.defaultRadius
	}

	origin, err := locator.CurrentPosition(ctx)
	if err != nil {
		if !errors.Is(err, ErrLocationUnavailable) {
			err = fmt.Errorf("%w: %v", ErrLocationUnavailable, err)
		}
		log.Printf("[PlacesService] Session %q has no location: %v", q.Session, err)
		return nil, err
	}

	seq := s.begin(q.Session)
	response, err := s.placesAPI.SearchPlaces(ctx, origin, q.Category, q.RadiusMeters, s.limit)
	if err != nil {
		s.finish(q.Session)
		log.Printf("[PlacesService] Lookup %d for session %q failed: %v", seq, q.Session, err)
		return nil, err
	}

	result := &models.NearbyPlacesResponse{
		Origin:       origin,
		Category:     q.Category,
		RadiusMeters: q.RadiusMeters,
		Sequence:     seq,
		Places:       AnnotatePlaces(origin, response.Features),
	}
	if err := s.commit(q.Session, seq, result); err != nil {
		log.Printf("[PlacesService] Dropping lookup %d for session %q: %v", seq, q.Session, err)
		return nil, err
	}
	log.Printf("[PlacesService] Lookup %d for session %q returned %d places", seq, q.Session, len(result.Places))
	return result, nil
}

// LastResults returns the session's most recent committed lookup.
func (s *PlacesService) LastResults(session string) (*models.NearbyPlacesResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[session]
	if !ok || st.committed == nil {
		return nil, false
	}
	st.touched = s.now()
	return st.committed, true
}

func (s *PlacesService) begin(session string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.sessions[session]
	if !ok {
		st = &placesSession{}
		s.sessions[session] = st
	}
	st.issued++
	st.inFlight++
	st.touched = s.now()
	return st.issued
}

// finish ends a lookup that will not commit.
func (s *PlacesService) finish(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.sessions[session]; ok {
		st.inFlight--
		st.touched = s.now()
	}
}

func (s *PlacesService) commit(session string, seq uint64, result *models.NearbyPlacesResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.sessions[session]
	st.inFlight--
	st.touched = s.now()
	if seq != st.issued {
		return fmt.Errorf("%w: lookup %d, latest %d", ErrStaleResponse, seq, st.issued)
	}
	st.committed = result
	return nil
}

// AnnotatePlaces converts API features to results carrying their distance from origin.
// The API's order is kept.
func AnnotatePlaces(origin models.GeoPoint, features []geoapifymodels.Feature) []models.PlaceResult {
	places := make([]models.PlaceResult, 0, len(features))
	for _, f := range features {
		p := f.Properties
		point := models.GeoPoint{Latitude: p.Lat, Longitude: p.Lon}
		meters := geo.Distance(origin, point)
		result := models.PlaceResult{
			Name:             p.Name,
			FormattedAddress: p.Formatted,
			Latitude:         p.Lat,
			Longitude:        p.Lon,
			OpeningHours:     p.OpeningHours,
			Description:      p.Description,
			DistanceMeters:   meters,
			DistanceLabel:    geo.FormatDistance(meters),
			MapsURL:          geo.MapsURL(point),
		}
		if p.Contact != nil {
			result.Phone = p.Contact.Phone
		}
		places = append(places, result)
	}
	return places
}
