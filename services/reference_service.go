package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Isaacjdv/futbolapp-backend/metrics"
	"github.com/Isaacjdv/futbolapp-backend/pkg/logger"
	"github.com/Isaacjdv/futbolapp-backend/repository"
)

// ReferenceEntity is a favorite-selectable team or country.
type ReferenceEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type ReferenceService struct {
	client *http.Client
	base   string
	teams  *repository.TeamRepository
}

func NewReferenceService(base string, timeout time.Duration, teams *repository.TeamRepository) *ReferenceService {
	return &ReferenceService{
		client: &http.Client{Timeout: timeout},
		base:   strings.TrimRight(base, "/"),
		teams:  teams,
	}
}

type countryResponse struct {
	Name struct {
		Common string `json:"common"`
	} `json:"name"`
	Flags struct {
		PNG string `json:"png"`
	} `json:"flags"`
	CCA2 string `json:"cca2"`
}

// Entities lists the selectable teams/countries. Upstream first; when it
// fails the seeded local table takes over. Only when both are empty does
// the caller see ErrUpstream.
func (s *ReferenceService) Entities(ctx context.Context) ([]ReferenceEntity, error) {
	entities, err := s.fetch(ctx)
	if err == nil && len(entities) > 0 {
		return entities, nil
	}
	if err != nil {
		logger.L().Warn("reference upstream failed, using seeded teams", zap.Error(err))
	}
	metrics.UpstreamFallbacks.WithLabelValues("countries").Inc()

	teams, dbErr := s.teams.All()
	if dbErr != nil {
		return nil, dbErr
	}
	if len(teams) == 0 {
		return nil, ErrUpstream
	}

	entities = make([]ReferenceEntity, 0, len(teams))
	for _, t := range teams {
		entities = append(entities, ReferenceEntity{
			ID:   strconv.FormatUint(uint64(t.ID), 10),
			Name: t.Name,
			Logo: t.Logo,
		})
	}
	return entities, nil
}

func (s *ReferenceService) fetch(ctx context.Context) ([]ReferenceEntity, error) {
	url := s.base + "/all?fields=name,flags,cca2"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, res.StatusCode)
	}

	var raw []countryResponse
	if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
		return nil, err
	}

	entities := make([]ReferenceEntity, 0, len(raw))
	for _, c := range raw {
		if c.Name.Common == "" {
			continue
		}
		entities = append(entities, ReferenceEntity{
			ID:   c.CCA2,
			Name: c.Name.Common,
			Logo: c.Flags.PNG,
		})
	}
	return entities, nil
}
