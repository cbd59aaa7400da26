package services_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Isaacjdv/futbolapp-backend/entity"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

func TestReferenceShapesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"name":{"common":"Argentina"},"flags":{"png":"https://flagcdn.com/w320/ar.png"},"cca2":"AR"},
			{"name":{"common":""},"flags":{"png":"x"},"cca2":"XX"},
			{"name":{"common":"Brazil"},"flags":{"png":"https://flagcdn.com/w320/br.png"},"cca2":"BR"}
		]`))
	}))
	defer upstream.Close()

	db := newTestDB(t)
	svc := services.NewReferenceService(upstream.URL, time.Second, repository.NewTeamRepository(db))

	entities, err := svc.Entities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 2) // nameless entries are dropped
	assert.Equal(t, "AR", entities[0].ID)
	assert.Equal(t, "Argentina", entities[0].Name)
	assert.Equal(t, "https://flagcdn.com/w320/ar.png", entities[0].Logo)
}

func TestReferenceFallsBackToSeededTeams(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.Team{Name: "Ecuador", Logo: "https://flagcdn.com/w320/ec.png"}).Error)

	svc := services.NewReferenceService("http://127.0.0.1:1", 200*time.Millisecond, repository.NewTeamRepository(db))

	entities, err := svc.Entities(context.Background())
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Ecuador", entities[0].Name)
}

func TestReferenceUnavailableWhenNoFallback(t *testing.T) {
	db := newTestDB(t) // teams table left empty
	svc := services.NewReferenceService("http://127.0.0.1:1", 200*time.Millisecond, repository.NewTeamRepository(db))

	_, err := svc.Entities(context.Background())
	assert.ErrorIs(t, err, services.ErrUpstream)
}
