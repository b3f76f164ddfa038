package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laban/internal/apierror"
	"laban/internal/session"
)

func clientVers(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.New()
	return NewClient(srv.URL, 0, sess, zerolog.Nop()), sess
}

func TestClient_DecoreChaqueRequete(t *testing.T) {
	var auth, requestID string
	c, sess := clientVers(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`[]`))
	})
	sess.Definir("jeton-xyz", nil)

	_, err := c.ListeVentes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer jeton-xyz", auth)
	assert.NotEmpty(t, requestID)
}

func TestClient_401InvalideLaSession(t *testing.T) {
	c, sess := clientVers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	expirations := 0
	sess.OnExpiration(func() { expirations++ })
	sess.Definir("jeton-perime", nil)

	_, err := c.ListeVentes(context.Background())
	assert.ErrorIs(t, err, apierror.ErrNonAutorise)
	assert.False(t, sess.Authentifiee())

	// A second 401 on the already-cleared session stays quiet.
	_, err = c.ListeDettes(context.Background())
	assert.ErrorIs(t, err, apierror.ErrNonAutorise)
	assert.Equal(t, 1, expirations)
}

func TestClient_MessageBackendVerbatim(t *testing.T) {
	c, _ := clientVers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Le montant payé doit être positif"}`))
	})

	err := c.Payer(context.Background(), PaiementRequest{VenteID: 1})
	var ae *apierror.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "Le montant payé doit être positif", ae.Detail)
	assert.Equal(t, http.StatusBadRequest, ae.StatusCode)
}

func TestClient_CorpsIllisibleMessageGenerique(t *testing.T) {
	c, _ := clientVers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>panic</html>`))
	})

	err := c.Payer(context.Background(), PaiementRequest{VenteID: 1})
	var ae *apierror.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, apierror.MessageGenerique, ae.Detail)
}

func TestClient_Erreurs4xxNeDeclenchentPasLeDisjoncteur(t *testing.T) {
	var hits atomic.Int32
	c, _ := clientVers(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"refusé"}`))
	})

	// Far more 4xx than the failure threshold: every one must reach the
	// backend, the circuit stays closed.
	for i := 0; i < 10; i++ {
		err := c.Payer(context.Background(), PaiementRequest{VenteID: 1})
		var ae *apierror.APIError
		require.ErrorAs(t, err, &ae)
	}
	assert.Equal(t, int32(10), hits.Load())
	assert.Equal(t, BreakerClosed, c.breaker.State())
}

func TestClient_PanneReseauOuvreLeDisjoncteur(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // unreachable from the start
	sess := session.New()
	c := NewClient(srv.URL, 0, sess, zerolog.Nop())

	var derniere error
	for i := 0; i < DefaultBreakerConfig().FailureThreshold; i++ {
		_, derniere = c.ListeVentes(context.Background())
		require.Error(t, derniere)
		assert.False(t, errors.Is(derniere, ErrBackendIndisponible))
	}
	_, derniere = c.ListeVentes(context.Background())
	assert.ErrorIs(t, derniere, ErrBackendIndisponible)
}
