package session

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laban/internal/model"
)

func TestSession_DefinirEtLire(t *testing.T) {
	s := New()
	assert.False(t, s.Authentifiee())

	s.Definir("jeton-abc", &model.Utilisateur{ID: 1, Nom: "Awa"})
	assert.True(t, s.Authentifiee())
	assert.Equal(t, "jeton-abc", s.Jeton())
	assert.Equal(t, "Awa", s.Utilisateur().Nom)
}

func TestSession_EffacerIdempotent(t *testing.T) {
	s := New()
	s.Definir("jeton-abc", nil)
	s.Effacer()
	s.Effacer()
	assert.False(t, s.Authentifiee())
	assert.Nil(t, s.Utilisateur())
}

func TestSession_InvaliderNotifieUneSeuleFois(t *testing.T) {
	s := New()
	appels := 0
	s.OnExpiration(func() { appels++ })
	s.Definir("jeton-abc", nil)

	// Concurrent duplicate 401s: the hook must fire exactly once.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Invalider()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, appels)
	assert.False(t, s.Authentifiee())

	// A fresh login re-arms the notification.
	s.Definir("jeton-def", nil)
	s.Invalider()
	assert.Equal(t, 2, appels)
}

func TestSession_InvaliderSansJetonNeNotifiePas(t *testing.T) {
	s := New()
	appels := 0
	s.OnExpiration(func() { appels++ })
	s.Invalider()
	assert.Equal(t, 0, appels)
}

func TestSession_ExpireA(t *testing.T) {
	s := New()
	_, ok := s.ExpireA()
	assert.False(t, ok)

	exp := time.Now().Add(8 * time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	signe, err := tok.SignedString([]byte("peu-importe"))
	require.NoError(t, err)

	s.Definir(signe, nil)
	quand, ok := s.ExpireA()
	require.True(t, ok)
	assert.True(t, quand.Equal(exp))

	s.Definir("pas-un-jwt", nil)
	_, ok = s.ExpireA()
	assert.False(t, ok)
}
