package flow

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podio/models"
	"podio/utils"
)

func newTestRepo(t *testing.T) (*SessionRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSessionRepo(client, 30*time.Minute), mr
}

func TestSessionRepo_CreateAndLoad(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	loaded, err := repo.Load(ctx, created.ID, 42)
	require.NoError(t, err)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, 42, loaded.EventID)
	assert.Equal(t, 0, loaded.Registration.CurrentStepIndex)
	assert.Equal(t, 1, loaded.Spectator.SpectatorInfo.Quantity)
	assert.Equal(t, models.CardVisa, loaded.Payment.PaymentInfo.CardType)
}

func TestSessionRepo_Load_Unknown(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Load(context.Background(), "no-such-session", 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// The registration key anchors the session: once it expires the session is
// gone even if other keys linger.
func TestSessionRepo_Load_ExpiredAnchor(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, 1)
	require.NoError(t, err)

	mr.Del(s.ID + ":" + utils.RegistrationStorageKey)

	_, err = repo.Load(ctx, s.ID, 1)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepo_StoresPersistIndependently(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, 5)
	require.NoError(t, err)

	s.Registration.PersonalInfo.FirstName = "Ana"
	s.Registration.SetCurrentStep(2)
	require.NoError(t, repo.SaveRegistration(ctx, s))

	s.Group.SetTeamName("Los Rápidos")
	require.NoError(t, s.Group.AddMember(validMember("a@example.com")))
	require.NoError(t, repo.SaveGroup(ctx, s))

	s.Payment.Update(models.PaymentInfoPatch{CardNumber: strPtr("371449635398431")})
	require.NoError(t, repo.SavePayment(ctx, s))

	s.Type.SetType(models.TypeGroups)
	require.NoError(t, repo.SaveType(ctx, s))

	loaded, err := repo.Load(ctx, s.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, "Ana", loaded.Registration.PersonalInfo.FirstName)
	assert.Equal(t, 2, loaded.Registration.CurrentStepIndex)
	assert.Equal(t, "Los Rápidos", loaded.Group.TeamName)
	require.Len(t, loaded.Group.TeamMembers, 1)
	assert.Equal(t, models.CardAmex, loaded.Payment.PaymentInfo.CardType)
	assert.Equal(t, models.TypeGroups, loaded.Type.RegistrationType)
}

func TestSessionRepo_MissingSecondaryStoreDefaults(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, 5)
	require.NoError(t, err)

	mr.Del(s.ID + ":" + utils.SpectatorStorageKey)

	loaded, err := repo.Load(ctx, s.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, "GT", loaded.Spectator.SpectatorInfo.PhoneCountry)
	assert.Equal(t, 1, loaded.Spectator.SpectatorInfo.Quantity)
}

func TestSessionRepo_ResetAll(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	s, err := repo.Create(ctx, 5)
	require.NoError(t, err)
	s.Registration.PersonalInfo.FirstName = "Ana"
	s.Registration.SetCurrentStep(3)
	s.Group.SetTeamName("Los Rápidos")
	require.NoError(t, repo.SaveAll(ctx, s))

	require.NoError(t, repo.ResetAll(ctx, s))

	loaded, err := repo.Load(ctx, s.ID, 5)
	require.NoError(t, err)
	assert.Empty(t, loaded.Registration.PersonalInfo.FirstName)
	assert.Equal(t, 0, loaded.Registration.CurrentStepIndex)
	assert.Empty(t, loaded.Group.TeamName)
}

func TestSessionRepo_SubmitLock(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	ok, err := repo.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.False(t, ok)

	// A different session holds its own slot.
	ok, err = repo.AcquireSubmitLock(ctx, "sess-2")
	require.NoError(t, err)
	assert.True(t, ok)

	repo.ReleaseSubmitLock(ctx, "sess-1")
	ok, err = repo.AcquireSubmitLock(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, ok)
}
