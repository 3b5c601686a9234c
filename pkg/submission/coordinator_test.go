package submission

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/captcha"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/catalog"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/wizard"
)

// processFunc adapts a closure into a ProcessingClient.
type processFunc func(ctx context.Context, kind models.Kind, payload models.Fields) (*Receipt, error)

func (f processFunc) Process(ctx context.Context, kind models.Kind, payload models.Fields) (*Receipt, error) {
	return f(ctx, kind, payload)
}

func newTestCoordinator(t *testing.T, client ProcessingClient) (*Coordinator, *wizard.Manager) {
	t.Helper()
	log := logger.New("error", "text")
	catalogService := catalog.NewService(nil, log)
	sessions := wizard.NewManager(time.Minute)
	engine := wizard.NewEngine(catalogService, log)
	c := NewCoordinator(sessions, engine, captcha.StaticVerifier{}, client, catalogService, log, nil)
	return c, sessions
}

// startSuggestionSession fills a valid single-step suggestion session.
// Suggestion has no captcha requirement, which keeps the submit path
// tests focused on the behavior under test.
func startSuggestionSession(t *testing.T, sessions *wizard.Manager) string {
	t.Helper()
	d, ok := forms.Get(models.KindSuggestion)
	require.True(t, ok)

	session := sessions.Start(d)
	state := session.State
	for field, value := range map[string]string{
		"name":    "Asha Rao",
		"phone":   "9876543210",
		"email":   "asha@example.com",
		"message": "The showroom staff were very helpful.",
	} {
		next, issues := wizard.Apply(d, state, wizard.Event{Type: wizard.EventSetField, Field: field, Value: value})
		require.True(t, issues.Valid())
		state = next
	}
	require.NoError(t, sessions.Put(session.ID, state))
	return session.ID
}

func TestSubmitSuccessResetsSession(t *testing.T) {
	var gotKind models.Kind
	var gotPayload models.Fields
	client := processFunc(func(_ context.Context, kind models.Kind, payload models.Fields) (*Receipt, error) {
		gotKind = kind
		gotPayload = payload
		return &Receipt{ReferenceID: "TVS-SG-ABCD1234"}, nil
	})
	c, sessions := newTestCoordinator(t, client)
	id := startSuggestionSession(t, sessions)

	before, err := sessions.Get(id)
	require.NoError(t, err)

	result, err := c.Submit(context.Background(), id, "")
	require.NoError(t, err)
	assert.Equal(t, "TVS-SG-ABCD1234", result.ReferenceID)
	assert.Equal(t, models.KindSuggestion, gotKind)
	assert.Equal(t, "Asha Rao", gotPayload["name"])

	after, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Empty(t, after.State.Fields)
	assert.Equal(t, 1, after.State.CurrentStep)
	assert.NotEqual(t, before.State.AttemptToken, after.State.AttemptToken)
}

func TestSubmitMintsReferenceWhenReceiptOmitsOne(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return &Receipt{}, nil
	})
	c, sessions := newTestCoordinator(t, client)
	id := startSuggestionSession(t, sessions)

	result, err := c.Submit(context.Background(), id, "")
	require.NoError(t, err)
	assert.Contains(t, result.ReferenceID, "TVS-SG-")
}

func TestSubmitProcessingFailurePreservesSession(t *testing.T) {
	downstreamErr := errors.New("endpoint returned status 502")
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return nil, downstreamErr
	})
	c, sessions := newTestCoordinator(t, client)
	id := startSuggestionSession(t, sessions)

	_, err := c.Submit(context.Background(), id, "")
	var procErr *ProcessingError
	require.ErrorAs(t, err, &procErr)
	assert.ErrorIs(t, procErr, downstreamErr)

	// The user can fix nothing on their side, so the collected fields
	// must survive for a retry.
	session, err := sessions.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", session.State.Fields["name"])
}

func TestSubmitNotReady(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		t.Fatal("processing must not be called for an unready session")
		return nil, nil
	})
	c, sessions := newTestCoordinator(t, client)

	d, ok := forms.Get(models.KindSuggestion)
	require.True(t, ok)
	session := sessions.Start(d)

	_, err := c.Submit(context.Background(), session.ID, "")
	var notReady *NotReadyError
	require.ErrorAs(t, err, &notReady)
	assert.NotEmpty(t, notReady.Issues)
}

func TestSubmitUnknownSession(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return &Receipt{}, nil
	})
	c, _ := newTestCoordinator(t, client)

	_, err := c.Submit(context.Background(), "nope", "")
	assert.ErrorIs(t, err, wizard.ErrSessionNotFound)
}

func TestSubmitRequiresBotCheck(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return &Receipt{}, nil
	})
	c, sessions := newTestCoordinator(t, client)

	d, ok := forms.Get(models.KindTestRide)
	require.True(t, ok)
	session := sessions.Start(d)

	// No token and no prior verify_bot event: rejected before any
	// readiness check runs.
	_, err := c.Submit(context.Background(), session.ID, "")
	assert.ErrorIs(t, err, captcha.ErrBotCheckFailed)

	// A token on the submit call passes the gate, after which the
	// incomplete session fails readiness instead.
	_, err = c.Submit(context.Background(), session.ID, "ok-token")
	var notReady *NotReadyError
	assert.ErrorAs(t, err, &notReady)
}

func TestSubmitDropsStaleResultAfterReset(t *testing.T) {
	var sessionsRef *wizard.Manager
	var sessionID string
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		// Simulate the user resetting the wizard while the submit
		// request is in flight.
		d, _ := forms.Get(models.KindSuggestion)
		reset := wizard.NewState(d)
		reset.Fields["name"] = "second attempt"
		require.NoError(t, sessionsRef.Put(sessionID, reset))
		return &Receipt{ReferenceID: "TVS-SG-STALE001"}, nil
	})
	c, sessions := newTestCoordinator(t, client)
	sessionsRef = sessions
	sessionID = startSuggestionSession(t, sessions)

	result, err := c.Submit(context.Background(), sessionID, "")
	require.NoError(t, err)
	assert.Equal(t, "TVS-SG-STALE001", result.ReferenceID)

	// The mid-flight reset wins: the post-success reset is discarded.
	session, err := sessions.Get(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "second attempt", session.State.Fields["name"])
}

func TestVerifyBotMarksSession(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return &Receipt{}, nil
	})
	c, sessions := newTestCoordinator(t, client)

	d, ok := forms.Get(models.KindTestRide)
	require.True(t, ok)
	session := sessions.Start(d)

	state, err := c.VerifyBot(context.Background(), session.ID, "ok-token")
	require.NoError(t, err)
	assert.True(t, state.BotVerified)

	stored, err := sessions.Get(session.ID)
	require.NoError(t, err)
	assert.True(t, stored.State.BotVerified)
}

func TestVerifyBotRejectsEmptyToken(t *testing.T) {
	client := processFunc(func(_ context.Context, _ models.Kind, _ models.Fields) (*Receipt, error) {
		return &Receipt{}, nil
	})
	c, sessions := newTestCoordinator(t, client)

	d, ok := forms.Get(models.KindTestRide)
	require.True(t, ok)
	session := sessions.Start(d)

	_, err := c.VerifyBot(context.Background(), session.ID, "")
	assert.ErrorIs(t, err, captcha.ErrBotCheckFailed)

	stored, err := sessions.Get(session.ID)
	require.NoError(t, err)
	assert.False(t, stored.State.BotVerified)
}
