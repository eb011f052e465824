package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"portal/catalog"
	"portal/models"
)

func testSession() *Session {
	scenarios := catalog.NewScenarioCatalog([]models.ScenarioTemplate{
		heatwaveScenario(),
		{ID: "custom", Name: "Custom Scenario"},
	})
	return NewSession(testCatalog(), scenarios, nil)
}

func TestSession_SelectScenarioPopulatesSelection(t *testing.T) {
	s := testSession()

	err := s.SelectScenario("heatwave")
	assert.NoError(t, err)
	assert.Equal(t, "Heatwave", s.ScenarioName())
	assert.NotEmpty(t, s.Selection())
}

func TestSession_SelectScenarioUnknown(t *testing.T) {
	s := testSession()
	err := s.SelectScenario("blizzard")
	assert.ErrorIs(t, err, ErrScenarioNotFound)
	assert.Empty(t, s.Selection())
}

func TestSession_RunRecordsHistory(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))

	result, err := s.Run(models.TimeframeTwoWeeks)
	assert.NoError(t, err)
	assert.Equal(t, "2 Weeks", result.Duration)
	assert.Equal(t, "Heatwave", result.ScenarioName)

	history := s.History()
	assert.Len(t, history, 1)
	assert.Equal(t, result.ID, history[0].ID)
}

func TestSession_EmptyRunLeavesHistoryUntouched(t *testing.T) {
	s := testSession()

	_, err := s.Run(models.TimeframeOneWeek)
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Empty(t, s.History())
}

func TestSession_ResetKeepsHistory(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))
	_, err := s.Run(models.TimeframeOneWeek)
	assert.NoError(t, err)

	s.Reset()
	assert.Empty(t, s.Selection())
	assert.Equal(t, "", s.ScenarioName())
	assert.Len(t, s.History(), 1)
}

func TestSession_ReplayRehydratesSelection(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))
	original := s.Selection()

	result, err := s.Run(models.TimeframeOneWeek)
	assert.NoError(t, err)

	// Mangle the working selection, then replay the stored run.
	s.SetQuantity("bev-001", 1)
	s.SetQuantity("app-001", 0)

	replayed, err := s.Replay(result.ID)
	assert.NoError(t, err)
	assert.Equal(t, result.ID, replayed.ID)
	assert.Equal(t, original, s.Selection())

	// Replaying must not grow, shrink or reorder the history.
	history := s.History()
	assert.Len(t, history, 1)
	assert.Equal(t, result.ID, history[0].ID)
}

func TestSession_ReplayUnknownResult(t *testing.T) {
	s := testSession()
	_, err := s.Replay("run-0")
	assert.ErrorIs(t, err, ErrResultNotFound)
}

func TestSession_SixthRunEvictsOldest(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))

	ids := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		result, err := s.Run(models.TimeframeOneWeek)
		assert.NoError(t, err)
		ids = append(ids, result.ID)
	}

	history := s.History()
	assert.Len(t, history, 5)
	assert.Equal(t, ids[5], history[0].ID)
	for _, r := range history {
		assert.NotEqual(t, ids[0], r.ID)
	}
}

func TestSession_ScheduleDeliversResult(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))

	pending := s.Schedule(models.TimeframeOneWeek, 10*time.Millisecond)
	result, err := pending.Wait(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, s.History(), 1)
}

func TestSession_NewScheduleCancelsPendingRun(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))

	stale := s.Schedule(models.TimeframeOneWeek, time.Hour)
	fresh := s.Schedule(models.TimeframeTwoWeeks, 10*time.Millisecond)

	_, err := stale.Wait(context.Background())
	assert.ErrorIs(t, err, ErrRunCancelled)

	result, err := fresh.Wait(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "2 Weeks", result.Duration)

	// Only the fresh run may land in history.
	assert.Len(t, s.History(), 1)
	assert.Equal(t, result.ID, s.History()[0].ID)
}

func TestPendingRun_ContextCancellationDiscardsRun(t *testing.T) {
	s := testSession()
	assert.NoError(t, s.SelectScenario("heatwave"))

	ctx, cancel := context.WithCancel(context.Background())
	pending := s.Schedule(models.TimeframeOneWeek, time.Hour)
	cancel()

	_, err := pending.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.History())
}
