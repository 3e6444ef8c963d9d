package bernoulli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPosterior(t *testing.T) {
	posterior, err := NewPosterior(4, WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, 4, posterior.Arms())

	for arm := 0; arm < 4; arm++ {
		wins, losses := posterior.Counts(arm)
		require.Zero(t, wins)
		require.Zero(t, losses)
	}
}

func TestNewPosteriorRejectsTooFew(t *testing.T) {
	for _, arms := range []int{1, 0, -2} {
		_, err := NewPosterior(arms, WithSeed(42))
		require.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestRecordCounts(t *testing.T) {
	posterior, err := NewPosterior(3, WithSeed(42))
	require.NoError(t, err)

	// Selections per arm: 3, 2, 1.
	require.NoError(t, posterior.Record(0, true))
	require.NoError(t, posterior.Record(0, false))
	require.NoError(t, posterior.Record(0, true))
	require.NoError(t, posterior.Record(1, false))
	require.NoError(t, posterior.Record(1, false))
	require.NoError(t, posterior.Record(2, true))

	for arm, pulls := range []int{3, 2, 1} {
		wins, losses := posterior.Counts(arm)
		require.Equal(t, pulls, wins+losses, "arm %d", arm)
	}

	wins, losses := posterior.Counts(0)
	require.Equal(t, 2, wins)
	require.Equal(t, 1, losses)
}

func TestRecordOutOfRange(t *testing.T) {
	posterior, err := NewPosterior(3, WithSeed(42))
	require.NoError(t, err)

	for _, arm := range []int{-1, 3, 10} {
		require.ErrorIs(t, posterior.Record(arm, true), ErrInvalidConfig)
	}
}

func TestSampleRange(t *testing.T) {
	posterior, err := NewPosterior(5, WithSeed(42))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		samples := posterior.Sample()
		require.Len(t, samples, 5)
		for _, s := range samples {
			require.GreaterOrEqual(t, s, 0.0)
			require.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestSampleTracksEvidence(t *testing.T) {
	posterior, err := NewPosterior(2, WithSeed(42))
	require.NoError(t, err)

	// Arm 0 always rewards, arm 1 never does. Beta(51,1) samples sit
	// near 1 and Beta(1,51) near 0, so arm 0 should dominate every draw.
	for i := 0; i < 50; i++ {
		require.NoError(t, posterior.Record(0, true))
		require.NoError(t, posterior.Record(1, false))
	}

	for i := 0; i < 200; i++ {
		samples := posterior.Sample()
		require.Greater(t, samples[0], samples[1])
	}
}

func TestPosteriorSaveLoad(t *testing.T) {
	posterior, err := NewPosterior(3, WithSeed(42))
	require.NoError(t, err)

	require.NoError(t, posterior.Record(0, true))
	require.NoError(t, posterior.Record(1, false))
	require.NoError(t, posterior.Record(2, true))
	require.NoError(t, posterior.Record(2, false))

	var buf bytes.Buffer
	require.NoError(t, posterior.Save(&buf))

	restored, err := LoadPosterior(&buf, WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, posterior.Arms(), restored.Arms())

	for arm := 0; arm < posterior.Arms(); arm++ {
		wins, losses := posterior.Counts(arm)
		rWins, rLosses := restored.Counts(arm)
		require.Equal(t, wins, rWins, "arm %d", arm)
		require.Equal(t, losses, rLosses, "arm %d", arm)
	}
}

func TestLoadPosteriorRejectsGarbage(t *testing.T) {
	_, err := LoadPosterior(bytes.NewBufferString("not a gob stream"))
	require.Error(t, err)
}
