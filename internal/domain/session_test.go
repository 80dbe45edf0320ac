package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRound(t *testing.T) *Round {
	t.Helper()
	r, err := NewRound("data:image/png;base64,QUJD",
		[]string{"Con Gà", "Con Mèo", "Con Vịt", "Con Chó"}, "Con Mèo")
	require.NoError(t, err)
	return r
}

// newPlayingSession returns a session with an animals round in play.
func newPlayingSession(t *testing.T) *Session {
	t.Helper()
	s := NewSession()
	require.NoError(t, s.SelectCategory(CategoryAnimals))
	s.BeginRound()
	require.True(t, s.CompleteRound(CategoryAnimals, newTestRound(t)))
	return s
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s := NewSession()
	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.False(t, s.HasCategory())
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Nil(t, s.Round)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSessionSelectCategory(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.NoError(t, s.SelectCategory(CategoryPlants))
	assert.Equal(t, CategoryPlants, s.Category)

	err := s.SelectCategory("vehicles")
	assert.True(t, errors.Is(err, ErrInvalidCategory))
	assert.Equal(t, CategoryPlants, s.Category, "invalid selection must not change the category")
}

func TestSessionRoundLifecycle(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.NoError(t, s.SelectCategory(CategoryAnimals))

	s.BeginRound()
	assert.True(t, s.Loading)
	assert.Nil(t, s.Round)

	round := newTestRound(t)
	assert.True(t, s.CompleteRound(CategoryAnimals, round))
	assert.False(t, s.Loading)
	assert.Same(t, round, s.Round)
	assert.Equal(t, StatusPlaying, s.Status)

	s.BeginRound()
	assert.True(t, s.FailRound(CategoryAnimals, "lỗi"))
	assert.False(t, s.Loading)
	assert.Nil(t, s.Round)
	assert.Equal(t, "lỗi", s.Error)

	s.BeginRound()
	assert.Empty(t, s.Error, "a new fetch clears the previous error")
}

func TestSessionAnswer(t *testing.T) {
	t.Parallel()

	t.Run("no round", func(t *testing.T) {
		t.Parallel()

		s := NewSession()
		_, accepted, err := s.Answer("Con Mèo")
		assert.False(t, accepted)
		assert.True(t, errors.Is(err, ErrNoActiveRound))
	})

	t.Run("correct answer", func(t *testing.T) {
		t.Parallel()

		s := newPlayingSession(t)
		status, accepted, err := s.Answer("Con Mèo")
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, StatusCorrect, status)
		assert.Equal(t, "Con Mèo", s.SelectedAnswer)
	})

	t.Run("first answer wins", func(t *testing.T) {
		t.Parallel()

		s := newPlayingSession(t)
		status, accepted, err := s.Answer("Con Gà")
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, StatusIncorrect, status)

		status, accepted, err = s.Answer("Con Mèo")
		require.NoError(t, err)
		assert.False(t, accepted)
		assert.Equal(t, StatusIncorrect, status)
		assert.Equal(t, "Con Gà", s.SelectedAnswer)
	})

	t.Run("unknown option", func(t *testing.T) {
		t.Parallel()

		s := newPlayingSession(t)
		_, accepted, err := s.Answer("Con Bò")
		assert.False(t, accepted)
		assert.True(t, errors.Is(err, ErrInvalidAnswer))
		assert.Equal(t, StatusPlaying, s.Status)
	})

	t.Run("new round resets status", func(t *testing.T) {
		t.Parallel()

		s := newPlayingSession(t)
		_, _, err := s.Answer("Con Mèo")
		require.NoError(t, err)

		s.BeginRound()
		assert.Equal(t, StatusPlaying, s.Status)
		assert.Empty(t, s.SelectedAnswer)
	})
}

func TestSessionClearCategory(t *testing.T) {
	t.Parallel()

	s := NewSession()
	require.NoError(t, s.SelectCategory(CategoryObjects))
	s.BeginRound()
	require.True(t, s.FailRound(CategoryObjects, "lỗi"))

	s.ClearCategory()
	assert.False(t, s.HasCategory())
	assert.Empty(t, s.Error)
	assert.Nil(t, s.Round)
}

func TestSessionLateFetchResultDiscarded(t *testing.T) {
	t.Parallel()

	t.Run("completion after clearing the category", func(t *testing.T) {
		t.Parallel()

		s := NewSession()
		require.NoError(t, s.SelectCategory(CategoryAnimals))
		s.BeginRound()
		s.ClearCategory()

		assert.False(t, s.CompleteRound(CategoryAnimals, newTestRound(t)))
		assert.False(t, s.HasCategory())
		assert.Nil(t, s.Round)
		assert.False(t, s.Loading)
	})

	t.Run("failure after clearing the category", func(t *testing.T) {
		t.Parallel()

		s := NewSession()
		require.NoError(t, s.SelectCategory(CategoryPlants))
		s.BeginRound()
		s.ClearCategory()

		assert.False(t, s.FailRound(CategoryPlants, "lỗi"))
		assert.Empty(t, s.Error)
	})

	t.Run("completion for a previously selected category", func(t *testing.T) {
		t.Parallel()

		s := NewSession()
		require.NoError(t, s.SelectCategory(CategoryAnimals))
		s.BeginRound()
		require.NoError(t, s.SelectCategory(CategoryObjects))
		s.BeginRound()

		assert.False(t, s.CompleteRound(CategoryAnimals, newTestRound(t)))
		assert.True(t, s.Loading, "the objects fetch is still pending")
		assert.Nil(t, s.Round)
	})

	t.Run("no category selected", func(t *testing.T) {
		t.Parallel()

		s := NewSession()
		assert.False(t, s.CompleteRound("", newTestRound(t)))
		assert.Nil(t, s.Round)
	})
}

func TestSessionClone(t *testing.T) {
	t.Parallel()

	s := NewSession()
	c := s.Clone()
	require.NoError(t, c.SelectCategory(CategoryAnimals))
	assert.False(t, s.HasCategory())
}
