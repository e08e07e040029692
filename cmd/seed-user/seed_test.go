package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-quizo/internal/service"
	"github.com/pribylovaa/go-quizo/internal/storage/memory"
)

func TestCreateTeacher_ThenLogin(t *testing.T) {
	st := memory.New()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	u, err := createTeacher(ctx, st, clock, "  alice ", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.True(t, clock.Now().Equal(u.CreatedAt))

	got, err := service.New(st, clock).Authenticate(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestCreateTeacher_Validation(t *testing.T) {
	st := memory.New()
	clock := clockwork.NewFakeClock()
	ctx := context.Background()

	_, err := createTeacher(ctx, st, clock, " ", "pw")
	require.ErrorIs(t, err, errEmptyUsername)

	_, err = createTeacher(ctx, st, clock, "bob", "  ")
	require.ErrorIs(t, err, errEmptyPassword)

	_, err = createTeacher(ctx, st, clock, "bob", "pw")
	require.NoError(t, err)

	_, err = createTeacher(ctx, st, clock, "bob", "other")
	require.ErrorIs(t, err, errUsernameTaken)
}

func TestPromptPassword(t *testing.T) {
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })

	readPassword = func(int) ([]byte, error) { return []byte("pw"), nil }

	var out bytes.Buffer
	pw, err := promptPassword(&out)
	require.NoError(t, err)
	require.Equal(t, "pw", string(pw))
	require.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("not a terminal") }
	_, err = promptPassword(&out)
	require.Error(t, err)
}
