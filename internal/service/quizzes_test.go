package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-quizo/internal/models"
	"github.com/pribylovaa/go-quizo/internal/storage"
	"github.com/pribylovaa/go-quizo/internal/storage/memory"
)

func strPtr(s string) *string { return &s }

// newServiceWithMemory поднимает сервис поверх in-memory хранилища с одним учителем.
func newServiceWithMemory(t *testing.T) (*Service, *memory.Storage, *clockwork.FakeClock, models.User) {
	t.Helper()

	st := memory.New()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))

	teacher := models.User{ID: uuid.New(), Username: "t1", Password: "p1", CreatedAt: clock.Now()}
	require.NoError(t, st.SaveUser(context.Background(), &teacher))

	return New(st, clock), st, clock, teacher
}

func seedTeacher(t *testing.T, st *memory.Storage, name string) models.User {
	t.Helper()

	u := models.User{ID: uuid.New(), Username: name, Password: "p", CreatedAt: time.Now().UTC()}
	require.NoError(t, st.SaveUser(context.Background(), &u))

	return u
}

func TestService_CreateQuiz_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)
	owner := uuid.NewString()

	cases := []struct {
		name  string
		input CreateQuizInput
	}{
		{"empty title", CreateQuizInput{Title: "", Description: "d", OwnerID: owner}},
		{"blank title", CreateQuizInput{Title: "  ", Description: "d", OwnerID: owner}},
		{"blank description", CreateQuizInput{Title: "t", Description: "\t", OwnerID: owner}},
		{"empty owner", CreateQuizInput{Title: "t", Description: "d", OwnerID: ""}},
		{"malformed owner", CreateQuizInput{Title: "t", Description: "d", OwnerID: "not-a-uuid"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateQuiz(context.Background(), tc.input)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_CreateQuiz_StorageErrors(t *testing.T) {
	cases := []struct {
		name    string
		storErr error
		want    error
	}{
		{"duplicate title", storage.ErrAlreadyExists, ErrAlreadyExists},
		{"unknown owner", storage.ErrOwnerNotFound, ErrInvalidArgument},
		{"db failure", errors.New("boom"), ErrInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, ms, _ := newServiceWithMocks(t)
			ms.EXPECT().SaveQuiz(gomock.Any(), gomock.Any()).Return(tc.storErr)

			_, err := s.CreateQuiz(context.Background(), CreateQuizInput{
				Title: "t", Description: "d", OwnerID: uuid.NewString(),
			})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestService_CreateQuiz_NormalizesAndStampsClock(t *testing.T) {
	s, ms, clock := newServiceWithMocks(t)
	owner := uuid.New()

	ms.EXPECT().SaveQuiz(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q *models.Quiz) error {
			require.Equal(t, "Math", q.Title)
			require.Equal(t, "Basics", q.Description)
			require.Equal(t, owner, q.TeacherID)
			require.NotEqual(t, uuid.Nil, q.ID)
			require.True(t, clock.Now().Equal(q.CreatedAt))
			return nil
		})

	got, err := s.CreateQuiz(context.Background(), CreateQuizInput{
		Title: "  Math ", Description: " Basics", OwnerID: owner.String(),
	})
	require.NoError(t, err)
	require.Equal(t, "Math", got.Title)
}

func TestService_ListQuizzes(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)

	_, err := s.ListQuizzes(context.Background(), " ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Не-UUID не обращается к стораджу и даёт пустой список.
	list, err := s.ListQuizzes(context.Background(), "garbage")
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)

	owner := uuid.New()
	ms.EXPECT().QuizzesByOwner(gomock.Any(), owner).Return(nil, nil)
	list, err = s.ListQuizzes(context.Background(), owner.String())
	require.NoError(t, err)
	require.NotNil(t, list)

	ms.EXPECT().QuizzesByOwner(gomock.Any(), owner).Return(nil, errors.New("boom"))
	_, err = s.ListQuizzes(context.Background(), owner.String())
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_QuizByID_ScopeErrors(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.QuizByID(ctx, "", uuid.NewString())
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.QuizByID(ctx, uuid.NewString(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.QuizByID(ctx, "abc", uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().QuizByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	_, err = s.QuizByID(ctx, uuid.NewString(), uuid.NewString())
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_UpdateQuiz_Validation(t *testing.T) {
	s, _, _ := newServiceWithMocks(t)
	ctx := context.Background()

	_, err := s.UpdateQuiz(ctx, UpdateQuizInput{ID: uuid.NewString(), OwnerID: uuid.NewString(), Title: strPtr(" ")})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.UpdateQuiz(ctx, UpdateQuizInput{ID: uuid.NewString(), OwnerID: uuid.NewString(), Description: strPtr("")})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.UpdateQuiz(ctx, UpdateQuizInput{ID: "", OwnerID: uuid.NewString(), Title: strPtr("x")})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_UpdateQuiz_ConcurrentDelete(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	id, owner := uuid.New(), uuid.New()

	ms.EXPECT().QuizByID(gomock.Any(), id, owner).Return(&models.Quiz{ID: id, TeacherID: owner}, nil)
	ms.EXPECT().UpdateQuiz(gomock.Any(), id, owner, gomock.Any()).Return(nil, storage.ErrNotFound)

	_, err := s.UpdateQuiz(context.Background(), UpdateQuizInput{ID: id.String(), OwnerID: owner.String(), Title: strPtr("x")})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteQuiz_StorageError(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	id, owner := uuid.New(), uuid.New()

	ms.EXPECT().QuizByID(gomock.Any(), id, owner).Return(&models.Quiz{ID: id, TeacherID: owner}, nil)
	ms.EXPECT().DeleteQuiz(gomock.Any(), id, owner).Return(errors.New("boom"))

	err := s.DeleteQuiz(context.Background(), id.String(), owner.String())
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_StorageContextErrors_KeepCause(t *testing.T) {
	s, ms, _ := newServiceWithMocks(t)
	ctx := context.Background()
	owner := uuid.New()

	ms.EXPECT().QuizzesByOwner(gomock.Any(), owner).
		Return(nil, fmt.Errorf("storage.postgres.QuizzesByOwner: %w", context.DeadlineExceeded))
	_, err := s.ListQuizzes(ctx, owner.String())
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	ms.EXPECT().QuizByID(gomock.Any(), gomock.Any(), owner).
		Return(nil, fmt.Errorf("storage.postgres.QuizByID: %w", context.Canceled))
	_, err = s.QuizByID(ctx, uuid.NewString(), owner.String())
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, context.Canceled)

	ms.EXPECT().SaveQuiz(gomock.Any(), gomock.Any()).Return(context.Canceled)
	_, err = s.CreateQuiz(ctx, CreateQuizInput{Title: "T", Description: "D", OwnerID: owner.String()})
	require.ErrorIs(t, err, context.Canceled)

	ms.EXPECT().UserByUsername(gomock.Any(), "t1").Return(nil, context.DeadlineExceeded)
	_, err = s.Authenticate(ctx, "t1", "p1")
	require.ErrorIs(t, err, ErrInternal)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// Сценарии поверх in-memory хранилища.

func TestService_Quizzes_RoundTripAndOwnership(t *testing.T) {
	s, st, _, teacher := newServiceWithMemory(t)
	ctx := context.Background()
	other := seedTeacher(t, st, "t2")

	q, err := s.CreateQuiz(ctx, CreateQuizInput{Title: "Math", Description: "Basics", OwnerID: teacher.ID.String()})
	require.NoError(t, err)

	got, err := s.QuizByID(ctx, q.ID.String(), teacher.ID.String())
	require.NoError(t, err)
	require.Equal(t, *q, *got)

	// Чужой учитель не видит, не меняет и не удаляет квиз.
	_, err = s.QuizByID(ctx, q.ID.String(), other.ID.String())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.UpdateQuiz(ctx, UpdateQuizInput{ID: q.ID.String(), OwnerID: other.ID.String(), Title: strPtr("X")})
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteQuiz(ctx, q.ID.String(), other.ID.String()), ErrNotFound)

	list, err := s.ListQuizzes(ctx, other.ID.String())
	require.NoError(t, err)
	require.Empty(t, list)

	got, err = s.QuizByID(ctx, q.ID.String(), teacher.ID.String())
	require.NoError(t, err)
	require.Equal(t, "Math", got.Title)
}

func TestService_Quizzes_ListNewestFirst(t *testing.T) {
	s, _, clock, teacher := newServiceWithMemory(t)
	ctx := context.Background()

	for _, title := range []string{"Q1", "Q2", "Q3"} {
		_, err := s.CreateQuiz(ctx, CreateQuizInput{Title: title, Description: "d", OwnerID: teacher.ID.String()})
		require.NoError(t, err)
		clock.Advance(time.Second)
	}

	list, err := s.ListQuizzes(ctx, teacher.ID.String())
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, []string{"Q3", "Q2", "Q1"}, []string{list[0].Title, list[1].Title, list[2].Title})
}

func TestService_Quizzes_DuplicateTitle(t *testing.T) {
	s, st, _, teacher := newServiceWithMemory(t)
	ctx := context.Background()
	other := seedTeacher(t, st, "t2")

	_, err := s.CreateQuiz(ctx, CreateQuizInput{Title: "Same", Description: "d", OwnerID: teacher.ID.String()})
	require.NoError(t, err)

	_, err = s.CreateQuiz(ctx, CreateQuizInput{Title: " Same ", Description: "d", OwnerID: teacher.ID.String()})
	require.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.CreateQuiz(ctx, CreateQuizInput{Title: "Same", Description: "d", OwnerID: other.ID.String()})
	require.NoError(t, err)

	q2, err := s.CreateQuiz(ctx, CreateQuizInput{Title: "Other", Description: "d", OwnerID: teacher.ID.String()})
	require.NoError(t, err)

	_, err = s.UpdateQuiz(ctx, UpdateQuizInput{ID: q2.ID.String(), OwnerID: teacher.ID.String(), Title: strPtr("Same")})
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestService_Quizzes_UnknownOwnerOnCreate(t *testing.T) {
	s, _, _, _ := newServiceWithMemory(t)

	_, err := s.CreateQuiz(context.Background(), CreateQuizInput{Title: "t", Description: "d", OwnerID: uuid.NewString()})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_Quizzes_PartialUpdate(t *testing.T) {
	s, _, _, teacher := newServiceWithMemory(t)
	ctx := context.Background()
	owner := teacher.ID.String()

	q, err := s.CreateQuiz(ctx, CreateQuizInput{Title: "Old", Description: "Desc", OwnerID: owner})
	require.NoError(t, err)

	got, err := s.UpdateQuiz(ctx, UpdateQuizInput{ID: q.ID.String(), OwnerID: owner, Title: strPtr(" New ")})
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
	require.Equal(t, "Desc", got.Description)
	require.Equal(t, q.ID, got.ID)
	require.Equal(t, q.TeacherID, got.TeacherID)
	require.True(t, q.CreatedAt.Equal(got.CreatedAt))

	got, err = s.UpdateQuiz(ctx, UpdateQuizInput{ID: q.ID.String(), OwnerID: owner, Description: strPtr("D2")})
	require.NoError(t, err)
	require.Equal(t, "New", got.Title)
	require.Equal(t, "D2", got.Description)

	// Без полей квиз возвращается как есть.
	same, err := s.UpdateQuiz(ctx, UpdateQuizInput{ID: q.ID.String(), OwnerID: owner})
	require.NoError(t, err)
	require.Equal(t, *got, *same)
}

func TestService_Quizzes_DeleteThenGone(t *testing.T) {
	s, _, _, teacher := newServiceWithMemory(t)
	ctx := context.Background()
	owner := teacher.ID.String()

	q, err := s.CreateQuiz(ctx, CreateQuizInput{Title: "T", Description: "D", OwnerID: owner})
	require.NoError(t, err)

	require.NoError(t, s.DeleteQuiz(ctx, q.ID.String(), owner))

	_, err = s.QuizByID(ctx, q.ID.String(), owner)
	require.ErrorIs(t, err, ErrNotFound)

	require.ErrorIs(t, s.DeleteQuiz(ctx, q.ID.String(), owner), ErrNotFound)

	list, err := s.ListQuizzes(ctx, owner)
	require.NoError(t, err)
	require.Empty(t, list)
}
