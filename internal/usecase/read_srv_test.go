package usecase

import (
	"context"
	"testing"

	"movie-review/internal/data/entity"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRead(t *testing.T, fake *fakeReviews, strict bool) (ReadService, string) {
	t.Helper()
	view := utils.ViewConfig{PageSize: 3, StrictValidation: strict}
	repo, sid := newTestRepository(t, fake, view)
	return NewReadService(repo, view, zap.NewNop()), sid
}

func rowIDs(page *response.ReadPageResponse) []string {
	ids := make([]string, 0, len(page.Reviews.Data))
	for _, row := range page.Reviews.Data {
		ids = append(ids, row.ID)
	}
	return ids
}

func TestMountShowsFirstPage(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(7)}
	svc, sid := newRead(t, fake, false)

	page, err := svc.Mount(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, []string{"m0", "m1", "m2"}, rowIDs(page))
	assert.Equal(t, 1, page.Reviews.Pagination.Page)
	assert.Equal(t, 3, page.Reviews.Pagination.TotalPages)
	assert.Equal(t, int64(7), page.Reviews.Pagination.Total)
	assert.Nil(t, page.Edit)
	assert.False(t, page.Dialog.Open)
}

func TestSetPageRefetchesAndSlices(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(7)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.SetPage(ctx, sid, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"m6"}, rowIDs(page))
	assert.Equal(t, 3, page.Reviews.Pagination.Page)
	assert.Equal(t, 2, fake.findCalls)

	page, err = svc.SetPage(ctx, sid, 9)
	require.NoError(t, err)
	assert.Empty(t, page.Reviews.Data)
	assert.Equal(t, 3, page.Reviews.Pagination.TotalPages)
}

func TestRefetchWithoutMutationIsStable(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(5)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	first, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	second, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, rowIDs(first), rowIDs(second))
	assert.Equal(t, first.Reviews.Pagination, second.Reviews.Pagination)

	again, err := svc.SetPage(ctx, sid, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Reviews.Data, again.Reviews.Data)
	assert.Equal(t, first.Reviews.Pagination, again.Reviews.Pagination)
	assert.Equal(t, 3, fake.findCalls)
}

func TestMountEmptyCollection(t *testing.T) {
	svc, sid := newRead(t, &fakeReviews{}, false)

	page, err := svc.Mount(context.Background(), sid)
	require.NoError(t, err)
	assert.Empty(t, page.Reviews.Data)
	assert.Equal(t, 0, page.Reviews.Pagination.TotalPages)
}

func TestFetchFailureKeepsPreviousList(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(4)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	fake.findErr = errTransport
	page, err := svc.SetPage(ctx, sid, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"m3"}, rowIDs(page))
	assert.False(t, page.Dialog.Open)
}

func TestBeginEditSeedsCopy(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.BeginEdit(ctx, sid, "m1")
	require.NoError(t, err)
	require.NotNil(t, page.Edit)
	assert.Equal(t, "m1", page.Edit.ID)
	assert.Equal(t, "NumberB", page.Edit.Form.Field(entity.FieldLastName).Value)
	assert.True(t, page.Reviews.Data[1].Editing)
	assert.False(t, page.Reviews.Data[0].Editing)

	// only one row edits at a time
	page, err = svc.BeginEdit(ctx, sid, "m2")
	require.NoError(t, err)
	assert.Equal(t, "m2", page.Edit.ID)
	assert.False(t, page.Reviews.Data[1].Editing)

	_, err = svc.BeginEdit(ctx, sid, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestChangeEditFieldOnlyWhileEditing(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	_, err = svc.ChangeEditField(ctx, sid, &request.FieldChangeRequest{Field: entity.FieldFirstName, Value: "Ann"})
	require.Error(t, err)

	_, err = svc.BeginEdit(ctx, sid, "m0")
	require.NoError(t, err)

	field, err := svc.ChangeEditField(ctx, sid, &request.FieldChangeRequest{Field: entity.FieldFirstName, Value: "Ann2"})
	require.NoError(t, err)
	assert.Equal(t, "Ann2", field.Value)
	assert.Equal(t, "Only alphabets are allowed", field.Error)

	// the table row keeps the fetched value until saved
	page, err := svc.CancelEdit(ctx, sid)
	require.NoError(t, err)
	assert.Nil(t, page.Edit)
	assert.Equal(t, "Reviewer", page.Reviews.Data[0].FirstName)
}

func TestUpdateSendsRecordAndRefetches(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	_, err = svc.BeginEdit(ctx, sid, "m1")
	require.NoError(t, err)

	page, err := svc.Update(ctx, sid, "m1", &request.MovieReviewRequest{
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "jane@example.com",
		Comments:  "Even better",
	})
	require.NoError(t, err)

	require.Len(t, fake.updated, 1)
	assert.Equal(t, entity.MovieReview{
		ID:        entity.NewReviewID("m1"),
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "jane@example.com",
		Comments:  "Even better",
	}, fake.updated[0])

	assert.Equal(t, 2, fake.findCalls)
	assert.Nil(t, page.Edit)
	assert.Equal(t, "Jane", page.Reviews.Data[1].FirstName)
	assert.True(t, page.Dialog.Open)
	assert.Equal(t, ReadDialogTitle, page.Dialog.Title)
	assert.Equal(t, MsgUpdated, page.Dialog.Message)
}

func TestUpdateWithoutPriorEdit(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.Update(ctx, sid, "m2", &request.MovieReviewRequest{FirstName: "Kim", LastName: "Lee", Email: "k@x.com"})
	require.NoError(t, err)
	require.Len(t, fake.updated, 1)
	assert.Equal(t, "m2", fake.updated[0].ID.String())
	assert.Equal(t, MsgUpdated, page.Dialog.Message)

	_, err = svc.Update(ctx, sid, "gone", &request.MovieReviewRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateFailureKeepsEditOpen(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3), updateErr: errStatus}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	_, err = svc.BeginEdit(ctx, sid, "m0")
	require.NoError(t, err)

	page, err := svc.Update(ctx, sid, "m0", &request.MovieReviewRequest{FirstName: "Jane", LastName: "Roe", Email: "j@x.com"})
	require.NoError(t, err)

	assert.Equal(t, 1, fake.findCalls)
	require.NotNil(t, page.Edit)
	assert.Equal(t, "Jane", page.Edit.Form.Field(entity.FieldFirstName).Value)
	assert.Equal(t, "Reviewer", page.Reviews.Data[0].FirstName)
	assert.Equal(t, MsgUpdateFailed, page.Dialog.Message)
}

func TestUpdateStrictValidationBlocks(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, true)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.Update(ctx, sid, "m0", &request.MovieReviewRequest{FirstName: "", LastName: "Roe", Email: "j@x.com"})
	require.NoError(t, err)

	assert.Empty(t, fake.updated)
	require.NotNil(t, page.Edit)
	assert.Equal(t, "This field is required", page.Edit.Form.Field(entity.FieldFirstName).Error)
	assert.False(t, page.Dialog.Open)
}

func TestRemoveRefetches(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(4)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.Remove(ctx, sid, "m1")
	require.NoError(t, err)

	assert.Equal(t, []entity.ReviewID{entity.NewReviewID("m1")}, fake.deleted)
	assert.Equal(t, []string{"m0", "m2", "m3"}, rowIDs(page))
	assert.Equal(t, 1, page.Reviews.Pagination.TotalPages)
	assert.Equal(t, MsgDeleted, page.Dialog.Message)
}

func TestRemoveFailureKeepsRow(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3), deleteErr: errStatus}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)

	page, err := svc.Remove(ctx, sid, "m1")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.findCalls)
	assert.Equal(t, []string{"m0", "m1", "m2"}, rowIDs(page))
	assert.True(t, page.Dialog.Open)
	assert.Equal(t, MsgDeleteFailed, page.Dialog.Message)
}

func TestRemoveEditedRowCancelsEdit(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	_, err = svc.BeginEdit(ctx, sid, "m2")
	require.NoError(t, err)

	page, err := svc.Remove(ctx, sid, "m2")
	require.NoError(t, err)
	assert.Nil(t, page.Edit)
}

func TestRefetchDropsVanishedEdit(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(3)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	_, err = svc.BeginEdit(ctx, sid, "m0")
	require.NoError(t, err)

	fake.remove("m0")
	page, err := svc.SetPage(ctx, sid, 1)
	require.NoError(t, err)
	assert.Nil(t, page.Edit)
	assert.Equal(t, []string{"m1", "m2"}, rowIDs(page))
}

func TestReadCloseDialogAndRemount(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(5)}
	svc, sid := newRead(t, fake, false)
	ctx := context.Background()

	_, err := svc.Mount(ctx, sid)
	require.NoError(t, err)
	_, err = svc.SetPage(ctx, sid, 2)
	require.NoError(t, err)
	_, err = svc.Remove(ctx, sid, "m4")
	require.NoError(t, err)

	page, err := svc.CloseDialog(ctx, sid)
	require.NoError(t, err)
	assert.False(t, page.Dialog.Open)
	assert.Equal(t, MsgDeleted, page.Dialog.Message)
	assert.Equal(t, 2, page.Reviews.Pagination.Page)

	page, err = svc.Mount(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Reviews.Pagination.Page)
	assert.Empty(t, page.Dialog.Message)
}

func TestSessionsAreIndependent(t *testing.T) {
	fake := &fakeReviews{movies: seedReviews(5)}
	view := utils.ViewConfig{PageSize: 3}
	repo, first := newTestRepository(t, fake, view)
	svc := NewReadService(repo, view, zap.NewNop())
	ctx := context.Background()

	other, err := repo.Session.Create(ctx)
	require.NoError(t, err)
	second := other.Token.String()

	_, err = svc.SetPage(ctx, first, 2)
	require.NoError(t, err)

	page, err := svc.Mount(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Reviews.Pagination.Page)

	page, err = svc.CloseDialog(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Reviews.Pagination.Page)
}
