package entity

import (
	"movie-review/pkg/utils"
)

// ListState is the Read screen: the full fetched collection, the current
// 1-indexed page and at most one row in inline edit.
type ListState struct {
	Movies    []MovieReview
	Page      int
	PageSize  int
	EditingID *ReviewID
	Edit      *FormState
	Dialog    StatusDialog
}

func NewListState(pageSize int, dialogTitle string) *ListState {
	return &ListState{
		Page:     1,
		PageSize: pageSize,
		Edit:     NewFormState(ReviewFields...),
		Dialog:   StatusDialog{Title: dialogTitle},
	}
}

// Reset returns the screen to its freshly mounted state. The last fetched
// collection is kept until the next fetch replaces it.
func (l *ListState) Reset() {
	l.Page = 1
	l.CancelEdit()
	l.Dialog.Close()
	l.Dialog.Message = ""
}

func (l *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	l.Page = page
}

// Visible is the window of Movies shown on the current page.
func (l *ListState) Visible() []MovieReview {
	start, end := utils.PageBounds(len(l.Movies), l.Page, l.PageSize)
	out := make([]MovieReview, end-start)
	copy(out, l.Movies[start:end])
	return out
}

func (l *ListState) TotalPages() int {
	return utils.CalculateTotalPages(int64(len(l.Movies)), l.PageSize)
}

// Find looks a row up by its identifier text.
func (l *ListState) Find(id string) (MovieReview, bool) {
	for _, m := range l.Movies {
		if m.ID.String() == id {
			return m, true
		}
	}
	return MovieReview{}, false
}

// BeginEdit puts m in edit mode, seeding the edit copy from its fields. Any
// row already in edit mode leaves it.
func (l *ListState) BeginEdit(m MovieReview) {
	id := m.ID
	l.EditingID = &id
	for _, field := range ReviewFields {
		l.Edit.Set(field, m.Field(field), "")
	}
}

func (l *ListState) CancelEdit() {
	l.EditingID = nil
	l.Edit.Reset()
}

func (l *ListState) IsEditing(id ReviewID) bool {
	return l.EditingID != nil && *l.EditingID == id
}

// EditedRecord is the edit copy as a record keyed by the editing id.
func (l *ListState) EditedRecord() (MovieReview, bool) {
	if l.EditingID == nil {
		return MovieReview{}, false
	}
	return MovieReview{
		ID:        *l.EditingID,
		FirstName: l.Edit.Value(FieldFirstName),
		LastName:  l.Edit.Value(FieldLastName),
		Email:     l.Edit.Value(FieldEmail),
		Comments:  l.Edit.Value(FieldComments),
	}, true
}
