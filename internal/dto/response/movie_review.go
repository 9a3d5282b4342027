package response

import (
	"movie-review/internal/data/entity"
)

type MovieReviewResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Comments  string `json:"comments"`
	Editing   bool   `json:"editing"`
}

type FieldResponse struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Error     string `json:"error,omitempty"`
	InputType string `json:"input_type"`
	Required  bool   `json:"required"`
	Multiline bool   `json:"multiline"`
}

type FormResponse struct {
	Fields []FieldResponse `json:"fields"`
}

// Field returns the named field, or a zero value when absent.
func (f FormResponse) Field(name string) FieldResponse {
	for _, field := range f.Fields {
		if field.Name == name {
			return field
		}
	}
	return FieldResponse{}
}

type DialogResponse struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Open    bool   `json:"open"`
}

type CreatePageResponse struct {
	Form   FormResponse   `json:"form"`
	Dialog DialogResponse `json:"dialog"`
}

type EditResponse struct {
	ID   string       `json:"id"`
	Form FormResponse `json:"form"`
}

type ReadPageResponse struct {
	Reviews PaginatedResponse[MovieReviewResponse] `json:"reviews"`
	Edit    *EditResponse                          `json:"edit,omitempty"`
	Dialog  DialogResponse                         `json:"dialog"`
}

var fieldLabels = map[string]string{
	entity.FieldFirstName: "First Name",
	entity.FieldLastName:  "Last Name",
	entity.FieldEmail:     "Email",
	entity.FieldComments:  "Comments",
}

// ReviewToResponse converts a record for the table.
func ReviewToResponse(review entity.MovieReview, editing bool) MovieReviewResponse {
	return MovieReviewResponse{
		ID:        review.ID.String(),
		FirstName: review.FirstName,
		LastName:  review.LastName,
		Email:     review.Email,
		Comments:  review.Comments,
		Editing:   editing,
	}
}

// FormToResponse lays the form out in entity.ReviewFields order.
func FormToResponse(values, errs map[string]string) FormResponse {
	fields := make([]FieldResponse, 0, len(entity.ReviewFields))
	for _, name := range entity.ReviewFields {
		field := FieldResponse{
			Name:      name,
			Label:     fieldLabels[name],
			Value:     values[name],
			Error:     errs[name],
			InputType: "text",
			Required:  name != entity.FieldComments,
		}
		switch name {
		case entity.FieldEmail:
			field.InputType = "email"
		case entity.FieldComments:
			field.Multiline = true
		}
		fields = append(fields, field)
	}
	return FormResponse{Fields: fields}
}

func DialogToResponse(d entity.StatusDialog) DialogResponse {
	return DialogResponse{
		Title:   d.Title,
		Message: d.Message,
		Open:    d.Open,
	}
}
