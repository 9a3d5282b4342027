package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Form field names, shared by the backend payloads and the HTML forms.
const (
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldEmail     = "email"
	FieldComments  = "comments"
)

// ReviewFields lists the editable fields in display order.
var ReviewFields = []string{FieldFirstName, FieldLastName, FieldEmail, FieldComments}

// ReviewID is the backend assigned identifier. The backend may send it as a
// JSON string or number; it is written back in the form it arrived in.
type ReviewID struct {
	value   string
	numeric bool
}

func NewReviewID(value string) ReviewID {
	return ReviewID{value: value}
}

func (id ReviewID) String() string {
	return id.value
}

func (id ReviewID) IsZero() bool {
	return id.value == ""
}

func (id ReviewID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ReviewID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ReviewID{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode review id: %w", err)
		}
		*id = ReviewID{value: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("review id must be a string or number: %w", err)
	}
	*id = ReviewID{value: n.String(), numeric: true}
	return nil
}

type MovieReview struct {
	ID        ReviewID `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Comments  string   `json:"comments"`
}

// Field returns the value of one of the ReviewFields.
func (m MovieReview) Field(name string) string {
	switch name {
	case FieldFirstName:
		return m.FirstName
	case FieldLastName:
		return m.LastName
	case FieldEmail:
		return m.Email
	case FieldComments:
		return m.Comments
	}
	return ""
}
