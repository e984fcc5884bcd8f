package tasks

import "encoding/json"

type wireTask struct {
	ID        *string             `json:"id,omitempty"`
	Text      *string             `json:"text,omitempty"`
	Frequency *string             `json:"frequency,omitempty"`
	Type      *string             `json:"type,omitempty"`
	Notes     *string             `json:"notes,omitempty"`
	Repeat    map[string]bool     `json:"repeat,omitempty"`
	EveryX    *int                `json:"everyX,omitempty"`
	NextDue   *[]string           `json:"nextDue,omitempty"`
	Completed *bool               `json:"completed,omitempty"`
	IsDue     *bool               `json:"isDue,omitempty"`
	Checklist []TaskCheckListItem `json:"checklist,omitempty"`
}

// MarshalJSON emits only the fields that are present, using the API's keys.
// An empty repeat mask or checklist is omitted.
func (t Task) MarshalJSON() ([]byte, error) {
	w := wireTask{
		ID:        t.ID,
		Text:      t.Text,
		Frequency: t.Frequency,
		Type:      t.Type,
		Notes:     t.Notes,
		Repeat:    t.Repeat.Days,
		EveryX:    t.EveryX,
		Completed: t.Completed,
		IsDue:     t.IsDue,
		Checklist: t.Checklist.Items,
	}
	if t.NextDue != nil {
		w.NextDue = &t.NextDue
	}
	return json.Marshal(w)
}

// MarshalJSON emits the {"data": [...]} envelope accepted by Decode.
func (ts Tasks) MarshalJSON() ([]byte, error) {
	items := ts.items
	if items == nil {
		items = []Task{}
	}
	return json.Marshal(struct {
		Data []Task `json:"data"`
	}{Data: items})
}
