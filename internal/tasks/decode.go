package tasks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
)

// DecodeError reports a mismatch between the response and the expected shape.
type DecodeError struct {
	// Path locates the offending value, e.g. data[2].checklist[0].id.
	// Empty means the document root.
	Path    string
	Message string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return "decode tasks: " + e.Message
	}
	return "decode tasks: " + e.Path + ": " + e.Message
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode maps a /tasks/user response document into Tasks.
//
// The document must be an object with a "data" array. Decoding is
// all-or-nothing: on any error the returned Tasks is empty.
func Decode(raw json.RawMessage) (Tasks, error) {
	doc, err := parse(raw)
	if err != nil {
		return Tasks{}, &DecodeError{Message: "invalid JSON", Err: err}
	}

	if err := responseSchema.Validate(doc); err != nil {
		return Tasks{}, schemaError(err)
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return Tasks{}, typeError("", "object", doc)
	}
	data, ok := root["data"].([]any)
	if !ok {
		return Tasks{}, typeError("data", "array", root["data"])
	}

	items := make([]Task, 0, len(data))
	for i, v := range data {
		task, err := decodeTask(fmt.Sprintf("data[%d]", i), v)
		if err != nil {
			return Tasks{}, err
		}
		items = append(items, task)
	}
	return Tasks{items: items}, nil
}

func parse(raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

// decodeTask maps one schema-validated task. Its type checks repeat the
// schema's and only fire if the two drift apart.
func decodeTask(path string, v any) (Task, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return Task{}, typeError(path, "object", v)
	}

	var (
		t   Task
		err error
	)
	if t.ID, err = optional[string](obj, path, "id"); err != nil {
		return Task{}, err
	}
	if t.Text, err = optional[string](obj, path, "text"); err != nil {
		return Task{}, err
	}
	if t.Frequency, err = optional[string](obj, path, "frequency"); err != nil {
		return Task{}, err
	}
	if t.Type, err = optional[string](obj, path, "type"); err != nil {
		return Task{}, err
	}
	if t.Notes, err = optional[string](obj, path, "notes"); err != nil {
		return Task{}, err
	}
	if t.EveryX, err = optionalInt(obj, path, "everyX"); err != nil {
		return Task{}, err
	}
	if t.Completed, err = optional[bool](obj, path, "completed"); err != nil {
		return Task{}, err
	}
	if t.IsDue, err = optional[bool](obj, path, "isDue"); err != nil {
		return Task{}, err
	}
	if t.NextDue, err = optionalStrings(obj, path, "nextDue"); err != nil {
		return Task{}, err
	}
	if t.Repeat, err = decodeRepeat(obj, path); err != nil {
		return Task{}, err
	}
	if t.Checklist, err = decodeChecklist(obj, path); err != nil {
		return Task{}, err
	}
	return t, nil
}

// decodeRepeat yields an empty mask when "repeat" is absent.
func decodeRepeat(obj map[string]any, path string) (TaskRepeat, error) {
	r := TaskRepeat{Days: map[string]bool{}}
	v, ok := obj["repeat"]
	if !ok {
		return r, nil
	}
	p := join(path, "repeat")
	m, ok := v.(map[string]any)
	if !ok {
		return TaskRepeat{}, typeError(p, "object", v)
	}
	for day, on := range m {
		b, ok := on.(bool)
		if !ok {
			return TaskRepeat{}, typeError(join(p, day), "boolean", on)
		}
		r.Days[day] = b
	}
	return r, nil
}

// decodeChecklist yields an empty list when "checklist" is absent.
func decodeChecklist(obj map[string]any, path string) (TaskCheckList, error) {
	c := TaskCheckList{Items: []TaskCheckListItem{}}
	v, ok := obj["checklist"]
	if !ok {
		return c, nil
	}
	p := join(path, "checklist")
	arr, ok := v.([]any)
	if !ok {
		return TaskCheckList{}, typeError(p, "array", v)
	}
	for i, e := range arr {
		item, err := decodeChecklistItem(fmt.Sprintf("%s[%d]", p, i), e)
		if err != nil {
			return TaskCheckList{}, err
		}
		c.Items = append(c.Items, item)
	}
	return c, nil
}

func decodeChecklistItem(path string, v any) (TaskCheckListItem, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return TaskCheckListItem{}, typeError(path, "object", v)
	}
	completed, err := required[bool](obj, path, "completed")
	if err != nil {
		return TaskCheckListItem{}, err
	}
	text, err := required[string](obj, path, "text")
	if err != nil {
		return TaskCheckListItem{}, err
	}
	id, err := required[string](obj, path, "id")
	if err != nil {
		return TaskCheckListItem{}, err
	}
	return TaskCheckListItem{Completed: completed, Text: text, ID: id}, nil
}

// optional returns nil for an absent key and an error for a present key
// of the wrong JSON type.
func optional[T string | bool](obj map[string]any, path, key string) (*T, error) {
	v, ok := obj[key]
	if !ok {
		return nil, nil
	}
	t, ok := v.(T)
	if !ok {
		var zero T
		return nil, typeError(join(path, key), jsonTypeName(zero), v)
	}
	return &t, nil
}

func required[T string | bool](obj map[string]any, path, key string) (T, error) {
	var zero T
	if _, ok := obj[key]; !ok {
		return zero, &DecodeError{Path: path, Message: fmt.Sprintf("missing required field %q", key)}
	}
	p, err := optional[T](obj, path, key)
	if err != nil {
		return zero, err
	}
	return *p, nil
}

func optionalInt(obj map[string]any, path, key string) (*int, error) {
	v, ok := obj[key]
	if !ok {
		return nil, nil
	}
	n, ok := v.(json.Number)
	if !ok {
		return nil, typeError(join(path, key), "integer", v)
	}
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return nil, outOfRange(join(path, key), n)
		}
		x := int(i)
		return &x, nil
	}
	f, err := n.Float64()
	// Overflowing literals parse as ±Inf and are caught by the range check.
	if (err != nil && !math.IsInf(f, 0)) || f != math.Trunc(f) {
		return nil, &DecodeError{Path: join(path, key), Message: "expected integer, got " + n.String()}
	}
	// float64(math.MaxInt) rounds up to 2^63, so compare against -MinInt.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return nil, outOfRange(join(path, key), n)
	}
	x := int(f)
	return &x, nil
}

func outOfRange(path string, n json.Number) *DecodeError {
	return &DecodeError{Path: path, Message: "integer out of range: " + n.String()}
}

// optionalStrings returns nil for an absent key and a non-nil slice,
// possibly empty, for a present one.
func optionalStrings(obj map[string]any, path, key string) ([]string, error) {
	v, ok := obj[key]
	if !ok {
		return nil, nil
	}
	p := join(path, key)
	arr, ok := v.([]any)
	if !ok {
		return nil, typeError(p, "array", v)
	}
	out := make([]string, 0, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, typeError(fmt.Sprintf("%s[%d]", p, i), "string", e)
		}
		out = append(out, s)
	}
	return out, nil
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func typeError(path, want string, got any) *DecodeError {
	return &DecodeError{
		Path:    path,
		Message: fmt.Sprintf("expected %s, got %s", want, jsonTypeName(got)),
	}
}

func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
