package tasks

import (
	"errors"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// responseSchemaJSON describes the /tasks/user response shape that decoding
// relies on. Unknown keys are allowed; known keys must have the listed types.
const responseSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["data"],
  "properties": {
    "data": {
      "type": "array",
      "items": { "$ref": "#/$defs/task" }
    }
  },
  "$defs": {
    "task": {
      "type": "object",
      "properties": {
        "id":        { "type": "string" },
        "text":      { "type": "string" },
        "frequency": { "type": "string" },
        "type":      { "type": "string" },
        "notes":     { "type": "string" },
        "everyX":    { "type": "integer" },
        "completed": { "type": "boolean" },
        "isDue":     { "type": "boolean" },
        "nextDue": {
          "type": "array",
          "items": { "type": "string" }
        },
        "repeat": {
          "type": "object",
          "additionalProperties": { "type": "boolean" }
        },
        "checklist": {
          "type": "array",
          "items": { "$ref": "#/$defs/checklistItem" }
        }
      }
    },
    "checklistItem": {
      "type": "object",
      "required": ["completed", "text", "id"],
      "properties": {
        "completed": { "type": "boolean" },
        "text":      { "type": "string" },
        "id":        { "type": "string" }
      }
    }
  }
}`

var responseSchema = jsonschema.MustCompileString("habitask://tasks-user.json", responseSchemaJSON)

// schemaError converts a validation failure into a DecodeError for the
// first violation, ordered by locationLess.
func schemaError(err error) *DecodeError {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &DecodeError{Message: err.Error(), Err: err}
	}
	leaf := firstLeaf(ve)
	return &DecodeError{
		Path:    pointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
		Err:     err,
	}
}

// taskFieldOrder and checklistFieldOrder rank keys the way decodeTask and
// decodeChecklistItem visit them.
var (
	taskFieldOrder = fieldRanks("id", "text", "frequency", "type", "notes",
		"everyX", "completed", "isDue", "nextDue", "repeat", "checklist")
	checklistFieldOrder = fieldRanks("completed", "text", "id")
)

func fieldRanks(keys ...string) map[string]int {
	m := make(map[string]int, len(keys))
	for i, k := range keys {
		m[k] = i
	}
	return m
}

// firstLeaf returns the leaf cause at the earliest instance location.
// The validator does not report sibling causes in a stable order.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	var best *jsonschema.ValidationError
	var walk func(*jsonschema.ValidationError)
	walk = func(v *jsonschema.ValidationError) {
		if len(v.Causes) == 0 {
			if best == nil || leafLess(v, best) {
				best = v
			}
			return
		}
		for _, c := range v.Causes {
			walk(c)
		}
	}
	walk(ve)
	return best
}

func leafLess(a, b *jsonschema.ValidationError) bool {
	if a.InstanceLocation != b.InstanceLocation {
		return locationLess(pointerTokens(a.InstanceLocation), pointerTokens(b.InstanceLocation))
	}
	if a.KeywordLocation != b.KeywordLocation {
		return a.KeywordLocation < b.KeywordLocation
	}
	return a.Message < b.Message
}

// locationLess orders JSON pointer tokens: array indexes numerically,
// task and checklist keys in decode order, other keys alphabetically.
// A location sorts before the locations nested under it.
func locationLess(a, b []string) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		ai, aerr := strconv.Atoi(a[i])
		bi, berr := strconv.Atoi(b[i])
		if aerr == nil && berr == nil {
			return ai < bi
		}
		ranks := taskFieldOrder
		if i >= 2 && a[i-2] == "checklist" {
			ranks = checklistFieldOrder
		}
		ar, aok := ranks[a[i]]
		br, bok := ranks[b[i]]
		switch {
		case aok && bok:
			return ar < br
		case aok != bok:
			return aok
		default:
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

func pointerTokens(ptr string) []string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return nil
	}
	toks := strings.Split(ptr, "/")
	for i, tok := range toks {
		tok = strings.ReplaceAll(tok, "~1", "/")
		toks[i] = strings.ReplaceAll(tok, "~0", "~")
	}
	return toks
}

// pointerToPath turns a JSON pointer like /data/0/checklist/1/id into
// data[0].checklist[1].id.
func pointerToPath(ptr string) string {
	var b strings.Builder
	for _, tok := range pointerTokens(ptr) {
		if _, err := strconv.Atoi(tok); err == nil {
			b.WriteString("[" + tok + "]")
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(tok)
	}
	return b.String()
}
