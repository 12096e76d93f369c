package showcase

import (
	"sort"

	"github.com/google/uuid"
)

// Kind is the JSON type a declared payload field must carry.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Rule declares the expected shape of one payload field. Required implies
// the field must be present and, for strings, non-empty.
type Rule struct {
	Kind     Kind
	Required bool
}

// Schema is the declared field-shape for one operation. Only declared keys
// are checked; keys absent from the schema pass through untouched.
type Schema map[string]Rule

// CreateSchema is the shape a create payload must satisfy.
var CreateSchema = Schema{
	"title":           {Kind: KindString, Required: true},
	"body":            {Kind: KindString, Required: true},
	"taggedContest":   {Kind: KindString},
	"taggedContestID": {Kind: KindString},
	"videoURL":        {Kind: KindString},
	"github":          {Kind: KindString},
	"team":            {Kind: KindString, Required: true},
	"status":          {Kind: KindString, Required: true},
	"stars":           {Kind: KindNumber},
	"starredBy":       {Kind: KindArray},
}

// UpdateSchema is the shape an update payload must satisfy. Every field is
// optional; present fields are still type-checked.
var UpdateSchema = Schema{
	"title":           {Kind: KindString},
	"body":            {Kind: KindString},
	"taggedContest":   {Kind: KindString},
	"taggedContestID": {Kind: KindString},
	"videoURL":        {Kind: KindString},
	"github":          {Kind: KindString},
	"team":            {Kind: KindString},
	"status":          {Kind: KindString},
	"prizedPlace":     {Kind: KindString},
	"stars":           {Kind: KindNumber},
	"starredBy":       {Kind: KindArray},
}

// serverControlled keys are never accepted from a payload, declared or not.
// They are assigned by the service and excluded from Extra passthrough.
var serverControlled = map[string]struct{}{
	"id":        {},
	"owner":     {},
	"createdAt": {},
	"updatedAt": {},
}

// Validate checks payload against the schema and returns nil when it
// conforms. Failures enumerate every offending field, sorted by name.
func (s Schema) Validate(payload map[string]any) *ValidationError {
	var verr ValidationError

	for field, rule := range s {
		value, present := payload[field]
		if !present {
			if rule.Required {
				verr.Add(field, "is required")
			}
			continue
		}
		switch rule.Kind {
		case KindString:
			str, ok := value.(string)
			if !ok {
				verr.Add(field, "must be a string")
			} else if rule.Required && str == "" {
				verr.Add(field, "must not be empty")
			}
		case KindNumber:
			if _, ok := value.(float64); !ok {
				verr.Add(field, "must be a number")
			}
		case KindArray:
			if _, ok := value.([]any); !ok {
				verr.Add(field, "must be an array")
			}
		}
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	sort.Slice(verr.Fields, func(i, j int) bool {
		return verr.Fields[i].Field < verr.Fields[j].Field
	})
	return &verr
}

// CreateRequestFromPayload builds a create request from a payload that
// already passed CreateSchema. Declared string fields map onto the request;
// server-controlled keys and the server-assigned star fields are dropped;
// everything else is carried in Extra.
func CreateRequestFromPayload(payload map[string]any) CreateContentRequest {
	req := CreateContentRequest{
		Title:           stringField(payload, "title"),
		Body:            stringField(payload, "body"),
		TaggedContest:   stringField(payload, "taggedContest"),
		TaggedContestID: stringField(payload, "taggedContestID"),
		VideoURL:        stringField(payload, "videoURL"),
		Github:          stringField(payload, "github"),
		Team:            stringField(payload, "team"),
		Status:          stringField(payload, "status"),
	}
	req.Extra = extraFields(payload, CreateSchema)
	return req
}

// UpdateRequestFromPayload builds a partial update from a payload that
// already passed UpdateSchema. starredBy entries must be well-formed ids;
// offending entries are reported as a validation failure.
func UpdateRequestFromPayload(payload map[string]any) (UpdateContentRequest, *ValidationError) {
	req := UpdateContentRequest{
		Title:           stringPtrField(payload, "title"),
		Body:            stringPtrField(payload, "body"),
		TaggedContest:   stringPtrField(payload, "taggedContest"),
		TaggedContestID: stringPtrField(payload, "taggedContestID"),
		VideoURL:        stringPtrField(payload, "videoURL"),
		Github:          stringPtrField(payload, "github"),
		Team:            stringPtrField(payload, "team"),
		Status:          stringPtrField(payload, "status"),
		PrizedPlace:     stringPtrField(payload, "prizedPlace"),
	}

	if value, ok := payload["stars"].(float64); ok {
		stars := int(value)
		req.Stars = &stars
	}

	if raw, ok := payload["starredBy"].([]any); ok {
		starred := make([]uuid.UUID, 0, len(raw))
		var verr ValidationError
		for _, entry := range raw {
			str, ok := entry.(string)
			if !ok {
				verr.Add("starredBy", "entries must be id strings")
				break
			}
			id, err := uuid.Parse(str)
			if err != nil {
				verr.Add("starredBy", "entries must be well-formed ids")
				break
			}
			starred = append(starred, id)
		}
		if len(verr.Fields) > 0 {
			return UpdateContentRequest{}, &verr
		}
		req.StarredBy = starred
	}

	req.Extra = extraFields(payload, UpdateSchema)
	return req, nil
}

func stringField(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}

func stringPtrField(payload map[string]any, key string) *string {
	value, ok := payload[key].(string)
	if !ok {
		return nil
	}
	return &value
}

func extraFields(payload map[string]any, schema Schema) map[string]any {
	var extra map[string]any
	for key, value := range payload {
		if _, declared := schema[key]; declared {
			continue
		}
		if _, reserved := serverControlled[key]; reserved {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[key] = value
	}
	return extra
}
