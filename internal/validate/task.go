package validate

import (
	"regexp"
	"strings"
)

var descriptionCharset = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// TaskPayload is the typed result of a valid task create/update body. Pointer
// fields distinguish "absent" from a zero value so updates can stay partial.
type TaskPayload struct {
	Description *string
	Completed   *bool
	Priority    *int
	PrioritySet bool
}

// TaskValidator validates task bodies against the description rules and the
// configured forbidden-substring policy.
type TaskValidator struct {
	forbidden []string
}

func NewTaskValidator(forbiddenWords []string) *TaskValidator {
	lowered := make([]string, 0, len(forbiddenWords))
	for _, w := range forbiddenWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			lowered = append(lowered, w)
		}
	}
	return &TaskValidator{forbidden: lowered}
}

// Create validates a task creation body. The description is required.
func (v *TaskValidator) Create(raw map[string]any) (TaskPayload, Errors) {
	return v.validate(raw, true)
}

// Update validates a partial task update body. Every field is optional; only
// keys present in raw are checked and returned.
func (v *TaskValidator) Update(raw map[string]any) (TaskPayload, Errors) {
	return v.validate(raw, false)
}

func (v *TaskValidator) validate(raw map[string]any, requireDescription bool) (TaskPayload, Errors) {
	// Normalization happens before the schema runs so length and charset
	// rules see the stored form.
	if s, ok := raw["description"].(string); ok {
		raw["description"] = NormalizeText(s)
	}

	schema := Schema{
		Fields: []Field{
			{
				Name:     "description",
				Required: requireDescription,
				Constraints: []Constraint{
					StringLength(3, 120),
					charset(),
					v.forbiddenPolicy(),
				},
			},
			{Name: "completed", Constraints: []Constraint{Boolean()}},
			{Name: "priority", Constraints: []Constraint{NullableInt()}},
		},
		CrossChecks: []CrossCheck{completedNeedsDescription(requireDescription)},
	}

	errs := schema.Validate(raw)
	if errs.Any() {
		return TaskPayload{}, errs
	}

	payload := TaskPayload{}
	if s, ok := raw["description"].(string); ok {
		payload.Description = &s
	}
	if b, ok := raw["completed"].(bool); ok {
		payload.Completed = &b
	}
	if pv, ok := raw["priority"]; ok {
		payload.PrioritySet = true
		if f, isNum := pv.(float64); isNum {
			p := int(f)
			payload.Priority = &p
		}
	}
	return payload, nil
}

func charset() Constraint {
	return func(v any) string {
		s, ok := v.(string)
		if !ok || s == "" {
			return ""
		}
		if !descriptionCharset.MatchString(s) {
			return "no special characters allowed"
		}
		return ""
	}
}

// forbiddenPolicy rejects descriptions containing any configured substring,
// case-insensitively. The message names the policy, never the matched word.
func (v *TaskValidator) forbiddenPolicy() Constraint {
	return func(value any) string {
		s, ok := value.(string)
		if !ok {
			return ""
		}
		lowered := strings.ToLower(s)
		for _, word := range v.forbidden {
			if strings.Contains(lowered, word) {
				return "description violates the forbidden word policy"
			}
		}
		return ""
	}
}

// A task cannot be completed without a description: on create that means
// completed=true with the description missing or empty, on update it means
// completed=true alongside an explicitly emptied description.
func completedNeedsDescription(create bool) CrossCheck {
	return func(raw map[string]any, errs Errors) {
		done, _ := raw["completed"].(bool)
		if !done {
			return
		}
		desc, present := raw["description"].(string)
		if (present && desc == "") || (create && !present) {
			errs.Add("completed", "a task without a description cannot be set completed")
		}
	}
}
