package validation

import (
	"fmt"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// Result is the outcome of validating a fields mapping. It is Valid
// exactly when no issues were collected.
type Result struct {
	Issues []models.Issue
}

// Valid reports whether validation passed.
func (r Result) Valid() bool {
	return len(r.Issues) == 0
}

// FieldSpec declares the constraints for one field.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
	Rules    []Rule
}

// Refinement is a cross-field check. It only runs when every field it
// names is part of the validated subset, so step-scoped validation
// never trips on fields from other steps.
type Refinement struct {
	Fields []string
	Check  func(fields models.Fields) []models.Issue
}

// Schema describes all constraints for one lead kind. Validation is a
// pure function over its inputs; a Schema is safe for concurrent use.
type Schema struct {
	Fields      []FieldSpec
	Refinements []Refinement
}

// Validate checks every declared field plus all refinements.
func (s *Schema) Validate(fields models.Fields) Result {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return s.ValidateSubset(fields, names)
}

// ValidateSubset checks only the named fields, plus any refinement
// whose fields are all within the subset.
func (s *Schema) ValidateSubset(fields models.Fields, names []string) Result {
	inSubset := make(map[string]bool, len(names))
	for _, n := range names {
		inSubset[n] = true
	}

	var res Result
	for _, spec := range s.Fields {
		if !inSubset[spec.Name] {
			continue
		}
		value := fields[spec.Name]
		if value == "" {
			if spec.Required {
				res.Issues = append(res.Issues, models.Issue{
					Field:   spec.Name,
					Message: fmt.Sprintf("%s is required", spec.Label),
				})
			}
			continue
		}
		for _, rule := range spec.Rules {
			if msg := rule(value); msg != "" {
				res.Issues = append(res.Issues, models.Issue{Field: spec.Name, Message: msg})
				break
			}
		}
	}

	for _, ref := range s.Refinements {
		covered := true
		for _, f := range ref.Fields {
			if !inSubset[f] {
				covered = false
				break
			}
		}
		if covered {
			res.Issues = append(res.Issues, ref.Check(fields)...)
		}
	}

	return res
}

// Field returns the spec for a named field, or nil.
func (s *Schema) Field(name string) *FieldSpec {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}

// Has reports whether the schema declares the named field.
func (s *Schema) Has(name string) bool {
	return s.Field(name) != nil
}

// DocumentNumberRefinement returns the loan-style cross-field check:
// when typeField is set, numberField becomes required and must match
// the pattern registered for the chosen document type.
func DocumentNumberRefinement(typeField, numberField string) Refinement {
	return Refinement{
		Fields: []string{typeField, numberField},
		Check: func(fields models.Fields) []models.Issue {
			docType := fields[typeField]
			if docType == "" {
				return nil
			}
			number := fields[numberField]
			if number == "" {
				return []models.Issue{{
					Field:   numberField,
					Message: fmt.Sprintf("document number is required when %s is set", typeField),
				}}
			}
			switch docType {
			case "aadhaar":
				if !aadhaarRe.MatchString(number) {
					return []models.Issue{{Field: numberField, Message: "aadhaar number must be 12 digits"}}
				}
			case "pan":
				if !panRe.MatchString(number) {
					return []models.Issue{{Field: numberField, Message: "PAN must be 10 uppercase alphanumeric characters"}}
				}
			}
			return nil
		},
	}
}
