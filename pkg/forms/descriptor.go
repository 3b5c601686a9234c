package forms

import (
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/validation"
)

// Audience is who a notification is for.
type Audience string

// Channel is the delivery mechanism for a notification.
type Channel string

const (
	AudienceUser  Audience = "user"
	AudienceAdmin Audience = "admin"

	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
)

// ParamReferenceID is the template parameter token bound to the
// submission's reference id rather than a form field.
const ParamReferenceID = "referenceId"

// Lookup names a dependent-field recomputation backed by the catalog.
type Lookup string

const (
	LookupVariants Lookup = "variants"
	LookupDealers  Lookup = "dealers"
)

// DependentRule declares that changing Driver recomputes the option
// list stored under OptionKey and clears the fields in Resets. When
// MinLen > 0 the lookup only fires once the driver value reaches that
// length; shorter values clear the options instead.
type DependentRule struct {
	Driver    string
	OptionKey string
	Resets    []string
	MinLen    int
	Lookup    Lookup
}

// Step is one page of a wizard with the fields it collects.
type Step struct {
	Name   string
	Fields []string
}

// TemplateRef selects the provider template for one (audience, channel)
// pair and fixes the positional parameter order. Params entries are
// field names, or ParamReferenceID for the correlation key.
type TemplateRef struct {
	Audience Audience
	Channel  Channel
	Template string
	Subject  string
	Params   []string
}

// Descriptor is the full per-kind configuration: schema, step layout,
// dependent-field rules and notification template set. One generic
// engine runs every kind off its descriptor.
type Descriptor struct {
	Kind           models.Kind
	Title          string
	Steps          []Step
	Schema         *validation.Schema
	Dependents     []DependentRule
	RequireCaptcha bool
	Templates      []TemplateRef

	// Well-known fields used for addressing notifications. EmailField
	// may be empty or optional in the schema; the dispatcher handles a
	// missing address.
	NameField  string
	EmailField string
	PhoneField string
}

// TotalSteps returns the number of wizard steps.
func (d *Descriptor) TotalSteps() int {
	return len(d.Steps)
}

// StepFields returns the field names collected on a 1-based step.
func (d *Descriptor) StepFields(step int) []string {
	if step < 1 || step > len(d.Steps) {
		return nil
	}
	return d.Steps[step-1].Fields
}

// ValidateStep runs the schema restricted to one step's fields.
func (d *Descriptor) ValidateStep(fields models.Fields, step int) validation.Result {
	return d.Schema.ValidateSubset(fields, d.StepFields(step))
}

// Validate runs the full schema, including refinements.
func (d *Descriptor) Validate(fields models.Fields) validation.Result {
	return d.Schema.Validate(fields)
}

// DependentsFor returns the rules driven by the named field.
func (d *Descriptor) DependentsFor(driver string) []DependentRule {
	var out []DependentRule
	for _, r := range d.Dependents {
		if r.Driver == driver {
			out = append(out, r)
		}
	}
	return out
}
