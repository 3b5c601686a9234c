package notification

import (
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// Placeholder strings for empty optional values. The provider's
// template slots are positional and cannot be omitted, so empties are
// replaced with something human-readable instead of sent blank.
const (
	NoEmailPlaceholder = "No Email Provided"
	NotProvided        = "Not Provided"
)

// Job is one independent outbound notification derived from an
// accepted lead: a single (audience, channel) dispatch with its bound
// positional parameters. Jobs share nothing after construction; each
// one succeeds or fails on its own.
type Job struct {
	Kind       models.Kind
	Audience   forms.Audience
	Channel    forms.Channel
	Template   string
	Subject    string
	Recipient  string
	Parameters []string

	// ParamFields mirrors Parameters with the originating field name
	// (or forms.ParamReferenceID); email rendering uses it for labels.
	ParamFields []string
}

// BuildJobs expands a lead into its notification jobs. Pairs whose
// recipient cannot be addressed are skipped here: a user-email pair
// with no email supplied, or an admin-whatsapp pair with no admin
// phone configured.
func BuildJobs(d *forms.Descriptor, lead *models.LeadSubmission, adminEmail, adminPhone string) []Job {
	jobs := make([]Job, 0, len(d.Templates))
	for _, tref := range d.Templates {
		recipient := resolveRecipient(d, lead, tref, adminEmail, adminPhone)
		if recipient == "" {
			continue
		}
		jobs = append(jobs, Job{
			Kind:        lead.Kind,
			Audience:    tref.Audience,
			Channel:     tref.Channel,
			Template:    tref.Template,
			Subject:     tref.Subject,
			Recipient:   recipient,
			Parameters:  BindParams(d, lead, tref),
			ParamFields: tref.Params,
		})
	}
	return jobs
}

// BindParams binds the lead's fields and reference id into the
// template's ordered parameter list. Every slot is always filled:
// empty optional values become placeholders.
func BindParams(d *forms.Descriptor, lead *models.LeadSubmission, tref forms.TemplateRef) []string {
	out := make([]string, len(tref.Params))
	for i, name := range tref.Params {
		switch {
		case name == forms.ParamReferenceID:
			out[i] = lead.ReferenceID
		case lead.Fields[name] != "":
			out[i] = lead.Fields[name]
		case name == d.EmailField:
			out[i] = NoEmailPlaceholder
		default:
			out[i] = NotProvided
		}
	}
	return out
}

func resolveRecipient(d *forms.Descriptor, lead *models.LeadSubmission, tref forms.TemplateRef, adminEmail, adminPhone string) string {
	switch {
	case tref.Audience == forms.AudienceUser && tref.Channel == forms.ChannelEmail:
		return lead.Fields[d.EmailField]
	case tref.Audience == forms.AudienceUser && tref.Channel == forms.ChannelWhatsApp:
		return lead.Fields[d.PhoneField]
	case tref.Audience == forms.AudienceAdmin && tref.Channel == forms.ChannelEmail:
		return adminEmail
	case tref.Audience == forms.AudienceAdmin && tref.Channel == forms.ChannelWhatsApp:
		return adminPhone
	}
	return ""
}
