package forms

import (
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/validation"
)

// TimeSlots are the bookable windows for test rides and service visits.
var TimeSlots = []string{"09:00-11:00", "11:00-13:00", "14:00-16:00", "16:00-18:00"}

var registry = buildRegistry()

// Get returns the descriptor for a kind.
func Get(kind models.Kind) (*Descriptor, bool) {
	d, ok := registry[kind]
	return d, ok
}

// GetBySlug resolves a URL path segment to a descriptor.
func GetBySlug(slug string) (*Descriptor, bool) {
	return Get(models.Kind(slug))
}

// All returns every registered descriptor.
func All() []*Descriptor {
	out := make([]*Descriptor, 0, len(registry))
	for _, k := range models.Kinds() {
		if d, ok := registry[k]; ok {
			out = append(out, d)
		}
	}
	return out
}

func buildRegistry() map[models.Kind]*Descriptor {
	reg := make(map[models.Kind]*Descriptor)
	for _, d := range []*Descriptor{
		testRide(),
		amc(),
		loan(),
		exchange(),
		insurance(),
		serviceBooking(),
		career(),
		suggestion(),
	} {
		reg[d.Kind] = d
	}
	return reg
}

func testRide() *Descriptor {
	return &Descriptor{
		Kind:  models.KindTestRide,
		Title: "Book a Test Ride",
		Steps: []Step{
			{Name: "Personal Info", Fields: []string{"name", "phone", "email"}},
			{Name: "Location", Fields: []string{"pincode", "dealer"}},
			{Name: "Vehicle Details", Fields: []string{"vehicle", "variant", "bookingDate", "timeSlot", "authorizeContact"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "email", Label: "email", Rules: []validation.Rule{validation.Email()}},
				{Name: "pincode", Label: "pincode", Required: true, Rules: []validation.Rule{validation.Pincode()}},
				{Name: "dealer", Label: "dealer", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "vehicle", Label: "vehicle", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "variant", Label: "variant", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "bookingDate", Label: "booking date", Required: true, Rules: []validation.Rule{validation.FutureDate()}},
				{Name: "timeSlot", Label: "time slot", Required: true, Rules: []validation.Rule{validation.OneOf(TimeSlots...)}},
				{Name: "authorizeContact", Label: "contact authorization", Required: true, Rules: []validation.Rule{validation.Boolean()}},
			},
		},
		Dependents: []DependentRule{
			{Driver: "vehicle", OptionKey: "availableVariants", Resets: []string{"variant"}, Lookup: LookupVariants},
			{Driver: "pincode", OptionKey: "availableDealers", Resets: []string{"dealer"}, MinLen: 6, Lookup: LookupDealers},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "test_ride_user_confirm",
				Subject: "Your TVS test ride is booked",
				Params:  []string{"name", ParamReferenceID, "vehicle", "variant", "dealer", "bookingDate", "timeSlot"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "test_ride_user_confirm",
				Params: []string{"name", ParamReferenceID, "vehicle", "bookingDate", "timeSlot"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "test_ride_admin_alert",
				Subject: "New test ride booking",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "vehicle", "variant", "dealer", "bookingDate", "timeSlot"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "test_ride_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "vehicle", "dealer"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func amc() *Descriptor {
	return &Descriptor{
		Kind:  models.KindAMC,
		Title: "Annual Maintenance Contract",
		Steps: []Step{
			{Name: "AMC Details", Fields: []string{"name", "email", "phone", "vehicle", "registrationNumber", "amcPlan"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "email", Label: "email", Required: true, Rules: []validation.Rule{validation.Email()}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "vehicle", Label: "vehicle", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "registrationNumber", Label: "registration number", Required: true, Rules: []validation.Rule{validation.RegistrationNumber()}},
				{Name: "amcPlan", Label: "AMC plan", Required: true, Rules: []validation.Rule{validation.OneOf("silver", "gold", "platinum")}},
			},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "amc_user_confirm",
				Subject: "Your AMC request is registered",
				Params:  []string{"name", ParamReferenceID, "vehicle", "registrationNumber", "amcPlan"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "amc_user_confirm",
				Params: []string{"name", ParamReferenceID, "amcPlan"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "amc_admin_alert",
				Subject: "New AMC request",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "vehicle", "registrationNumber", "amcPlan"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "amc_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "amcPlan"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func loan() *Descriptor {
	return &Descriptor{
		Kind:  models.KindLoan,
		Title: "Vehicle Loan Application",
		Steps: []Step{
			{Name: "Loan Details", Fields: []string{"name", "email", "phone", "amount", "tenure", "documentType", "documentNumber"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "email", Label: "email", Required: true, Rules: []validation.Rule{validation.Email()}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "amount", Label: "loan amount", Required: true, Rules: []validation.Rule{validation.Numeric(10000, 5000000)}},
				{Name: "tenure", Label: "tenure", Required: true, Rules: []validation.Rule{validation.OneOf("12", "24", "36", "48")}},
				{Name: "documentType", Label: "document type", Rules: []validation.Rule{validation.OneOf("aadhaar", "pan")}},
				{Name: "documentNumber", Label: "document number"},
			},
			Refinements: []validation.Refinement{
				validation.DocumentNumberRefinement("documentType", "documentNumber"),
			},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "loan_user_confirm",
				Subject: "Your loan application is received",
				Params:  []string{"name", ParamReferenceID, "amount", "tenure"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "loan_user_confirm",
				Params: []string{"name", ParamReferenceID, "amount"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "loan_admin_alert",
				Subject: "New loan application",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "amount", "tenure"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "loan_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "amount"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func exchange() *Descriptor {
	return &Descriptor{
		Kind:  models.KindExchange,
		Title: "Vehicle Exchange",
		Steps: []Step{
			{Name: "Exchange Details", Fields: []string{"name", "phone", "email", "currentVehicle", "registrationNumber", "pincode", "vehicle", "variant"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "email", Label: "email", Rules: []validation.Rule{validation.Email()}},
				{Name: "currentVehicle", Label: "current vehicle", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "registrationNumber", Label: "registration number", Required: true, Rules: []validation.Rule{validation.RegistrationNumber()}},
				{Name: "pincode", Label: "pincode", Required: true, Rules: []validation.Rule{validation.Pincode()}},
				{Name: "vehicle", Label: "new vehicle", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "variant", Label: "variant", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
			},
		},
		Dependents: []DependentRule{
			{Driver: "vehicle", OptionKey: "availableVariants", Resets: []string{"variant"}, Lookup: LookupVariants},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "exchange_user_confirm",
				Subject: "Your exchange request is registered",
				Params:  []string{"name", ParamReferenceID, "currentVehicle", "vehicle"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "exchange_user_confirm",
				Params: []string{"name", ParamReferenceID, "vehicle"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "exchange_admin_alert",
				Subject: "New exchange request",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "currentVehicle", "registrationNumber", "vehicle", "variant"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "exchange_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "currentVehicle"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func insurance() *Descriptor {
	return &Descriptor{
		Kind:  models.KindInsurance,
		Title: "Insurance Renewal",
		Steps: []Step{
			{Name: "Insurance Details", Fields: []string{"name", "phone", "email", "registrationNumber", "policyNumber", "insurer"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "email", Label: "email", Rules: []validation.Rule{validation.Email()}},
				{Name: "registrationNumber", Label: "registration number", Required: true, Rules: []validation.Rule{validation.RegistrationNumber()}},
				{Name: "policyNumber", Label: "policy number", Required: true, Rules: []validation.Rule{validation.MinLen(5), validation.MaxLen(30)}},
				{Name: "insurer", Label: "insurer", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(60)}},
			},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "insurance_user_confirm",
				Subject: "Your insurance renewal request is registered",
				Params:  []string{"name", ParamReferenceID, "registrationNumber", "insurer"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "insurance_user_confirm",
				Params: []string{"name", ParamReferenceID, "registrationNumber"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "insurance_admin_alert",
				Subject: "New insurance renewal request",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "registrationNumber", "policyNumber", "insurer"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "insurance_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "registrationNumber"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func serviceBooking() *Descriptor {
	return &Descriptor{
		Kind:  models.KindServiceBooking,
		Title: "Book a Service",
		Steps: []Step{
			{Name: "Service Details", Fields: []string{"name", "phone", "email", "registrationNumber", "pincode", "dealer", "serviceType", "bookingDate", "timeSlot"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "email", Label: "email", Rules: []validation.Rule{validation.Email()}},
				{Name: "registrationNumber", Label: "registration number", Required: true, Rules: []validation.Rule{validation.RegistrationNumber()}},
				{Name: "pincode", Label: "pincode", Required: true, Rules: []validation.Rule{validation.Pincode()}},
				{Name: "dealer", Label: "dealer", Required: true, Rules: []validation.Rule{validation.MinLen(1)}},
				{Name: "serviceType", Label: "service type", Required: true, Rules: []validation.Rule{validation.OneOf("free-service", "paid-service", "repair")}},
				{Name: "bookingDate", Label: "booking date", Required: true, Rules: []validation.Rule{validation.FutureDate()}},
				{Name: "timeSlot", Label: "time slot", Required: true, Rules: []validation.Rule{validation.OneOf(TimeSlots...)}},
			},
		},
		Dependents: []DependentRule{
			{Driver: "pincode", OptionKey: "availableDealers", Resets: []string{"dealer"}, MinLen: 6, Lookup: LookupDealers},
		},
		RequireCaptcha: true,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "service_user_confirm",
				Subject: "Your service booking is confirmed",
				Params:  []string{"name", ParamReferenceID, "registrationNumber", "dealer", "bookingDate", "timeSlot"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "service_user_confirm",
				Params: []string{"name", ParamReferenceID, "bookingDate", "timeSlot"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "service_admin_alert",
				Subject: "New service booking",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "registrationNumber", "dealer", "serviceType", "bookingDate", "timeSlot"}},
			{Audience: AudienceAdmin, Channel: ChannelWhatsApp, Template: "service_admin_alert",
				Params: []string{ParamReferenceID, "name", "phone", "dealer"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func career() *Descriptor {
	return &Descriptor{
		Kind:  models.KindCareer,
		Title: "Career Application",
		Steps: []Step{
			{Name: "Application", Fields: []string{"name", "email", "phone", "dateOfBirth", "position", "resumeURL"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "email", Label: "email", Required: true, Rules: []validation.Rule{validation.Email()}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "dateOfBirth", Label: "date of birth", Required: true, Rules: []validation.Rule{validation.PastDate()}},
				{Name: "position", Label: "position", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(100)}},
				{Name: "resumeURL", Label: "resume link", Required: true, Rules: []validation.Rule{validation.URL()}},
			},
		},
		RequireCaptcha: true,
		// No admin WhatsApp pair: applications are triaged over email only.
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelEmail, Template: "career_user_confirm",
				Subject: "We received your application",
				Params:  []string{"name", ParamReferenceID, "position"}},
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "career_user_confirm",
				Params: []string{"name", ParamReferenceID, "position"}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "career_admin_alert",
				Subject: "New career application",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "position", "resumeURL"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}

func suggestion() *Descriptor {
	return &Descriptor{
		Kind:  models.KindSuggestion,
		Title: "Suggestions & Feedback",
		Steps: []Step{
			{Name: "Feedback", Fields: []string{"name", "email", "phone", "message"}},
		},
		Schema: &validation.Schema{
			Fields: []validation.FieldSpec{
				{Name: "name", Label: "name", Required: true, Rules: []validation.Rule{validation.MinLen(2), validation.MaxLen(80)}},
				{Name: "email", Label: "email", Rules: []validation.Rule{validation.Email()}},
				{Name: "phone", Label: "phone number", Required: true, Rules: []validation.Rule{validation.Phone()}},
				{Name: "message", Label: "message", Required: true, Rules: []validation.Rule{validation.MinLen(10), validation.MaxLen(1000)}},
			},
		},
		RequireCaptcha: false,
		Templates: []TemplateRef{
			{Audience: AudienceUser, Channel: ChannelWhatsApp, Template: "suggestion_user_thanks",
				Params: []string{"name", ParamReferenceID}},
			{Audience: AudienceAdmin, Channel: ChannelEmail, Template: "suggestion_admin_alert",
				Subject: "New suggestion received",
				Params:  []string{ParamReferenceID, "name", "phone", "email", "message"}},
		},
		NameField:  "name",
		EmailField: "email",
		PhoneField: "phone",
	}
}
