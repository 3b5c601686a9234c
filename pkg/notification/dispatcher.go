package notification

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/metrics"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// EmailSender delivers one rendered email.
type EmailSender interface {
	Send(toEmail, toName, subject, htmlBody, plainTextBody string) error
}

// WhatsAppSender delivers one registered template message.
type WhatsAppSender interface {
	SendTemplate(ctx context.Context, to, template string, params []string) error
}

// Dispatcher fans an accepted lead out to its (audience, channel)
// pairs. Delivery is best-effort and at-most-once: each pair is
// dispatched independently, failures are logged and counted but never
// retried and never surfaced to the user. The lead itself is already
// durably accepted before Dispatch is called, so losing a confirmation
// notice is an acceptable trade for keeping the submission path simple.
type Dispatcher struct {
	email      EmailSender
	whatsapp   WhatsAppSender
	adminEmail string
	adminPhone string
	log        logger.Logger
	metrics    *metrics.Metrics
}

// NewDispatcher creates a dispatcher. metrics may be nil.
func NewDispatcher(emailSender EmailSender, whatsappSender WhatsAppSender, adminEmail, adminPhone string, log logger.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		email:      emailSender,
		whatsapp:   whatsappSender,
		adminEmail: adminEmail,
		adminPhone: adminPhone,
		log:        log,
		metrics:    m,
	}
}

// Dispatch sends every notification pair for the lead concurrently and
// returns once all attempts finish. The lead must already carry its
// reference id; jobs are never built before acceptance.
func (d *Dispatcher) Dispatch(ctx context.Context, lead *models.LeadSubmission) {
	desc, ok := forms.Get(lead.Kind)
	if !ok {
		d.log.Error("dispatch for unknown lead kind", "kind", lead.Kind, "reference_id", lead.ReferenceID)
		return
	}

	jobs := BuildJobs(desc, lead, d.adminEmail, d.adminPhone)

	g, ctx := errgroup.WithContext(ctx)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			// Per-pair isolation: an error here is recorded and
			// swallowed so the remaining pairs always run.
			if err := d.send(ctx, desc, lead, job); err != nil {
				d.log.Error("notification dispatch failed",
					"kind", lead.Kind,
					"audience", job.Audience,
					"channel", job.Channel,
					"template", job.Template,
					"reference_id", lead.ReferenceID,
					"error", err,
				)
				d.record(job, false)
				return nil
			}
			d.log.Info("notification dispatched",
				"kind", lead.Kind,
				"audience", job.Audience,
				"channel", job.Channel,
				"reference_id", lead.ReferenceID,
			)
			d.record(job, true)
			return nil
		})
	}
	_ = g.Wait()
}

// DispatchAsync runs Dispatch on its own goroutine with a detached
// deadline, so the submission response never waits on providers.
func (d *Dispatcher) DispatchAsync(lead *models.LeadSubmission) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		d.Dispatch(ctx, lead)
	}()
}

func (d *Dispatcher) send(ctx context.Context, desc *forms.Descriptor, lead *models.LeadSubmission, job Job) error {
	switch job.Channel {
	case forms.ChannelEmail:
		html, text := renderEmail(desc, lead, job)
		toName := lead.Fields[desc.NameField]
		if job.Audience == forms.AudienceAdmin {
			toName = "Leads Desk"
		}
		return d.email.Send(job.Recipient, toName, job.Subject, html, text)
	case forms.ChannelWhatsApp:
		return d.whatsapp.SendTemplate(ctx, job.Recipient, job.Template, job.Parameters)
	default:
		return fmt.Errorf("unknown channel %q", job.Channel)
	}
}

func (d *Dispatcher) record(job Job, success bool) {
	if d.metrics == nil {
		return
	}
	d.metrics.RecordNotification(string(job.Kind), string(job.Audience), string(job.Channel), success)
}
