package notification

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/logger"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

type fakeEmail struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeEmail) Send(toEmail, toName, subject, htmlBody, plainTextBody string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("sendgrid down")
	}
	f.sent = append(f.sent, toEmail)
	return nil
}

type fakeWhatsApp struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeWhatsApp) SendTemplate(ctx context.Context, to, template string, params []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("provider down")
	}
	f.sent = append(f.sent, to)
	return nil
}

func newTestDispatcher(e *fakeEmail, w *fakeWhatsApp) *Dispatcher {
	return NewDispatcher(e, w, "leads@tvsdealer.example", "919876500000", logger.New("error", "text"), nil)
}

func TestDispatch_AllChannels(t *testing.T) {
	e := &fakeEmail{}
	w := &fakeWhatsApp{}
	d := newTestDispatcher(e, w)

	lead := testRideLead(models.Fields{
		"name": "Asha Rao", "phone": "9876543210", "email": "asha@example.com",
		"vehicle": "TVS Jupiter", "variant": "Jupiter ZX", "dealer": "Sai Point TVS, Mumbai",
		"bookingDate": "2026-09-10", "timeSlot": "09:00-11:00",
	})
	d.Dispatch(context.Background(), lead)

	assert.ElementsMatch(t, []string{"asha@example.com", "leads@tvsdealer.example"}, e.sent)
	assert.ElementsMatch(t, []string{"9876543210", "919876500000"}, w.sent)
}

func TestDispatch_EmailFailureDoesNotBlockWhatsApp(t *testing.T) {
	e := &fakeEmail{fail: true}
	w := &fakeWhatsApp{}
	d := newTestDispatcher(e, w)

	lead := testRideLead(models.Fields{
		"name": "Asha Rao", "phone": "9876543210", "email": "asha@example.com",
	})
	d.Dispatch(context.Background(), lead)

	require.Empty(t, e.sent)
	assert.Len(t, w.sent, 2, "whatsapp pairs must still go out when email is down")
}

func TestDispatch_UnknownKindIsIgnored(t *testing.T) {
	e := &fakeEmail{}
	w := &fakeWhatsApp{}
	d := newTestDispatcher(e, w)

	d.Dispatch(context.Background(), &models.LeadSubmission{
		Kind:        models.Kind("mystery"),
		ReferenceID: "TVS-LD-CCCC3333",
		Fields:      models.Fields{},
	})

	assert.Empty(t, e.sent)
	assert.Empty(t, w.sent)
}

func TestRenderEmail_ContainsBoundValues(t *testing.T) {
	d := descriptor(t, models.KindTestRide)
	lead := testRideLead(models.Fields{
		"name": "Asha Rao", "phone": "9876543210",
		"vehicle": "TVS Jupiter",
	})
	jobs := BuildJobs(d, lead, "leads@tvsdealer.example", "")
	require.NotEmpty(t, jobs)

	var adminEmail *Job
	for i := range jobs {
		if jobs[i].Channel == "email" && jobs[i].Audience == "admin" {
			adminEmail = &jobs[i]
		}
	}
	require.NotNil(t, adminEmail)

	html, text := renderEmail(d, lead, *adminEmail)
	assert.Contains(t, html, "TVS-TR-AAAA1111")
	assert.Contains(t, html, "Asha Rao")
	assert.Contains(t, html, NoEmailPlaceholder)
	assert.Contains(t, text, "TVS-TR-AAAA1111")
}

func TestRenderEmail_EscapesHTML(t *testing.T) {
	d := descriptor(t, models.KindTestRide)
	lead := testRideLead(models.Fields{
		"name": "<script>alert(1)</script>", "phone": "9876543210",
	})
	jobs := BuildJobs(d, lead, "leads@tvsdealer.example", "")
	require.NotEmpty(t, jobs)

	html, _ := renderEmail(d, lead, jobs[0])
	assert.NotContains(t, html, "<script>")
}
