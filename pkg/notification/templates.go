package notification

import (
	"fmt"
	"html"
	"strings"

	"github.com/KrishangSharma/tvs-motors-sub000/pkg/forms"
	"github.com/KrishangSharma/tvs-motors-sub000/pkg/models"
)

// renderEmail builds the HTML and plain-text bodies for an email job
// from the descriptor's field labels and the job's bound parameters.
// One renderer serves every kind; the per-kind variation lives in the
// descriptor's template set, not in hand-written bodies.
func renderEmail(d *forms.Descriptor, lead *models.LeadSubmission, job Job) (string, string) {
	greeting := "Hi"
	if name := lead.Fields[d.NameField]; name != "" && job.Audience == forms.AudienceUser {
		greeting = fmt.Sprintf("Hi %s", name)
	}

	intro := fmt.Sprintf("Your %s request has been registered.", strings.ToLower(d.Title))
	if job.Audience == forms.AudienceAdmin {
		intro = fmt.Sprintf("A new %s lead has arrived.", strings.ToLower(d.Title))
	}

	var rows, lines strings.Builder
	for i, field := range job.ParamFields {
		label := paramLabel(d, field)
		value := job.Parameters[i]
		rows.WriteString(fmt.Sprintf(
			"<tr><td style=\"padding:4px 12px 4px 0;color:#555;\">%s</td><td style=\"padding:4px 0;\"><strong>%s</strong></td></tr>",
			html.EscapeString(label), html.EscapeString(value)))
		lines.WriteString(fmt.Sprintf("%s: %s\n", label, value))
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>%s</h2>
			<p>%s,</p>
			<p>%s</p>
			<table>%s</table>
			<p>Please keep the reference id handy for any follow-up.</p>
			<p>Thanks,<br>Team TVS Motor</p>
		</body>
		</html>
	`, html.EscapeString(d.Title), html.EscapeString(greeting), html.EscapeString(intro), rows.String())

	plainText := fmt.Sprintf(`%s,

%s

%s
Please keep the reference id handy for any follow-up.

Thanks,
Team TVS Motor
`, greeting, intro, lines.String())

	return htmlBody, plainText
}

func paramLabel(d *forms.Descriptor, field string) string {
	if field == forms.ParamReferenceID {
		return "Reference ID"
	}
	if spec := d.Schema.Field(field); spec != nil {
		return capitalize(spec.Label)
	}
	return field
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
