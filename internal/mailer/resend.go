// Package mailer sends the submitter's confirmation email. Delivery is best
// effort: the pull request already exists by the time this runs, so a failed
// send is logged by the caller and never rolls anything back.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/resend/resend-go/v2"
)

const defaultFrom = "noreply@suiteprompt.dev"

// Resend delivers confirmation emails through the Resend API.
type Resend struct {
	client *resend.Client
	from   string
}

// NewResend constructs a mailer. Empty arguments fall back to RESEND_API_KEY
// and RESEND_FROM_EMAIL.
func NewResend(apiKey, from string) *Resend {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("RESEND_API_KEY"))
	}
	from = strings.TrimSpace(from)
	if from == "" {
		from = strings.TrimSpace(os.Getenv("RESEND_FROM_EMAIL"))
	}
	if from == "" {
		from = defaultFrom
	}
	return &Resend{client: resend.NewClient(apiKey), from: from}
}

// SendConfirmation emails the submitter a link to track their pull request.
func (m *Resend) SendConfirmation(ctx context.Context, to, promptTitle, prURL string, prNumber int) error {
	if m == nil || m.client == nil {
		return errors.New("mailer: nil mailer")
	}
	if strings.TrimSpace(to) == "" {
		return errors.New("mailer: missing recipient")
	}

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: "✅ Prompt Submitted Successfully!",
		Html:    confirmationHTML(promptTitle, prURL, prNumber),
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("mailer: send confirmation: %w", err)
	}
	return nil
}

func confirmationHTML(promptTitle, prURL string, prNumber int) string {
	return fmt.Sprintf(`
<h2>Thank you for submitting to SuitePrompt!</h2>
<p>Your prompt "<strong>%s</strong>" has been submitted for review.</p>

<p><strong>Track your submission:</strong></p>
<p><a href="%s" style="background-color: #0070f3; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">View Pull Request #%d</a></p>

<p>You'll be able to see when your submission is approved and merged. If there are any questions or issues, they'll be discussed in the PR comments.</p>

<hr style="margin: 24px 0; border: none; border-top: 1px solid #eaeaea;">

<p style="color: #666; font-size: 14px;">
  <strong>What happens next?</strong><br>
  • Your submission will be reviewed<br>
  • If approved, it will be merged and appear in the marketplace<br>
  • You can track progress via the PR link above
</p>
`, promptTitle, prURL, prNumber)
}
