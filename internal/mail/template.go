package mail

import (
	"fmt"
	"strings"

	"github.com/snipx/snipx-backend/internal/domain"
)

// confirmationBody renders the plain-text confirmation email, including the
// static SLA table quoted to every requester.
func confirmationBody(ticket *domain.Ticket) string {
	return fmt.Sprintf(`Dear %s,

Thank you for contacting SnipX support. We have received your support ticket and will respond within our standard response times based on priority.

Ticket Details:
- Ticket ID: #%s
- Subject: %s
- Priority: %s
- Type: %s

Expected Response Times:
- Urgent: 2-4 hours
- High: 4-8 hours
- Medium: 12-24 hours
- Low: 24-48 hours

You can check the status of your ticket by contacting us with your ticket ID.

Best regards,
SnipX Support Team
`,
		ticket.Name,
		ticket.ShortRef(),
		ticket.Subject,
		titleCase(string(ticket.Priority)),
		titleCase(strings.ReplaceAll(ticket.Type, "_", " ")),
	)
}

// titleCase upper-cases the first letter of each space-separated word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
