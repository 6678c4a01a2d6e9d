package notify

import "fmt"

// Tiered approval emails. The tier is the number of approvals on record at
// send time; tier 3 is terminal and describes full activation.

func approvalSubject(tier int) string {
	switch tier {
	case 1:
		return "Your membership received its first approval"
	case 2:
		return "Your membership is almost approved"
	default:
		return "Welcome! Your membership is fully approved"
	}
}

func approvalBody(name, adminName string, tier int) string {
	switch tier {
	case 1:
		return fmt.Sprintf(`<p>Dear %s,</p>
<p>Good news — administrator <b>%s</b> has approved your registration.</p>
<p>Two more approvals are required before your account becomes active.</p>
<p>— Community Portal Team</p>`, name, adminName)
	case 2:
		return fmt.Sprintf(`<p>Dear %s,</p>
<p>Administrator <b>%s</b> has approved your registration.</p>
<p>You are almost there: only one more approval is required.</p>
<p>— Community Portal Team</p>`, name, adminName)
	default:
		return fmt.Sprintf(`<p>Dear %s,</p>
<p>Administrator <b>%s</b> has approved your registration and your account is now fully active.</p>
<p>You can now use the matrimonial profiles, directories, forums and all other portal features.</p>
<p>— Community Portal Team</p>`, name, adminName)
	}
}

func mutualMatchSubject() string {
	return "You have a mutual match!"
}

func mutualMatchBody(name, matchName string) string {
	return fmt.Sprintf(`<p>Dear %s,</p>
<p><b>%s</b> has also expressed interest in your profile — the interest is mutual.</p>
<p>Log in to the portal to view their profile and get in touch.</p>
<p>— Community Portal Team</p>`, name, matchName)
}

// Render produces the subject and HTML body for an event.
func Render(ev Event) (subject, body string) {
	switch ev.Kind {
	case KindMutualMatch:
		return mutualMatchSubject(), mutualMatchBody(ev.Name, ev.MatchName)
	default:
		return approvalSubject(ev.Tier), approvalBody(ev.Name, ev.AdminName, ev.Tier)
	}
}
