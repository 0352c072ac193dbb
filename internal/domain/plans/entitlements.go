package plans

// Unlimited marks a resource with no cap. The usage gate treats it as
// "never exceeded" regardless of the live count.
const Unlimited int64 = -1

// Resource names a tenant-owned countable resource kind.
type Resource string

const (
	ResourceCases     Resource = "cases"
	ResourceClients   Resource = "clients"
	ResourceDocuments Resource = "documents"
	ResourceInvoices  Resource = "invoices"
)

// Entitlement is the static cap/feature record for one tier.
type Entitlement struct {
	Name      string   `json:"name"`
	Cases     int64    `json:"cases"`
	Clients   int64    `json:"clients"`
	Documents int64    `json:"documents"`
	Invoices  int64    `json:"invoices"`
	Features  []string `json:"features"`
}

// EntitlementFor returns the entitlement record for a tier. It is pure
// and total: unknown tiers get the free entitlement rather than an error.
func EntitlementFor(tier Tier) Entitlement {
	switch tier {
	case TierStarter:
		return Entitlement{
			Name:      "Starter",
			Cases:     10,
			Clients:   10,
			Documents: 1000,
			Invoices:  50,
			Features:  []string{"Client Management", "Case Management", "Document Storage", "Email Support"},
		}
	case TierGrowth:
		return Entitlement{
			Name:      "Growth",
			Cases:     100,
			Clients:   50,
			Documents: Unlimited,
			Invoices:  Unlimited,
			Features:  []string{"Advanced Billing", "Unlimited Documents", "Unlimited Invoices", "Priority Support"},
		}
	case TierProFirm:
		return Entitlement{
			Name:      "Pro Firm",
			Cases:     Unlimited,
			Clients:   Unlimited,
			Documents: Unlimited,
			Invoices:  Unlimited,
			Features:  []string{"Unlimited Everything", "Custom Branding", "Dedicated Account Manager"},
		}
	default:
		return Entitlement{
			Name:      "Free",
			Cases:     3,
			Clients:   5,
			Documents: 20,
			Invoices:  5,
			Features:  []string{"Basic Client Mgmt", "Basic Case Mgmt", "Email Support"},
		}
	}
}

// LimitFor returns the cap for one resource kind.
func (e Entitlement) LimitFor(res Resource) int64 {
	switch res {
	case ResourceCases:
		return e.Cases
	case ResourceClients:
		return e.Clients
	case ResourceDocuments:
		return e.Documents
	case ResourceInvoices:
		return e.Invoices
	}
	// Unknown resource kinds get no allowance.
	return 0
}
