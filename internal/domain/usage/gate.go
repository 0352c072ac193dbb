// Package usage enforces plan entitlements before tenant resources are
// created. The check is advisory: it reads a live count and decides
// without a transaction, so concurrent creations racing against the
// same limit can transiently exceed it. Making it a hard quota would
// need row locks in the store; the product accepts the weaker behavior.
package usage

import (
	"fmt"

	"lexsuite-app/internal/domain/cases"
	"lexsuite-app/internal/domain/clients"
	"lexsuite-app/internal/domain/documents"
	"lexsuite-app/internal/domain/invoices"
	"lexsuite-app/internal/domain/plans"
	"lexsuite-app/internal/domain/profiles"

	"gorm.io/gorm"
)

// LimitError reports a denied creation together with the cap that
// caused it, so handlers can render a useful message.
type LimitError struct {
	Resource plans.Resource
	Limit    int64
	Used     int64
}

func (e LimitError) Error() string {
	return fmt.Sprintf("plan limit reached for %s (%d of %d used)", e.Resource, e.Used, e.Limit)
}

// CanCreate reports whether the tenant may create one more resource of
// the given kind. A profile that cannot be loaded denies creation
// (fail closed) and returns the load error.
func CanCreate(db *gorm.DB, tenantID string, res plans.Resource) (bool, error) {
	var profile profiles.Profile
	if err := db.Where("id = ?", tenantID).First(&profile).Error; err != nil {
		return false, fmt.Errorf("load profile %s: %w", tenantID, err)
	}

	limit := plans.EntitlementFor(plans.ParseTier(profile.Plan)).LimitFor(res)
	if limit == plans.Unlimited {
		return true, nil
	}

	used, err := LiveCount(db, tenantID, res)
	if err != nil {
		return false, err
	}
	if used >= limit {
		return false, LimitError{Resource: res, Limit: limit, Used: used}
	}
	return true, nil
}

// LiveCount returns the tenant's current number of rows of one
// resource kind.
func LiveCount(db *gorm.DB, tenantID string, res plans.Resource) (int64, error) {
	var model interface{}
	switch res {
	case plans.ResourceCases:
		model = &cases.Case{}
	case plans.ResourceClients:
		model = &clients.Client{}
	case plans.ResourceDocuments:
		model = &documents.Document{}
	case plans.ResourceInvoices:
		model = &invoices.Invoice{}
	default:
		return 0, fmt.Errorf("unknown resource kind %q", res)
	}

	var n int64
	if err := db.Model(model).Where("user_id = ?", tenantID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", res, err)
	}
	return n, nil
}

// ResourceUsage pairs a live count with its plan cap. Limit is
// plans.Unlimited (-1) for uncapped resources.
type ResourceUsage struct {
	Used  int64 `json:"used"`
	Limit int64 `json:"limit"`
}

// Snapshot returns usage for every resource kind, for the subscription
// endpoint and the dashboard.
func Snapshot(db *gorm.DB, tenantID string, ent plans.Entitlement) (map[plans.Resource]ResourceUsage, error) {
	out := make(map[plans.Resource]ResourceUsage, 4)
	for _, res := range []plans.Resource{
		plans.ResourceCases,
		plans.ResourceClients,
		plans.ResourceDocuments,
		plans.ResourceInvoices,
	} {
		used, err := LiveCount(db, tenantID, res)
		if err != nil {
			return nil, err
		}
		out[res] = ResourceUsage{Used: used, Limit: ent.LimitFor(res)}
	}
	return out, nil
}
