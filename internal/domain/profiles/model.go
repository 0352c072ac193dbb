package profiles

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the per-tenant record. Its id doubles as the tenant
// identity carried in JWT claims and checkout session metadata.
type Profile struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string  `json:"full_name"`
	Email    string  `gorm:"not null;uniqueIndex:idx_profiles_email" json:"email"`
	Password *string `json:"-"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_profiles_google_sub" json:"-"`
	Role         string  `gorm:"not null;default:'user'" json:"role"`

	Plan               string `gorm:"not null;default:'free'" json:"plan"`
	BillingInterval    string `gorm:"not null;default:'month'" json:"billing_interval"`
	SubscriptionStatus string `gorm:"not null;default:'active'" json:"subscription_status"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_profiles_stripe_customer_id" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
