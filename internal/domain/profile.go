package domain

import "time"

// Category is one of the fixed talent genres offered by the marketplace.
// Values are the marketplace's canonical (Japanese) labels, stored as-is.
type Category string

const (
	CategoryUnset      Category = ""
	CategoryVoiceActor Category = "ナレーター・声優"
	CategoryModel      Category = "ファッションモデル"
	CategoryInfluencer Category = "インフルエンサー"
	CategoryActor      Category = "俳優"
	CategoryMC         Category = "MC"
)

// Categories lists the selectable genres in display order.
var Categories = []Category{
	CategoryVoiceActor,
	CategoryModel,
	CategoryInfluencer,
	CategoryActor,
	CategoryMC,
}

// SubscriptionPlan is the talent's account tier.
type SubscriptionPlan string

const (
	PlanFree     SubscriptionPlan = "free"
	PlanStandard SubscriptionPlan = "standard" // ¥3,000/month
	PlanPremium  SubscriptionPlan = "premium"  // ¥10,000/month
)

// Profile is the persisted record describing a talent's public listing and
// account settings. ID equals the owning identity's user id.
type Profile struct {
	ID               string           `json:"id"`
	FullName         string           `json:"full_name"`
	Category         Category         `json:"category"`
	Bio              string           `json:"bio"`
	AvatarURL        string           `json:"avatar_url"`
	PricePerProject  int              `json:"price_per_project"`
	SubscriptionPlan SubscriptionPlan `json:"subscription_plan"`
	IsVerified       bool             `json:"is_verified"`
	UpdatedAt        *time.Time       `json:"updated_at,omitempty"`
}

// NewDraftProfile synthesizes the empty profile a signed-in user gets before
// their first save. It exists only in memory until an explicit upsert.
func NewDraftProfile(userID string) *Profile {
	return &Profile{
		ID:               userID,
		SubscriptionPlan: PlanFree,
	}
}

// ApplyDefaults normalizes a record read from the gateway. Defaults are
// applied once here, at the cache boundary, not per-view.
func (p *Profile) ApplyDefaults() {
	if p.SubscriptionPlan == "" {
		p.SubscriptionPlan = PlanFree
	}
	if p.PricePerProject < 0 {
		p.PricePerProject = 0
	}
}

// DisplayName returns the name to render, falling back for unnamed drafts.
func (p *Profile) DisplayName() string {
	if p.FullName == "" {
		return "Unnamed Talent"
	}
	return p.FullName
}

// HasListing reports whether the owner has filled in the minimum fields that
// make the profile worth prompting about on the empty listing screen.
func (p *Profile) HasListing() bool {
	return p.FullName != ""
}
