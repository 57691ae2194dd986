package domain

// DashboardMetrics holds the illustrative numbers shown on the seller
// dashboard. They are display constants, not aggregates: no transaction
// pipeline exists yet, and nothing may treat these as computed state.
type DashboardMetrics struct {
	MonthlyRevenueJPY int
	ActiveDeals       int
	Rating            float64
	ReviewCount       int
}

// PlaceholderMetrics are the fixed numbers the dashboard renders for every
// seller until real settlement data exists.
var PlaceholderMetrics = DashboardMetrics{
	MonthlyRevenueJPY: 142500,
	ActiveDeals:       12,
	Rating:            4.9,
	ReviewCount:       36,
}

// ChatLine is one line of the canned negotiation transcript.
type ChatLine struct {
	FromTalent bool
	Body       string
}

// MockTranscript is the static conversation rendered by the chat view.
// There is no send capability and no message transport.
var MockTranscript = []ChatLine{
	{FromTalent: false, Body: "Hi! I'd like to request a 30-second narration for a product video."},
	{FromTalent: true, Body: "Thanks for reaching out! That's within my standard package."},
	{FromTalent: false, Body: "Great. Could you deliver within a week?"},
	{FromTalent: true, Body: "Yes — home studio recording, delivery in 3 business days."},
	{FromTalent: false, Body: "Perfect, I'll proceed with the escrow request."},
}
