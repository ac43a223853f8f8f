package constants

// NATS subjects published after state transitions.
const (
	SubjectPaymentPaid       = "payments.paid"
	SubjectMembershipGranted = "memberships.granted"
)
