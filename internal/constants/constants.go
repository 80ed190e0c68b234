package constants

const (
	// ContextKeyUsername is the gin context / session key holding the
	// authenticated account's username.
	ContextKeyUsername = "username"

	// SessionName is the cookie name for the gin session.
	SessionName = "workforce_session"

	// AdminUsername is the only account allowed to reset other accounts.
	AdminUsername = "admin"

	// GeneratedPasswordLength is the length of passwords issued for new and
	// reset accounts.
	GeneratedPasswordLength = 10

	// MinPasswordLength applies to user-chosen passwords on password change.
	MinPasswordLength = 8

	// DueSoonDays is the lookahead window for "due soon" task queries.
	DueSoonDays = 7
)
