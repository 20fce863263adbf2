package login

const (
	flagIdentifier      = "identifier"
	flagIdentifierShort = "u"
	flagIdentifierUsage = "the email or username to log in with"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "the password to log in with"
)
