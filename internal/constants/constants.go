package constants

type (
	APIStatus   string
	CachePrefix string
	AuthMode    string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSession CachePrefix = "SESSION_"

	// AuthModeNone takes checkedInBy from request bodies; AuthModeSession
	// derives it from the logged-in user. The two are mutually exclusive
	// deployment modes.
	AuthModeNone    AuthMode = "none"
	AuthModeSession AuthMode = "session"

	SessionCookieName = "rollcall_session"
)
