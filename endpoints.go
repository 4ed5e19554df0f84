package hood

// DefaultBaseURL is the production API host. Builder.BaseURL overrides it,
// which tests use to point the client at a local server.
const DefaultBaseURL = "https://api.robinhood.com"

const (
	oauthTokenPath  = "/oauth2/token/"
	tokenAuthPath   = "/api-token-auth/"
	tokenLogoutPath = "/api-token-logout/"
	instrumentsPath = "/instruments/"
	accountsPath    = "/accounts/"
	ordersPath      = "/orders/"
)
