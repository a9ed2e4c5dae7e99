package consts

const (
	RuneFwdSlash  = '/'
	RuneColon     = ':'
	RuneAsterisk  = '*'
	PathRoot      = "/"
	PathSeparator = "/"
	PathCatchAll  = "*"

	// PathTerminators start the query string or fragment of a location.
	PathTerminators = "?#"
)

// Route table file lookup used by the command line tools.
const (
	EnvRouteTable     = "PATHROUTE_TABLE"
	DefaultRouteTable = "routes.toml"
)
