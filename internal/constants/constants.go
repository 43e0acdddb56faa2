package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath   = "MECHA_CONFIG"
	EnvDatabasePath = "MECHA_DB"
	EnvServerAddr   = "MECHA_ADDR"

	// HTTP headers and content types
	HeaderContentType = "Content-Type"

	ContentTypeJSON = "application/json"
)

// Routes used by the backend router
const (
	RouteAPIPrefix  = "/api"
	RouteVersion    = "/version"
	RouteMechas     = "/mechas"
	RoutePilots     = "/pilots"
	RouteEquipment  = "/equipment"
	RouteSkills     = "/skills"
	RouteSkillByID  = "/skills/:skillID"
	RouteBattles    = "/battles"
	RouteBattleByID = "/battles/:battleID"
	RouteHealth     = "/health"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest = "Invalid request"

	ErrSkillNotFound  = "Skill not found"
	ErrBattleNotFound = "Battle not found"

	ErrFailedRunBattle     = "Failed to run battle"
	ErrFailedFetchBattle   = "Failed to fetch battle"
	ErrFailedFetchBattles  = "Failed to fetch battles"
	ErrFailedEncodeBattles = "Failed to encode battles"
)

// Logging field names
const (
	LogFieldBattleID = "battle_id"
	LogFieldSource   = "source"
	LogFieldName     = "name"
	LogFieldKey      = "key"
	LogFieldAddr     = "addr"
)
