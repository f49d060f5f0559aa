package constants

const (
	APIName  = "AgentHub"
	BasePath = "/hub/v1"
)

const (
	DefaultTop  = 20
	DefaultSkip = 0
)
