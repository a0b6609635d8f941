package service

// ResolutionOutcome labels how an identity resolution ended.
type ResolutionOutcome string

const (
	ResolutionCached    ResolutionOutcome = "cached"
	ResolutionAnonymous ResolutionOutcome = "anonymous"
	ResolutionExisting  ResolutionOutcome = "existing"
	ResolutionCreated   ResolutionOutcome = "created"
	ResolutionRaced     ResolutionOutcome = "raced"
	ResolutionFailed    ResolutionOutcome = "failed"
)

// IdentityMetrics records resolver outcomes.
type IdentityMetrics interface {
	ObserveResolution(outcome ResolutionOutcome)
}

// LoginMetrics records provider callback results.
type LoginMetrics interface {
	ObserveLogin(provider string, success bool)
}
