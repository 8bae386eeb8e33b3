package health

// Dependencies reports the readiness of the service's collaborators.
type Dependencies struct {
	VocabularySize   func() int
	NLPAvailable     func() bool
	GeminiConfigured func() bool
	DatasetInstalled func() bool
}

// Service encapsulates health-related checks.
type Service struct {
	deps Dependencies
}

// NewService constructs a new health service.
func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// Status reports overall health plus the state of each collaborator. The
// service is considered healthy as long as it is serving; degraded
// collaborators show up as false flags rather than failures.
func (s *Service) Status() map[string]interface{} {
	status := map[string]interface{}{
		"status":  "healthy",
		"service": "HireSight ML Service",
	}
	if s.deps.VocabularySize != nil {
		status["vocabulary_size"] = s.deps.VocabularySize()
	}
	if s.deps.NLPAvailable != nil {
		status["nlp_available"] = s.deps.NLPAvailable()
	}
	if s.deps.GeminiConfigured != nil {
		status["gemini_configured"] = s.deps.GeminiConfigured()
	}
	if s.deps.DatasetInstalled != nil {
		status["dataset_installed"] = s.deps.DatasetInstalled()
	}
	return status
}
