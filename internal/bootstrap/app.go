package bootstrap

import (
	"context"

	"github.com/gin-gonic/gin"

	"hiresight-ml/internal/dataset"
	"hiresight-ml/internal/extraction"
	"hiresight-ml/internal/insight"
	"hiresight-ml/internal/matching"
	"hiresight-ml/internal/parse"
	"hiresight-ml/internal/server"
	"hiresight-ml/internal/services/health"
	"hiresight-ml/internal/shared/config"
	"hiresight-ml/internal/shared/storage/object"
	localstore "hiresight-ml/internal/shared/storage/object/local"
	s3store "hiresight-ml/internal/shared/storage/object/s3"
	"hiresight-ml/internal/shared/telemetry"
	"hiresight-ml/internal/skills"
)

// App holds the service's shared dependencies.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	Vocabulary *skills.Vocabulary
	Extractor  *extraction.Extractor
	Matcher    *matching.Matcher
	Parser     *parse.Parser
	Insight    *insight.Service
	Dataset    *dataset.Repository
	Store      object.ObjectStore
}

// Build prepares shared dependencies and wires the router. Missing optional
// collaborators (vocabulary file, Gemini key, datasets) degrade rather than
// fail: the service always boots and reports their state through /health.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	vocab, err := skills.Load(cfg.SkillsFile)
	if err != nil {
		telemetry.Warn("bootstrap.vocabulary_load_failed", map[string]interface{}{
			"file":  cfg.SkillsFile,
			"error": err.Error(),
		})
	} else {
		telemetry.Info("bootstrap.vocabulary_loaded", map[string]interface{}{
			"file":  cfg.SkillsFile,
			"total": vocab.Size(),
		})
	}

	candidates := buildCandidateSource(cfg)
	extractor := extraction.New(vocab, candidates)
	matcher := matching.New(extractor)

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	parser := parse.New(store)

	insightSvc := buildInsight(ctx, cfg)
	datasetRepo := dataset.NewRepository(cfg.DataDir)

	healthSvc := health.NewService(health.Dependencies{
		VocabularySize:   vocab.Size,
		NLPAvailable:     extractor.NLPAvailable,
		GeminiConfigured: insightSvc.Available,
		DatasetInstalled: datasetRepo.Installed,
	})

	app := &App{
		Config:     cfg,
		Vocabulary: vocab,
		Extractor:  extractor,
		Matcher:    matcher,
		Parser:     parser,
		Insight:    insightSvc,
		Dataset:    datasetRepo,
		Store:      store,
	}

	app.Router = server.NewEngine(cfg, server.RouteDeps{
		Health:            healthSvc,
		SkillsHandler:     skills.NewHandler(vocab),
		ExtractionHandler: extraction.NewHandler(extractor),
		MatchingHandler:   matching.NewHandler(matcher),
		ParseHandler:      parse.NewHandler(parser, extractor),
		InsightHandler:    insight.NewHandler(insightSvc, parser, extractor, matcher),
		DatasetHandler:    dataset.NewHandler(datasetRepo),
	})

	return app, nil
}

func buildCandidateSource(cfg config.Config) extraction.CandidateSource {
	if cfg.NLPDisabled {
		telemetry.Info("bootstrap.nlp_disabled", nil)
		return extraction.Unavailable()
	}
	return extraction.NewProseSource()
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildInsight(ctx context.Context, cfg config.Config) *insight.Service {
	if cfg.GeminiAPIKey == "" {
		telemetry.Warn("bootstrap.gemini_not_configured", nil)
		return insight.NewService(nil)
	}

	gen, err := insight.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		telemetry.Error("bootstrap.gemini_init_failed", map[string]interface{}{
			"error": err.Error(),
		})
		return insight.NewService(nil)
	}
	telemetry.Info("bootstrap.gemini_initialized", map[string]interface{}{
		"model": cfg.GeminiModel,
	})
	return insight.NewService(gen)
}
