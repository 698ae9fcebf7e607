package intent

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/yourusername/jarvis-assistant/models"
)

// SemanticConfig holds connection settings for the embedding classifier
type SemanticConfig struct {
	Host       string
	Port       int
	Collection string
	APIKey     string
	Model      openai.EmbeddingModel
	Dimension  uint64
}

// SemanticClassifier scores intent by cosine similarity between the query
// embedding and per-category exemplar embeddings stored in Qdrant. It is an
// optional drop-in for the lexical classifier behind the same interface.
type SemanticClassifier struct {
	conn        *grpc.ClientConn
	points      qdrant.PointsClient
	collections qdrant.CollectionsClient
	embedder    *openai.Client
	config      SemanticConfig
	logger      *zap.Logger
}

// categoryExemplars seed one representative phrase per intent category.
// Indexed once at startup; the classifier searches against these vectors.
var categoryExemplars = map[string]string{
	string(models.CategorySystemInfo):      "show system hardware info cpu memory ram disk usage",
	string(models.CategoryFileManagement):  "create open delete rename files folders and applications",
	string(models.CategoryCodeDevelopment): "write code program a function class script or debug errors",
	string(models.CategoryWebSearch):       "search the web for information weather news and answers",
	string(models.CategoryAutomation):      "control keyboard mouse clicks volume and automation macros",
	string(models.CategoryWriting):         "write text documents notes letters emails and drafts",
	string(models.CategoryMultimedia):      "play music videos audio images photos and screenshots",
	string(models.CategoryLearning):        "learn study tutorials courses lessons and explanations",
	string(models.CategoryEntertainment):   "tell jokes stories games quizzes and fun facts",
	string(models.CategoryProductivity):    "schedule tasks reminders meetings todos and planning",
	string(models.CategoryCommunication):   "send emails messages calls and chat replies",
	string(models.CategoryUtilities):       "current time date calculator unit conversion passwords cleanup",
}

// NewSemanticClassifier connects to Qdrant and prepares the exemplar collection
func NewSemanticClassifier(cfg SemanticConfig, logger *zap.Logger) (*SemanticClassifier, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding API key not provided")
	}
	if cfg.Model == "" {
		cfg.Model = openai.SmallEmbedding3
	}
	if cfg.Dimension == 0 {
		cfg.Dimension = 1536
	}
	if cfg.Collection == "" {
		cfg.Collection = "intent_exemplars"
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to qdrant at %s: %w", addr, err)
	}

	sc := &SemanticClassifier{
		conn:        conn,
		points:      qdrant.NewPointsClient(conn),
		collections: qdrant.NewCollectionsClient(conn),
		embedder:    openai.NewClient(cfg.APIKey),
		config:      cfg,
		logger:      logger,
	}
	return sc, nil
}

// Index embeds every category exemplar and upserts it into the collection.
// Call once at startup before the first Classify.
func (sc *SemanticClassifier) Index(ctx context.Context) error {
	if err := sc.ensureCollection(ctx); err != nil {
		return err
	}

	categories := make([]string, 0, len(categoryExemplars))
	texts := make([]string, 0, len(categoryExemplars))
	for category, exemplar := range categoryExemplars {
		categories = append(categories, category)
		texts = append(texts, exemplar)
	}

	resp, err := sc.embedder.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: sc.config.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to embed exemplars: %w", err)
	}
	if len(resp.Data) != len(categories) {
		return fmt.Errorf("expected %d embeddings, got %d", len(categories), len(resp.Data))
	}

	points := make([]*qdrant.PointStruct, 0, len(categories))
	for i, category := range categories {
		points = append(points, &qdrant.PointStruct{
			Id: &qdrant.PointId{PointIdOptions: &qdrant.PointId_Num{Num: uint64(i + 1)}},
			Vectors: &qdrant.Vectors{VectorsOptions: &qdrant.Vectors_Vector{
				Vector: &qdrant.Vector{Data: resp.Data[i].Embedding},
			}},
			Payload: map[string]*qdrant.Value{
				"category": {Kind: &qdrant.Value_StringValue{StringValue: category}},
			},
		})
	}

	_, err = sc.points.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: sc.config.Collection,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert exemplars: %w", err)
	}

	sc.logger.Info("Indexed intent exemplars", zap.Int("categories", len(categories)))
	return nil
}

// Classify embeds the normalized query and converts exemplar similarity into
// intent scores. Similarity below zero is dropped, matching the lexical
// classifier's omit-zero contract.
func (sc *SemanticClassifier) Classify(ctx context.Context, query string) (models.IntentScores, error) {
	resp, err := sc.embedder.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{Normalize(query)},
		Model: sc.config.Model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	limit := uint64(len(categoryExemplars))
	search, err := sc.points.Search(ctx, &qdrant.SearchPoints{
		CollectionName: sc.config.Collection,
		Vector:         resp.Data[0].Embedding,
		Limit:          limit,
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("exemplar search failed: %w", err)
	}

	scores := make(models.IntentScores)
	for _, point := range search.GetResult() {
		payload := point.GetPayload()
		value, ok := payload["category"]
		if !ok {
			continue
		}
		category := value.GetStringValue()
		score := float64(point.GetScore())
		if score <= 0 || category == "" {
			continue
		}
		if score > 1.0 {
			score = 1.0
		}
		scores[category] = score
	}
	return scores, nil
}

// Close releases the Qdrant connection
func (sc *SemanticClassifier) Close() error {
	return sc.conn.Close()
}

func (sc *SemanticClassifier) ensureCollection(ctx context.Context) error {
	_, err := sc.collections.Get(ctx, &qdrant.GetCollectionInfoRequest{
		CollectionName: sc.config.Collection,
	})
	if err == nil {
		return nil
	}

	_, err = sc.collections.Create(ctx, &qdrant.CreateCollection{
		CollectionName: sc.config.Collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     sc.config.Dimension,
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection %s: %w", sc.config.Collection, err)
	}
	return nil
}
