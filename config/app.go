package config

// AppConfig is the application configuration read from application.conf.
// A nil field was missing from the file or failed to parse.
type AppConfig struct {
	IndexingStateFilename *string        `json:"indexing_state_filename" yaml:"indexing_state_filename"`
	EmbeddingLlm          *EmbeddingLlm  `json:"embedding_llm" yaml:"embedding_llm"`
	GenerativeLlm         *GenerativeLlm `json:"generative_llm" yaml:"generative_llm"`
	Rag                   *Rag           `json:"rag" yaml:"rag"`
}

// EmbeddingLlm describes the embedding model server.
type EmbeddingLlm struct {
	URL          string `json:"url" yaml:"url"`
	ModelName    string `json:"model_name" yaml:"model_name"`
	APIType      string `json:"api_type" yaml:"api_type"`
	VectorLength int    `json:"vector_length" yaml:"vector_length"`
}

// GenerativeLlm describes the generative model server.
type GenerativeLlm struct {
	URL       string `json:"url" yaml:"url"`
	ModelName string `json:"model_name" yaml:"model_name"`
}

// Rag holds retrieval tuning. The section is optional.
type Rag struct {
	TopKHits        int `json:"top_k_hits" yaml:"top_k_hits"`
	MaxOutputTokens int `json:"max_output_tokens" yaml:"max_output_tokens"`
	ChunkSize       int `json:"chunk_size" yaml:"chunk_size"`
	MaxTokens       int `json:"max_tokens" yaml:"max_tokens"`
}

var EmbeddingLlmSchema = NewSchema("embedding_llm",
	String("url", func(c *EmbeddingLlm, v string) { c.URL = v }),
	String("model_name", func(c *EmbeddingLlm, v string) { c.ModelName = v }),
	String("api_type", func(c *EmbeddingLlm, v string) { c.APIType = v }),
	Int("vector_length", func(c *EmbeddingLlm, v int) { c.VectorLength = v }),
)

var GenerativeLlmSchema = NewSchema("generative_llm",
	String("url", func(c *GenerativeLlm, v string) { c.URL = v }),
	String("model_name", func(c *GenerativeLlm, v string) { c.ModelName = v }),
)

var RagSchema = NewSchema("rag",
	Int("top_k_hits", func(c *Rag, v int) { c.TopKHits = v }),
	Int("max_output_tokens", func(c *Rag, v int) { c.MaxOutputTokens = v }),
	Int("chunk_size", func(c *Rag, v int) { c.ChunkSize = v }),
	Int("max_tokens", func(c *Rag, v int) { c.MaxTokens = v }),
)

// AppSchema is the top-level schema of application.conf.
var AppSchema = NewSchema("app",
	String("indexing_state_filename", func(c *AppConfig, v string) { c.IndexingStateFilename = &v }),
	Record("embedding_llm", EmbeddingLlmSchema, func(c *AppConfig, v EmbeddingLlm) { c.EmbeddingLlm = &v }),
	Record("generative_llm", GenerativeLlmSchema, func(c *AppConfig, v GenerativeLlm) { c.GenerativeLlm = &v }),
	Record("rag", RagSchema, func(c *AppConfig, v Rag) { c.Rag = &v }),
)

// LoadApp loads an AppConfig from the HOCON file at path.
func LoadApp(path string, opts ...Option) (*AppConfig, error) {
	return Load(path, AppSchema, opts...)
}
