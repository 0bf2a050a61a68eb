package config_test

import (
	"fmt"
	"log"

	"github.com/sagarc03/ragenv/config"
)

func ExampleLoadApp() {
	cfg, err := config.LoadApp("application.conf")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("embedding: %s, generative: %s\n", cfg.EmbeddingLlm.ModelName, cfg.GenerativeLlm.ModelName)
	// Output: embedding: nomic-embed-text, generative: llama3.1:8b
}

func ExampleNewEnum() {
	apiTypes := config.NewEnum("APIType", apiType("ollama"), apiType("openai"))
	v, err := apiTypes.FromName("Ollama")
	fmt.Println(v, err)
	// Output: unknown enum value: "Ollama" is not a valid APIType (valid: ollama, openai)
}

type apiType string

func (a apiType) String() string { return string(a) }
