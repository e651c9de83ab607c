package azureopenai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	openaiapi "github.com/sashabaranov/go-openai"

	"github.com/gradientm/gradientm-chat/internal/service/chat"
)

const apiVersion = "2025-01-01-preview"

// Fixed decoding parameters; every request uses the same ones.
const (
	maxTokens   = 800
	temperature = 0.7
	topP        = 0.95
)

// Config carries the OpenAI deployment and the search index that
// grounds its replies.
type Config struct {
	Endpoint       string
	Deployment     string
	APIKey         string
	SearchEndpoint string
	SearchIndex    string
	SearchKey      string
}

// Client calls the Azure OpenAI chat-completions REST endpoint with the
// azure_search "on your data" extension. go-openai supplies the message
// and response types, but its request type cannot carry the
// data_sources block, so the body is assembled here.
type Client struct {
	cfg        Config
	httpClient *http.Client
	url        string
}

// NewClient builds a client bound to one deployment. No request timeout
// is set; callers inherit whatever the transport provides.
func NewClient(cfg Config) *Client {
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		url: fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
			endpoint, url.PathEscape(cfg.Deployment), apiVersion),
	}
}

type completionRequest struct {
	Messages         []openaiapi.ChatCompletionMessage `json:"messages"`
	MaxTokens        int                               `json:"max_tokens"`
	Temperature      float32                           `json:"temperature"`
	TopP             float32                           `json:"top_p"`
	FrequencyPenalty float32                           `json:"frequency_penalty"`
	PresencePenalty  float32                           `json:"presence_penalty"`
	DataSources      []dataSource                      `json:"data_sources"`
}

type dataSource struct {
	Type       string           `json:"type"`
	Parameters searchParameters `json:"parameters"`
}

type searchParameters struct {
	Endpoint              string            `json:"endpoint"`
	IndexName             string            `json:"index_name"`
	SemanticConfiguration string            `json:"semantic_configuration"`
	QueryType             string            `json:"query_type"`
	FieldsMapping         map[string]string `json:"fields_mapping"`
	InScope               bool              `json:"in_scope"`
	Filter                *string           `json:"filter"`
	Strictness            int               `json:"strictness"`
	TopNDocuments         int               `json:"top_n_documents"`
	Authentication        authentication    `json:"authentication"`
}

type authentication struct {
	Type string `json:"type"`
	Key  string `json:"key"`
}

// Complete sends the full message history and returns the first
// candidate's text. An empty choice list is an error.
func (c *Client) Complete(ctx context.Context, messages []chat.Message) (string, error) {
	body := completionRequest{
		Messages:    toAPIMessages(messages),
		MaxTokens:   maxTokens,
		Temperature: temperature,
		TopP:        topP,
		DataSources: []dataSource{{
			Type: "azure_search",
			Parameters: searchParameters{
				Endpoint:              c.cfg.SearchEndpoint,
				IndexName:             c.cfg.SearchIndex,
				SemanticConfiguration: "default",
				QueryType:             "simple",
				FieldsMapping:         map[string]string{},
				InScope:               true,
				Strictness:            3,
				TopNDocuments:         5,
				Authentication:        authentication{Type: "api_key", Key: c.cfg.SearchKey},
			},
		}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed openaiapi.ChatCompletionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func toAPIMessages(msgs []chat.Message) []openaiapi.ChatCompletionMessage {
	res := make([]openaiapi.ChatCompletionMessage, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, openaiapi.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return res
}
