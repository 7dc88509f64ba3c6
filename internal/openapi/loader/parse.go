package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"gopkg.in/yaml.v3"
)

// parseSwagger turns raw JSON or YAML bytes into a swagger 2.0 structure. YAML
// payloads are converted to JSON first so both share kin-openapi's unmarshal
// path.
func parseSwagger(data []byte) (*openapi2.T, error) {
	payload := bytes.TrimSpace(data)
	if len(payload) == 0 {
		return nil, errors.New("openapi loader: document payload is empty")
	}

	if payload[0] != '{' {
		converted, err := yamlToJSON(payload)
		if err != nil {
			return nil, fmt.Errorf("openapi loader: convert yaml document: %w", err)
		}
		payload = converted
	}

	var spec openapi2.T
	if err := json.Unmarshal(payload, &spec); err != nil {
		return nil, fmt.Errorf("openapi loader: parse document: %w", err)
	}
	return &spec, nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(stringifyKeys(raw))
}

// stringifyKeys rewrites nested mapping keys to strings so the structure is
// JSON-encodable. yaml.v3 already decodes mappings as map[string]any; the
// map[any]any branch covers non-string keys in hand-written documents.
func stringifyKeys(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = stringifyKeys(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprintf("%v", key)] = stringifyKeys(item)
		}
		return out
	case []any:
		for i, item := range typed {
			typed[i] = stringifyKeys(item)
		}
		return typed
	default:
		return value
	}
}
