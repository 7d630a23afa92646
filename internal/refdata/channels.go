package refdata

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/courtrec/archive-migrator/internal/entity"
)

// channelSchema is the contract the channel-user manifest must satisfy
// before any of it is trusted.
const channelSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["archive_name", "contacts"],
    "properties": {
      "archive_name": {"type": "string", "minLength": 1},
      "contacts": {
        "type": "array",
        "items": {
          "type": "object",
          "required": ["email"],
          "properties": {
            "email": {"type": "string", "minLength": 3},
            "first_name": {"type": "string"},
            "last_name": {"type": "string"}
          }
        }
      }
    }
  }
}`

type channelEntry struct {
	ArchiveName string           `json:"archive_name"`
	Contacts    []entity.Contact `json:"contacts"`
}

// LoadChannels reads the archive-name -> share contacts manifest, validating
// it against the embedded schema first. Keys are lower-cased; contact emails
// are lower-cased and trimmed.
func LoadChannels(path string) (map[string][]entity.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channels file: %w", err)
	}
	if err := validateChannelJSON(data); err != nil {
		return nil, err
	}

	var entries []channelEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshal channels file: %w", err)
	}

	channels := make(map[string][]entity.Contact, len(entries))
	for _, e := range entries {
		contacts := make([]entity.Contact, 0, len(e.Contacts))
		for _, c := range e.Contacts {
			c.Email = strings.ToLower(strings.TrimSpace(c.Email))
			if c.Email == "" {
				continue
			}
			contacts = append(contacts, c)
		}
		channels[strings.ToLower(strings.TrimSpace(e.ArchiveName))] = contacts
	}
	return channels, nil
}

func validateChannelJSON(data []byte) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("channels.json", strings.NewReader(channelSchema)); err != nil {
		return fmt.Errorf("add channel schema: %w", err)
	}
	schema, err := compiler.Compile("channels.json")
	if err != nil {
		return fmt.Errorf("compile channel schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("channels file is not valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("channels file does not match schema: %w", err)
	}
	return nil
}
