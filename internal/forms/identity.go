// Package forms validates operator input before it is submitted to the
// backend. Fixed forms (login, notifications) use the in-house validation
// package; identity-verification forms are defined at runtime by each
// organization's field configs, so their schema is built dynamically and
// checked with a JSON Schema validator.
package forms

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/crakton/cashworxs-admin-sub000/internal/models"
)

const (
	emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	phonePattern = `^\+?[0-9\s\-()]{10,}$`
)

// BuildIdentitySchema turns an organization's active identity field configs
// into a JSON Schema document. Inactive configs are skipped; fields are
// ordered by their configured sort order.
func BuildIdentitySchema(configs []models.IdentityConfig) ([]byte, error) {
	active := make([]models.IdentityConfig, 0, len(configs))
	for _, cfg := range configs {
		if cfg.Active {
			active = append(active, cfg)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].SortOrder < active[j].SortOrder
	})

	properties := make(map[string]interface{}, len(active))
	var required []string
	for _, cfg := range active {
		prop := map[string]interface{}{
			"title": cfg.Label,
		}
		switch cfg.Type {
		case models.FieldNumber:
			prop["type"] = "number"
		case models.FieldEmail:
			prop["type"] = "string"
			prop["pattern"] = emailPattern
		case models.FieldPhone:
			prop["type"] = "string"
			prop["pattern"] = phonePattern
		case models.FieldText, models.FieldFile:
			prop["type"] = "string"
			prop["minLength"] = 1
		default:
			return nil, fmt.Errorf("unsupported identity field type %q", cfg.Type)
		}
		properties[cfg.Name] = prop
		if cfg.Required {
			required = append(required, cfg.Name)
		}
	}

	schema := map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return json.Marshal(schema)
}

// ValidateIdentityInput checks submitted identity field values against the
// organization's config-derived schema. Returns nil on success, or an error
// listing every violation.
func ValidateIdentityInput(configs []models.IdentityConfig, input map[string]interface{}) error {
	schemaDoc, err := BuildIdentitySchema(configs)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaDoc),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return fmt.Errorf("failed to evaluate identity schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(messages)
	return fmt.Errorf("%s", strings.Join(messages, ", "))
}
