// SPDX-FileCopyrightText: 2025 The Gemcase Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema reflects the catalog document shape into a JSON Schema,
// the same contract the embedded schema enforces at load time. The tier
// property stays an open string: unrecognized tiers are a rendering
// concern, not a load failure.
func GenerateSchema() ([]byte, error) {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
	}

	type gemEntry struct {
		ID               string `json:"id"                         jsonschema:"minLength=1,description=Unique stable identifier"`
		Name             string `json:"name"                       jsonschema:"minLength=1,description=Display name; searched"`
		Description      string `json:"description,omitempty"      jsonschema:"description=Short human description; searched"`
		Category         string `json:"category"                   jsonschema:"minLength=1,description=Free-form category label; matched case-insensitively"`
		Tier             string `json:"tier"                       jsonschema:"minLength=1,description=Display tier; values outside essentials/toolkit/miscellaneous keep the gem out of every section"`
		Classification   string `json:"workClassification"         jsonschema:"enum=work,enum=work-only,enum=none,description=Visibility under the work-mode toggle"`
		ContentReference string `json:"contentReference,omitempty" jsonschema:"description=File path or URL of the copyable content"`
		ExternalLink     string `json:"externalLink,omitempty"     jsonschema:"description=URL the primary action opens instead of copying"`
		Sensitive        bool   `json:"isSensitive,omitempty"      jsonschema:"description=Mask the description until the gem is selected"`
	}

	type catalogDocument struct {
		Version int        `json:"version,omitempty" jsonschema:"minimum=1,description=Catalog document format version"`
		Gems    []gemEntry `json:"gems"              jsonschema:"description=Gems in display order"`
	}

	schema := reflector.Reflect(&catalogDocument{})
	schema.Title = "Gemcase Catalog"
	schema.Description = "A catalog of gems: snippets, commands, prompts, and links."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
