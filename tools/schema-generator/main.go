package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/grovetools/tocfmt/config"
	"github.com/invopop/jsonschema"
)

func main() {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "tocfmt Configuration"
	schema.Description = "Schema for the 'tocfmt' extension in grove.yml or a standalone tocfmt config file."

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}

	if err := os.WriteFile("tocfmt.schema.json", data, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated tocfmt schema at tocfmt.schema.json")
}
