package catalog

// bankSchemaJSON is the JSON Schema every imported question bank must pass.
// Per-question id/domain checks stay lenient here; entries missing either
// field are dropped during New rather than failing the whole bank.
const bankSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["questions"],
  "properties": {
    "bank": { "type": "string" },
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": { "type": "string" },
          "domain": { "type": "string" },
          "difficulty": { "type": "string" },
          "text": { "type": "string" },
          "choices": {
            "type": "array",
            "items": { "type": "string" },
            "maxItems": 6
          },
          "answer_index": { "type": "integer", "minimum": 0 }
        }
      }
    }
  }
}`
