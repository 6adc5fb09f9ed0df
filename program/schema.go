package program

// Schema is the JSON schema every program.json must satisfy. The program id
// grammar itself is checked by types.ProgramID.Validate, not here.
const Schema = `
{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "program manifest",
  "type": "object",
  "required": ["program", "version"],
  "properties": {
    "program": {
      "type": "string",
      "minLength": 1
    },
    "version": {
      "type": "string",
      "minLength": 1
    },
    "description": {
      "type": "string"
    },
    "development": {
      "type": "object",
      "required": ["private_key"],
      "properties": {
        "private_key": {
          "type": "string",
          "minLength": 1
        },
        "address": {
          "type": "string"
        }
      }
    },
    "license": {
      "type": "string"
    }
  }
}
`
