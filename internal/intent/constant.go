package intent

import "time"

// Log prefixes
const (
	logPrefixInterpret = "internal.intent.InterpretCommand"
	logPrefixConverse  = "internal.intent.Converse"
	logPrefixAnalyze   = "internal.intent.AnalyzeImage"
	logPrefixSuggest   = "internal.intent.SuggestAutomation"
)

// Generation settings
const (
	interpretTemperature = 0.1
	converseTemperature  = 0.7
	analyzeTemperature   = 0.4
	suggestTemperature   = 0.3

	// maxContextEntities caps the device list sent upstream.
	maxContextEntities = 300

	defaultTimeout = 30 * time.Second
)

// Prompts
const (
	promptInterpretSystem = `You control a Home Assistant installation. Translate the user's command into service calls.

Only use entity ids from the device list. A command may need zero, one or several actions.
If the user is chatting rather than commanding, return an empty actions list and answer in "reply".

Respond with JSON only:
{
  "actions": [
    {"entity_id": "light.living_room", "domain": "light", "service": "turn_on", "parameters": {"brightness_pct": 50}}
  ],
  "reply": "short confirmation for the user"
}`

	promptDevicesHeader = "Available devices (entity_id [state] \"name\"):\n"

	promptConverseSystem = `You are a friendly smart home assistant for a Home Assistant installation. Answer briefly and helpfully. Do not claim to have performed actions.`

	promptAnalyzeSystem = `You analyze still images from home security and smart home cameras. Describe what is relevant to the user's question. Be concise and factual.`

	promptAnalyzeTemplate = "Camera: %s\nQuestion: %s"

	promptSuggestSystem = `You design Home Assistant automations. Given a trigger description and an action description, produce one automation.

Use Home Assistant automation syntax for each trigger, condition and action entry (for example {"platform": "state", "entity_id": "binary_sensor.door", "to": "on"} and {"service": "light.turn_on", "target": {"entity_id": "light.hall"}}).

Respond with JSON only:
{
  "name": "short automation name",
  "description": "one sentence",
  "trigger": [ ... ],
  "condition": [ ... ],
  "action": [ ... ]
}`

	promptSuggestTemplate = "Trigger: %s\nAction: %s"
)

// JSON schemas for structured model output.
const (
	interpretationSchema = `{
  "type": "object",
  "required": ["actions"],
  "properties": {
    "actions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["entity_id", "domain", "service"],
        "properties": {
          "entity_id": {"type": "string", "minLength": 1},
          "domain": {"type": "string", "minLength": 1},
          "service": {"type": "string", "minLength": 1},
          "parameters": {"type": ["object", "null"]}
        }
      }
    },
    "reply": {"type": ["string", "null"]}
  }
}`

	suggestionSchema = `{
  "type": "object",
  "required": ["name", "trigger", "action"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": ["string", "null"]},
    "trigger": {"type": "array", "minItems": 1, "items": {"type": "object"}},
    "condition": {"type": ["array", "null"], "items": {"type": "object"}},
    "action": {"type": "array", "minItems": 1, "items": {"type": "object"}}
  }
}`
)
