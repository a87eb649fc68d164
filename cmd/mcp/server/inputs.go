package server

// Tool inputs. The SDK infers each tool's JSON Schema from these structs;
// pointer fields are optional.

type listDreamsInput struct {
	Page     *int `json:"page,omitempty"      jsonschema:"Page number (1-indexed, default 1)"`
	PageSize *int `json:"page_size,omitempty" jsonschema:"Number of dreams per page (default 20, max 100)"`
}

type dreamIDInput struct {
	DreamID string `json:"dream_id" jsonschema:"The ID of the dream"`
}

type recordDreamInput struct {
	Title string `json:"title" jsonschema:"Short title for the dream"`
	Body  string `json:"body"  jsonschema:"What happened in the dream"`
}

type similarDreamsInput struct {
	DreamID string `json:"dream_id"        jsonschema:"The ID of the dream to compare against"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"Maximum number of dreams to return (default 5, max 20)"`
}

type patternsInput struct{}

type streaksInput struct {
	TZ *string `json:"tz,omitempty" jsonschema:"IANA time zone deciding calendar days, e.g. Europe/London. Defaults to the server's zone."`
}
