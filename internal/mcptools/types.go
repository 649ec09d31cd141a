package mcptools

// LogMoodInput is the input schema for the log_mood MCP tool.
type LogMoodInput struct {
	Mood    string `json:"mood" jsonschema-description:"Mood emoji (😃 🙂 😐 😔 😭) or word (great, good, okay, down, awful)"`
	Content string `json:"content" jsonschema-description:"Journal text for today"`
}

// LogMoodOutput is the output schema for the log_mood MCP tool.
type LogMoodOutput struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Created bool   `json:"created"`
	Preview string `json:"preview"`
}

// ListEntriesInput is the input schema for the list_entries MCP tool.
type ListEntriesInput struct {
	StartDate string `json:"start_date,omitempty" jsonschema-description:"ISO date lower bound (inclusive)"`
	EndDate   string `json:"end_date,omitempty" jsonschema-description:"ISO date upper bound (inclusive)"`
	Limit     int    `json:"limit,omitempty" jsonschema-description:"Maximum number of results (0 means all)"`
}

// ListEntriesOutput is the output schema for the list_entries MCP tool.
type ListEntriesOutput struct {
	Entries []EntryResult `json:"entries"`
}

// EntryResult is the common output format for entry-related MCP tools.
type EntryResult struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Mood    string `json:"mood"`
	Scale   int    `json:"scale"`
	Preview string `json:"preview"`
}

// WeekSummaryInput is the input schema for the week_summary MCP tool.
type WeekSummaryInput struct {
	Window    string `json:"window,omitempty" jsonschema-description:"Week window policy: iso (Monday to Sunday) or rolling (last seven days)"`
	Reduction string `json:"reduction,omitempty" jsonschema-description:"Weekday reduction: mean or latest"`
}

// WeekSummaryOutput is the output schema for the week_summary MCP tool.
type WeekSummaryOutput struct {
	Window    string      `json:"window"`
	Start     string      `json:"start"`
	End       string      `json:"end"`
	Days      []DayResult `json:"days"`
	Average   float64     `json:"average"`
	Best      string      `json:"best,omitempty"`
	Worst     string      `json:"worst,omitempty"`
	Reduction string      `json:"reduction"`
}

// DayResult is one day of the week_summary layout.
type DayResult struct {
	Date    string  `json:"date"`
	Weekday string  `json:"weekday"`
	Mood    string  `json:"mood,omitempty"`
	Value   float64 `json:"value"`
	Preview string  `json:"preview,omitempty"`
	Today   bool    `json:"today"`
	Missed  bool    `json:"missed"`
}
