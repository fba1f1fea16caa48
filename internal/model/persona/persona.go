package persona

// Label identifies one of the fixed personas a user can consult.
type Label string

const (
	VeteranEngineer  Label = "veteran-engineer"
	FriendlyTeacher  Label = "friendly-teacher"
	GenericAssistant Label = "generic-assistant"
)

// Persona captures the attributes exposed to the frontend.
type Persona struct {
	ID          Label  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Seed provides the personas offered in the selector, in display order.
func Seed() []Persona {
	return []Persona{
		{
			ID:          VeteranEngineer,
			Name:        "頼れるベテランエンジニア",
			Description: "技術用語を交えて簡潔かつ論理的に答える。",
		},
		{
			ID:          FriendlyTeacher,
			Name:        "優しいうさぎの先生",
			Description: "難しい言葉を使わず、絵文字を添えてやさしく教える。",
		},
	}
}

// Default is the persona used when no known label is selected. It is never listed.
func Default() Persona {
	return Persona{
		ID:          GenericAssistant,
		Name:        "アシスタント",
		Description: "汎用のアシスタント。",
	}
}
