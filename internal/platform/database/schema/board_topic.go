package schema

// BoardTopicTable represents the 'topics' table
type BoardTopicTable struct {
	Table       string
	Slug        string
	Description string
}

// BoardTopic is the schema definition for topics
var BoardTopic = BoardTopicTable{
	Table:       "topics",
	Slug:        "slug",
	Description: "description",
}

func (t BoardTopicTable) Columns() []string {
	return []string{t.Slug, t.Description}
}
