package catalog

import "strings"

// Node is one searchable entry in the catalog. Nodes describe reusable
// automation building blocks: triggers, actions, and integrations.
type Node struct {
	ID          string
	Name        string
	Type        string
	Description string
	Properties  map[string]string
	Tags        []string
}

// searchText concatenates the fields used for lexical and semantic
// matching. Property values are included so property names found in a
// query can still match.
func (n Node) searchText() string {
	var b strings.Builder
	b.WriteString(n.Name)
	b.WriteString(" ")
	b.WriteString(n.Description)
	for _, tag := range n.Tags {
		b.WriteString(" ")
		b.WriteString(tag)
	}
	return b.String()
}

// metadata converts node attributes to the flat string map carried by
// candidate results.
func (n Node) metadata() map[string]string {
	m := make(map[string]string, len(n.Properties)+2)
	for k, v := range n.Properties {
		m[k] = v
	}
	m["type"] = n.Type
	if len(n.Tags) > 0 {
		m["tags"] = strings.Join(n.Tags, ",")
	}
	return m
}
