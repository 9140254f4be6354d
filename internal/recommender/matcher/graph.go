// internal/recommender/matcher/graph.go
package matcher

import (
	"fmt"
	"strings"
)

// Graph is the node-link structure fed to the career graph visualization.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

type Node struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Size   int    `json:"size"`
	Salary string `json:"salary,omitempty"`
	Growth string `json:"growth,omitempty"`
	Region string `json:"region"`
}

// Link connects the user node to a career node. Strength is the raw match
// score so the front end can scale edge thickness.
type Link struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
}

// BuildGraph produces the visualization graph for an assessment: one user
// node plus the top three recommended careers, linked by match strength.
func (m *Matcher) BuildGraph(in AssessmentInput) Graph {
	recs := m.Recommend(in)
	if len(recs) > 3 {
		recs = recs[:3]
	}

	graph := Graph{
		Nodes: []Node{
			{
				ID:     "user",
				Name:   fmt.Sprintf("You (%s)", titleCase(m.mode)),
				Type:   "user",
				Size:   20,
				Region: m.region,
			},
		},
	}

	for i, rec := range recs {
		id := fmt.Sprintf("career_%d", i)
		graph.Nodes = append(graph.Nodes, Node{
			ID:     id,
			Name:   rec.Career.Name,
			Type:   "career",
			Size:   15,
			Salary: rec.Career.MedianSalary,
			Growth: rec.Career.GrowthRate,
			Region: m.region,
		})
		graph.Links = append(graph.Links, Link{
			Source:   "user",
			Target:   id,
			Strength: rec.Score,
		})
	}

	return graph
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
