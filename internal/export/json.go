package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/algotrace/internal/experiment"
	"github.com/san-kum/algotrace/internal/graph"
	"github.com/san-kum/algotrace/internal/sorting"
	"github.com/san-kum/algotrace/internal/traversal"
)

type GraphData struct {
	Vertices []string     `json:"vertices"`
	Edges    []graph.Edge `json:"edges"`
	Order    string       `json:"order"`
}

// Document is the JSON form of one traced run.
type Document struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Family    string             `json:"family"`
	Graph     *GraphData         `json:"graph,omitempty"`
	Start     string             `json:"start,omitempty"`
	Input     []float64          `json:"input,omitempty"`
	Steps     int                `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`

	TraversalSteps []traversal.Step `json:"traversal_steps,omitempty"`
	SortSteps      []sorting.Step   `json:"sort_steps,omitempty"`
}

func NewDocument(res *experiment.Result) Document {
	doc := Document{
		ID:        res.ID,
		Algorithm: res.Algorithm,
		Family:    res.Family.String(),
		Steps:     res.Steps(),
		Metrics:   res.Metrics,
	}

	switch res.Family {
	case experiment.FamilySort:
		doc.Input = res.Input
		doc.SortSteps = res.Sort.Steps()
	case experiment.FamilyTraversal:
		doc.Start = res.Start
		doc.TraversalSteps = res.Traversal.Steps()
		if res.Graph != nil {
			doc.Graph = &GraphData{
				Vertices: res.Graph.Vertices(),
				Edges:    res.Graph.Edges(),
				Order:    res.Graph.Order().String(),
			}
		}
	}
	return doc
}

func WriteJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

// ExportJSON writes doc to path, or to stdout when path is "" or "-".
func ExportJSON(path string, doc Document) error {
	if path == "" || path == "-" {
		return WriteJSON(os.Stdout, doc)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, doc)
}
