package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/graphlearn/graphlearn/graph"
	"github.com/pkg/errors"
)

// EdgeRecord is one row of an edges CSV
type EdgeRecord struct {
	Source int32 `csv:"source"`
	Target int32 `csv:"target"`
}

// LabelRecord is one row of a labels CSV
type LabelRecord struct {
	Node  int32 `csv:"node"`
	Label int32 `csv:"label"`
}

// FromCSV builds a dataset from an edges CSV and an optional labels
// CSV. Edges are treated as undirected and mirrored. With no labels
// file every node gets label 0.
func FromCSV(edgesPath, labelsPath string) (*Dataset, error) {
	pairs, err := readEdges(edgesPath)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, errors.Errorf("no edges in %s", edgesPath)
	}

	numNodes := 0
	for _, p := range pairs {
		for _, id := range p {
			if int(id) >= numNodes {
				numNodes = int(id) + 1
			}
		}
	}

	labels := make([]int32, numNodes)
	if labelsPath != "" {
		records, err := readLabels(labelsPath)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			if rec.Node < 0 || int(rec.Node) >= numNodes {
				return nil, errors.Errorf("label for node %d outside graph of %d nodes", rec.Node, numNodes)
			}
			labels[rec.Node] = rec.Label
		}
	}

	g, err := graph.New(numNodes, graph.Undirected(pairs))
	if err != nil {
		return nil, err
	}
	g.Labels = labels
	if err := g.Valid(); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(edgesPath), filepath.Ext(edgesPath))
	return &Dataset{
		Name:       name,
		Graph:      g,
		NumClasses: countClasses(labels),
	}, nil
}

func readEdges(path string) (graph.EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening edges csv")
	}
	defer f.Close()

	var records []EdgeRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, errors.Wrapf(err, "parsing edges csv %s", path)
	}

	pairs := make(graph.EdgeList, 0, len(records))
	for _, rec := range records {
		pairs = append(pairs, [2]int32{rec.Source, rec.Target})
	}
	return pairs, nil
}

func readLabels(path string) ([]LabelRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening labels csv")
	}
	defer f.Close()

	var records []LabelRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, errors.Wrapf(err, "parsing labels csv %s", path)
	}
	return records, nil
}
