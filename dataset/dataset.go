// Package dataset bundles the small fixed graphs the walkthroughs run
// on, plus CSV import for user-supplied graphs and a disk-cached
// remote fetch.
package dataset

import (
	"sort"

	"github.com/graphlearn/graphlearn/graph"
	"github.com/pkg/errors"
)

// Dataset is a named graph with ground-truth class labels
type Dataset struct {
	Name       string
	Graph      *graph.Graph
	NumClasses int
}

type builder func() (*Dataset, error)

var catalog = make(map[string]builder)

func register(name string, b builder) {
	catalog[name] = b
}

// Load returns the named dataset from the catalog
func Load(name string) (*Dataset, error) {
	b, ok := catalog[name]
	if !ok {
		return nil, errors.Errorf("unknown dataset %s, have %v", name, Names())
	}
	d, err := b()
	if err != nil {
		return nil, errors.Wrapf(err, "building dataset %s", name)
	}
	return d, nil
}

// Names lists the registered dataset names
func Names() []string {
	var names []string
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func countClasses(labels []int32) int {
	classes := make(map[int32]bool)
	for _, l := range labels {
		classes[l] = true
	}
	return len(classes)
}
