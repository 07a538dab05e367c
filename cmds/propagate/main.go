package main

import (
	"fmt"
	"log"

	arg "github.com/alexflint/go-arg"
	"github.com/graphlearn/graphlearn/dataset"
	"github.com/graphlearn/graphlearn/graph"
	"gonum.org/v1/gonum/mat"
)

func main() {
	args := struct {
		Dataset string `help:"catalog dataset to aggregate over"`
	}{
		Dataset: dataset.Cycle5,
	}
	arg.MustParse(&args)

	d, err := dataset.Load(args.Dataset)
	if err != nil {
		log.Fatalln(err)
	}

	x := d.Graph.Features()
	out, err := graph.MeanAggregate(x, d.Graph.Edges)
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%s: %d nodes, %d directed edges\n\n", d.Name, d.Graph.NumNodes, len(d.Graph.Edges))
	fmt.Printf("features before message passing:\n%v\n\n", mat.Formatted(x))
	fmt.Printf("features after one mean-aggregation step:\n%v\n", mat.Formatted(out))
}
