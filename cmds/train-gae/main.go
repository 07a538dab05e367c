package main

import (
	"log"
	"math/rand"
	"os"

	arg "github.com/alexflint/go-arg"
	"github.com/gocarina/gocsv"
	"github.com/graphlearn/graphlearn/dataset"
	"github.com/graphlearn/graphlearn/gae"
	"github.com/graphlearn/graphlearn/viz"
	"github.com/pkg/errors"
)

type args struct {
	Dataset  string `help:"catalog dataset name"`
	Edges    string `help:"edges csv for a custom graph, overrides --dataset"`
	Labels   string `help:"labels csv for a custom graph"`
	URL      string `help:"remote edges csv, downloaded once and cached"`
	CacheDir string `help:"cache dir for fetched datasets"`

	Config string `help:"yaml training config"`
	Epochs int    `help:"override the config's epoch count"`
	Seed   int64  `help:"random seed for init and negative sampling"`

	Plot  string `help:"embedding scatter output path"`
	CSV   string `help:"also write the embeddings to this csv"`
	Quiet bool   `help:"suppress the progress bar"`
}

type embeddingRecord struct {
	Node  int32   `csv:"node"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Label int32   `csv:"label"`
}

func loadDataset(a args) (*dataset.Dataset, error) {
	switch {
	case a.URL != "":
		path, err := dataset.Fetch(a.CacheDir, a.URL)
		if err != nil {
			return nil, err
		}
		return dataset.FromCSV(path, a.Labels)
	case a.Edges != "":
		return dataset.FromCSV(a.Edges, a.Labels)
	default:
		return dataset.Load(a.Dataset)
	}
}

func main() {
	a := args{
		Dataset:  dataset.Karate,
		CacheDir: "dataset-cache",
		Seed:     1234,
		Plot:     "embeddings.png",
	}
	arg.MustParse(&a)

	cfg := gae.DefaultConfig()
	if a.Config != "" {
		var err error
		cfg, err = gae.LoadConfig(a.Config)
		if err != nil {
			log.Fatalln(err)
		}
	}
	if a.Epochs > 0 {
		cfg.Epochs = a.Epochs
	}

	d, err := loadDataset(a)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("training on %s: %d nodes, %d directed edges, %d classes",
		d.Name, d.Graph.NumNodes, len(d.Graph.Edges), d.NumClasses)

	res, err := gae.Train(d.Graph, cfg, gae.TrainParams{
		Rand:     rand.New(rand.NewSource(a.Seed)),
		Progress: !a.Quiet,
	})
	if err != nil {
		log.Fatalln(err)
	}
	log.Println(res.Summary())

	if cfg.OutputDim == 2 {
		if err := viz.Scatter(a.Plot, res.Embeddings, d.Graph.Labels); err != nil {
			log.Fatalln(err)
		}
		log.Printf("wrote %s", a.Plot)
	} else {
		log.Printf("output dim is %d, skipping the 2-D scatter", cfg.OutputDim)
	}

	if a.CSV != "" {
		if err := writeEmbeddings(a.CSV, d, res); err != nil {
			log.Fatalln(err)
		}
		log.Printf("wrote %s", a.CSV)
	}
}

func writeEmbeddings(path string, d *dataset.Dataset, res *gae.Result) error {
	if _, c := res.Embeddings.Dims(); c != 2 {
		return errors.Errorf("embedding csv assumes 2-D embeddings, got %d dims", c)
	}
	records := make([]embeddingRecord, d.Graph.NumNodes)
	for i := range records {
		records[i] = embeddingRecord{
			Node:  int32(i),
			X:     res.Embeddings.At(i, 0),
			Y:     res.Embeddings.At(i, 1),
			Label: d.Graph.Labels[i],
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(&records, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
