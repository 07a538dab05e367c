package dataset

import (
	"github.com/graphlearn/graphlearn/graph"
)

// Karate is the catalog name of Zachary's karate club
const Karate = "karate"

// karateEdges lists each of the 78 undirected friendships once; the
// loader mirrors them.
var karateEdges = graph.EdgeList{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8},
	{0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

// karateCommunities assigns each member to one of the four communities
// found by modularity-based clustering; these are the labels the
// embedding scatter is colored by.
var karateCommunities = []int32{
	1, 1, 1, 1, 3, 3, 3, 1, 0, 1, 3, 1, 1, 1, 0, 0, 3,
	1, 0, 1, 0, 1, 0, 0, 2, 2, 0, 0, 2, 0, 0, 2, 0, 0,
}

// karateFactions marks which side each member took when the club
// split: 0 for the instructor's faction, 1 for the administrator's.
var karateFactions = []int32{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 1, 0,
	0, 1, 0, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
}

// KarateFactions returns the two-faction split of the club, for
// walkthroughs that want binary labels instead of the four
// communities.
func KarateFactions() []int32 {
	out := make([]int32, len(karateFactions))
	copy(out, karateFactions)
	return out
}

func init() {
	register(Karate, func() (*Dataset, error) {
		g, err := graph.New(34, graph.Undirected(karateEdges))
		if err != nil {
			return nil, err
		}
		g.Labels = karateCommunities
		if err := g.Valid(); err != nil {
			return nil, err
		}
		return &Dataset{
			Name:       Karate,
			Graph:      g,
			NumClasses: countClasses(karateCommunities),
		}, nil
	})
}
