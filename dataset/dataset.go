package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/healthroute/priorityroute/core"
)

// Sentinel errors for dataset parsing.
var (
	// ErrEmptyDataset indicates a dataset with no city records.
	ErrEmptyDataset = errors.New("dataset: no cities defined")

	// ErrBadYAML wraps YAML syntax or structure problems.
	ErrBadYAML = errors.New("dataset: malformed YAML")
)

// City is one location record. Prevalence maps to the node priority.
type City struct {
	ID         string  `yaml:"id"`
	State      string  `yaml:"state"`
	Prevalence float64 `yaml:"prevalence"`
	Population int64   `yaml:"population"`
	Lat        float64 `yaml:"lat"`
	Lon        float64 `yaml:"lon"`
}

// Road is one bidirectional road segment record.
type Road struct {
	From       string  `yaml:"from"`
	To         string  `yaml:"to"`
	DistanceKM float64 `yaml:"distance_km"`
}

// Dataset is a parsed city/road file, not yet validated against the
// graph construction rules; validation happens in BuildGraph.
type Dataset struct {
	Cities []City `yaml:"cities"`
	Roads  []Road `yaml:"roads"`
}

// Load parses a YAML dataset from r. Unknown fields are rejected so a
// typo in a record name fails loudly instead of silently dropping data.
func Load(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadYAML, err)
	}
	if len(ds.Cities) == 0 {
		return nil, ErrEmptyDataset
	}

	return &ds, nil
}

// LoadFile parses a YAML dataset from the file at path.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// BuildGraph constructs a core.Graph from the dataset. All cities are
// added before any road, so road records may reference cities in any
// order. The first invalid record aborts the build: the returned error
// wraps the core sentinel (ErrBadPriority, ErrDuplicateEdge, ...) with
// the offending record's position and IDs, and no graph is returned.
//
// Complexity: O(C + R) for C cities and R roads.
func (ds *Dataset) BuildGraph() (*core.Graph, error) {
	g := core.NewGraph()

	for i, c := range ds.Cities {
		err := g.AddNode(core.NodeID(c.ID), c.Prevalence,
			core.WithState(c.State),
			core.WithCoords(c.Lat, c.Lon),
			core.WithPopulation(c.Population),
		)
		if err != nil {
			return nil, fmt.Errorf("dataset: city %d (%q): %w", i, c.ID, err)
		}
	}

	for i, r := range ds.Roads {
		if err := g.AddEdge(core.NodeID(r.From), core.NodeID(r.To), r.DistanceKM); err != nil {
			return nil, fmt.Errorf("dataset: road %d (%s-%s): %w", i, r.From, r.To, err)
		}
	}

	return g, nil
}

// States returns the distinct state labels in the dataset, sorted.
func (ds *Dataset) States() []string {
	seen := make(map[string]struct{}, len(ds.Cities))
	for _, c := range ds.Cities {
		if c.State != "" {
			seen[c.State] = struct{}{}
		}
	}

	states := make([]string, 0, len(seen))
	for s := range seen {
		states = append(states, s)
	}
	sort.Strings(states)

	return states
}

// CitiesInState returns the city IDs belonging to the given state, sorted.
func (ds *Dataset) CitiesInState(state string) []string {
	var ids []string
	for _, c := range ds.Cities {
		if c.State == state {
			ids = append(ids, c.ID)
		}
	}
	sort.Strings(ids)

	return ids
}
