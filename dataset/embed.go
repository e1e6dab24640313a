package dataset

import (
	"bytes"
	_ "embed"
)

//go:embed data/nigeria.yaml
var nigeriaYAML []byte

// Default returns the embedded sample dataset of Nigerian cities and
// roads. The returned Dataset is freshly parsed on every call, so
// callers may mutate it freely before building a graph.
func Default() (*Dataset, error) {
	return Load(bytes.NewReader(nigeriaYAML))
}
