package cmd

import "github.com/dominators/domsbench/internal/artifacts"

// newArtifactStore builds the artifact store configured by the loaded
// config's Storage section, used by --publish to ship idom dumps to
// local disk or COS.
func newArtifactStore() (artifacts.Storage, error) {
	return artifacts.New(&cfg.Storage)
}
