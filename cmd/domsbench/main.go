// Command domsbench runs and cross-validates immediate-dominator
// algorithms against DIMACS shortest-path graphs.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dominators/domsbench/cmd/domsbench/cmd"
	"github.com/dominators/domsbench/internal/telemetry"
)

func main() {
	ctx := context.Background()

	shutdown, err := telemetry.Init(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v (continuing without tracing)\n", err)
	}
	defer shutdown(ctx)

	cmd.Execute()
}
