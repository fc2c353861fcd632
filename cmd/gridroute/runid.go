package main

import "github.com/gofrs/uuid"

// runNamespace anchors every run ID to the same UUID v5 namespace, so two
// invocations on the same input path always log the same run ID (useful
// for correlating retried runs in aggregated logs).
var runNamespace = uuid.Must(uuid.FromString("9b1f9c3a-1e3d-4a7e-9e8a-5f2a7d6c1b44"))

// runID derives a reproducible run identifier from the input file path.
func runID(inputPath string) uuid.UUID {
	return uuid.NewV5(runNamespace, inputPath)
}
