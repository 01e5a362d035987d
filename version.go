package proofview

import _ "embed"

// Version is the release version of proofview.
//
//go:embed VERSION
var Version string
