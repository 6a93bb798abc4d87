package main

import (
	"github.com/onflow/flow-seq/cmd/seqtool/cmd"
)

func main() {
	cmd.Execute()
}
