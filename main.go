// slingshot is a single-binary development chain: the same executable runs
// the node and drives it from the command line.
package main

import (
	cmdp "github.com/slingshotlabs/go-slingshot/cmd"
	"github.com/slingshotlabs/go-slingshot/node"
)

var (
	version string
	commit  string
	branch  string
)

func main() {
	cmdp.Version = version
	cmdp.Commit = commit
	cmdp.Branch = branch

	root := cmdp.RootCmd()
	root.AddCommand(node.GetCommand())
	cmdp.Execute(root)
}
