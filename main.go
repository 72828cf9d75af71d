package main

import "github.com/datareef/reconcile-cli/cmd"

func main() {
	cmd.Execute()
}
