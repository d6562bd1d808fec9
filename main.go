package main

import "sitesearch/cmd"

func main() {
	cmd.Execute()
}
