package main

import "github.com/ekazakova/dataset-packager/cmd/dataset-packager/cmd"

func main() {
	cmd.Execute()
}
