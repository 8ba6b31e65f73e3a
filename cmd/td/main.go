package main

import (
	"fmt"
	"os"

	"todo/internal/cli"
)

func main() {
	// Pick how stores are created based on TD_ENV
	env := getEnvironment()
	factory := NewStoreFactory(env)

	root := cli.NewRootCommand(
		cli.WithStoreFactory(factory.CreateStores),
		cli.WithOutput(os.Stdout, os.Stderr),
	)

	err := root.Execute()
	if closeErr := root.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
