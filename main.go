package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"sunday-pay/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		if !errors.Is(err, cli.ErrCalculationFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
