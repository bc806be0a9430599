// Command odrgen generates C++ headers from the OpenDRIVE XML schema.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/CognitoIQ/odrgen/cmd/odrgen/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Args[1:], os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
