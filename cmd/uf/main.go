// Command uf opens a file with the program configured for its extension or MIME type.
package main

import (
	"github.com/MatthiasKunnen/uf/launcher"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, launcher.Default.Open))
}
