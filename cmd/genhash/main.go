// genhash prints a bcrypt hash for a password, for seeding the Users table by hand.
// Uso: go run ./cmd/genhash [-cost 10] <password>
package main

import (
	"flag"
	"fmt"
	"os"

	"distrital4/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: genhash [-cost N] <password>")
		os.Exit(2)
	}

	h, err := auth.NewPasswordHasher(*cost).Hash(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "bcrypt error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(h)
}
