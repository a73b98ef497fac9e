// passmith — policy-driven password and passphrase generator.
package main

import "github.com/avezina/passmith/internal/cli"

func main() {
	cli.Execute()
}
