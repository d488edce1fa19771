// Command spanmst solves minimum spanning trees of weighted grid-maze
// graphs over a message-passing cluster of ranks.
package main

import "github.com/joho/godotenv"

// version is stamped by the build; "dev" otherwise.
var version = "dev"

func main() {
	// A .env file feeds the SPANMST_* environment before it is read.
	_ = godotenv.Load()

	Execute(version)
}
