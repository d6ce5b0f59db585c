package main

import "github.com/nataschneider2001/life-Os/cmd/lifeos/root"

func main() {
	root.Execute()
}
