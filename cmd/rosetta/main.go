// Command rosetta resolves styled messages from a directory of locale
// message packs.
package main

func main() {
	Execute()
}
