package main

import "focusrpg/cmd/frpg/root"

func main() {
	root.Execute()
}
