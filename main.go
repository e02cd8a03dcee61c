// Command slugline keeps a slug line at the top of Python source files.
package main

import "github.com/mouse-blink/slugline/cmd"

func main() {
	cmd.Execute()
}
