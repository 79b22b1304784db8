/*
Copyright © 2025 Daniel C. Brotsky
*/
package main

import "github.com/whisper-project/donna.server.golang/cmd"

func main() {
	cmd.Execute()
}
