package main

import "github.com/CxxxxDxxxF/gotlockz-bot/process/sanitize"

func main() {
	sanitize.Run()
}
