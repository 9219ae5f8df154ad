package main

import "github.com/oss-insights/pr-comment-stats/cmd"

func main() {
	cmd.Execute()
}
