// Command render converts chat message text to display HTML. Input comes
// from a file argument or stdin; the result is written to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-conversations/render"
)

func main() {
	var (
		filePath = flag.String("file", "", "Input file to render (defaults to stdin)")
		detect   = flag.Bool("detect", false, "Only report whether the input is already HTML")
	)

	flag.Parse()

	source, err := readInput(*filePath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	if *detect {
		if render.IsHTML(source) {
			fmt.Fprintln(os.Stdout, "html")
		} else {
			fmt.Fprintln(os.Stdout, "markdown")
		}
		return
	}

	fmt.Fprintln(os.Stdout, render.Render(source))
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
