package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gifsalad/gifsalad"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) == 1 || len(os.Args) > 3 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/frames input-file [output-dir]")
		os.Exit(1)
	}
	output_dir := os.Args[1] + "-frames"
	if len(os.Args) == 3 {
		output_dir = os.Args[2]
	}
	timing, err := gifsalad.ReadTiming(os.Args[1])
	if err != nil {
		return
	}
	frames, err := gifsalad.ExtractFrames(os.Args[1], output_dir)
	if err != nil {
		return
	}
	b, err := json.MarshalIndent(map[string]any{"timing": timing, "frames": frames}, "", "  ")
	if err != nil {
		return
	}
	if err = os.WriteFile(filepath.Join(output_dir, "metadata.json"), b, 0o666); err != nil {
		return
	}
	fmt.Printf("%d frames decoded to %s\n", len(frames), output_dir)
}
