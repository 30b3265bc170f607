package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cbegin/holdmusic"
	intwav "github.com/cbegin/holdmusic/internal/wavfile"
)

const outputName = "hold-music.wav"

func main() {
	var (
		outPath = flag.String("out", "", "output path (default: hold-music.wav next to the executable)")
		workers = flag.Int("workers", 0, "synthesis goroutines (0 = GOMAXPROCS, 1 = sequential)")
	)
	flag.Parse()

	path, err := resolveOutputPath(*outPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg := holdmusic.DefaultConfig()
	fmt.Println("Generating dark synthwave hold music...")
	if err := holdmusic.WriteFile(path, cfg, holdmusic.RenderOptions{Workers: *workers}); err != nil {
		log.Fatal(err)
	}
	info, err := intwav.Inspect(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Written: %s (%d bytes, %.1fs)\n", path, info.Size, info.Duration.Seconds())
}

// resolveOutputPath places the file beside the running binary unless an
// explicit path was given.
func resolveOutputPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), outputName), nil
}
