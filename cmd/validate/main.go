package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jwebster45206/room-finder/internal/storage"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <building.json|building.yaml|dir>\n", os.Args[0])
		os.Exit(1)
	}

	files, err := collectFiles(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	failed := 0
	for _, filename := range files {
		fmt.Printf("Validating %s...\n", filename)
		report := ValidateFile(filename)
		for _, w := range report.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		if err := report.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
			failed++
			continue
		}
		fmt.Printf("%s is valid!\n", filename)
	}

	if failed > 0 {
		os.Exit(1)
	}
}

// collectFiles returns path itself, or every building file below it when
// path is a directory.
func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && storage.IsBuildingFile(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no building files found in %s", path)
	}
	return files, nil
}
