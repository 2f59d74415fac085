package fuzztests

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16  // 64 KiB
)

var edgeSeeds = []string{
	"",
	" ",
	"/",
	"_^",
	"^^^",
	"a/",
	"x_",
	"()",
	"(((",
	")))",
	"(]",
	"{:",
	`"`,
	`"a`,
	`""`,
	"\t\n\r\x00",
	"\xff\xfe",
	".5.5.",
	"1..",
	"[[1,2],[3]]",
	"[[|,|],[|,|]]",
	"root root root",
	"frac frac",
	"color(",
	"**** //// <<<<",
}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	for _, s := range edgeSeeds {
		f.Add([]byte(s))
	}
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// каждая непустая строка *.am файла — отдельный seed
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error { //nolint:errcheck
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".am" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for _, line := range bytes.Split(src, []byte{'\n'}) {
			if len(bytes.TrimSpace(line)) > 0 {
				f.Add(clampSeed(line))
			}
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) string {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return string(input)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input string, maxLen int) string {
	if len(input) <= maxLen {
		return input
	}
	return input[:maxLen] + "..."
}
