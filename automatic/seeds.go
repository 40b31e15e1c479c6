package automatic

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lukechampine.com/frand"
)

// GenerateSeeds creates n random game seeds.
func GenerateSeeds(n int) []uint32 {
	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = uint32(frand.Uint64n(1 << 32))
	}
	return seeds
}

// SaveSeeds writes seeds to a file, one per line, so that a batch of games
// can be replayed.
func SaveSeeds(seeds []uint32, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create seed file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.WriteString("# Golden Word game seeds\n"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, seed := range seeds {
		if _, err := writer.WriteString(strconv.FormatUint(uint64(seed), 10) + "\n"); err != nil {
			return fmt.Errorf("failed to write seed %d: %w", i, err)
		}
	}
	return writer.Flush()
}

// LoadSeeds reads seeds from a file written by SaveSeeds. Blank lines and
// lines starting with # are skipped.
func LoadSeeds(path string) ([]uint32, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer file.Close()

	var seeds []uint32
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seed, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("failed to parse seed at line %d: %w", lineNum, err)
		}
		seeds = append(seeds, uint32(seed))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	return seeds, nil
}
