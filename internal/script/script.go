package script

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTurn = errors.New("invalid turn")

// Turn is a single coordinate pair fed to the game.
type Turn struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

type document struct {
	Turns []Turn `yaml:"turns"`
}

// Load - reads a YAML file of the form `turns: [{row: 0, col: 0}, ...]`.
func Load(path string) ([]Turn, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read script: %w", err)
	}

	return Decode(data)
}

func Decode(data []byte) ([]Turn, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("can't decode script: %w", err)
	}

	return doc.Turns, nil
}

// Parse - parses a "row col" line as typed on the console.
func Parse(line string) (Turn, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Turn{}, fmt.Errorf("%w: expected \"row col\", got %q", ErrInvalidTurn, line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: row %q", ErrInvalidTurn, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Turn{}, fmt.Errorf("%w: col %q", ErrInvalidTurn, fields[1])
	}

	return Turn{Row: row, Col: col}, nil
}
