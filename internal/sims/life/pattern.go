package life

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"life-ca/internal/core"
)

// Parse reads a plaintext pattern and returns its live cells offset by at.
// 'O' and '*' mark live cells, '.' and spaces dead ones; lines starting with
// '!' are comments.
func Parse(r io.Reader, at core.Coord) (LiveSet, error) {
	cells := LiveSet{}
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				cells[at.Add(row, col)] = struct{}{}
			case '.', ' ':
			default:
				return nil, fmt.Errorf("pattern line %d: unexpected %q", row+1, ch)
			}
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	return cells, nil
}

// Fingerprint hashes a live set independently of iteration order. Equal sets
// always share a fingerprint; distinct sets collide only by chance.
func Fingerprint(s LiveSet) uint64 {
	sum := uint64(len(s))
	for c := range s {
		sum += mix(uint64(int64(c.Row))<<32 ^ uint64(uint32(int32(c.Col))))
	}
	return sum
}

// mix is the splitmix64 finalizer.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
