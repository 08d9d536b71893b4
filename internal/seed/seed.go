// Package seed parses the initial wallet table fed to the ledger on stdin.
package seed

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWallets reads whitespace-separated "id balance" pairs, one per line,
// until EOF. Blank lines are skipped. A wallet id repeated on a later line
// overwrites the earlier balance.
func ParseWallets(r io.Reader) (map[string]int64, error) {
	wallets := make(map[string]int64)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"id balance\", got %q", lineNo, line)
		}

		balance, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid balance %q: %w", lineNo, fields[1], err)
		}
		if balance < 0 {
			return nil, fmt.Errorf("line %d: negative balance %d for wallet %q", lineNo, balance, fields[0])
		}

		wallets[fields[0]] = balance
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wallet table: %w", err)
	}

	return wallets, nil
}
