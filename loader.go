package tradebook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PortfolioExt is the extension of per-user portfolio files.
const PortfolioExt = ".txt"

// PortfolioPath returns the backing file for owner under dir.
func PortfolioPath(dir, owner string) string {
	return filepath.Join(dir, owner+PortfolioExt)
}

// LoadPortfolio loads the portfolio of owner from its file under dir,
// creating dir if missing. A missing file yields an empty portfolio; the
// file appears on the first save.
func LoadPortfolio(dir, owner, currency string) (*Portfolio, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create portfolio directory %q: %w", dir, err)
	}

	p := NewPortfolio(owner, currency)
	p.path = PortfolioPath(dir, owner)

	f, err := os.Open(p.path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", p.path, err)
	}
	defer f.Close()

	if err := DecodePortfolio(p.path, f, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SavePortfolio rewrites the portfolio's backing file from memory.
func SavePortfolio(p *Portfolio) error {
	if p.path == "" {
		return errors.New("cannot save a portfolio without a backing file")
	}
	if err := os.MkdirAll(filepath.Dir(p.path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", p.path, err)
	}
	f, err := os.Create(p.path)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", p.path, err)
	}
	defer f.Close()

	return EncodePortfolio(f, p)
}
