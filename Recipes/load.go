package Recipes

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMalformedRow is wrapped by a LoadError when a row can't be turned into a Recipe.
var ErrMalformedRow = errors.New("malformed recipe row")

// LoadError is returned when a recipe source can't be loaded.
type LoadError struct {
	Path string // empty when loading from a reader
	Line int    // 0 when the source couldn't be read at all
	Err  error
}

func (e *LoadError) Error() string {
	src := e.Path
	if src == "" {
		src = "recipes"
	}
	if e.Line > 0 {
		return fmt.Sprintf("load %s:%d: %v", src, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// parseRow turns name,difficulty,description,mastered into a Recipe. A mastered
// field of "0" means not mastered, anything else means mastered. Columns past
// the fourth are ignored.
func parseRow(fields []string) (Recipe, error) {
	if len(fields) < 4 {
		return Recipe{}, fmt.Errorf("%w: want 4 fields, got %d", ErrMalformedRow, len(fields))
	}
	d, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Recipe{}, fmt.Errorf("%w: difficulty %q: %w", ErrMalformedRow, fields[1], err)
	}
	return Recipe{
		Name:        fields[0],
		Difficulty:  d,
		Description: fields[2],
		Mastered:    fields[3] != "0",
	}, nil
}

// Load adds the recipes of a comma separated source to u. The first row is a
// header and is skipped. A row repeating an earlier name, in u or in the source,
// is skipped. The whole source is parsed before anything is added, so a
// malformed row fails with a *LoadError and leaves u unchanged.
func (u *Book) Load(r io.Reader) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	if _, err := cr.Read(); err == io.EOF {
		return nil
	} else if err != nil {
		return &LoadError{Err: err}
	}
	type row struct {
		rc   Recipe
		line int
	}
	var rows []row
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return &LoadError{Line: pe.Line, Err: err}
			}
			return &LoadError{Err: err}
		}
		line, _ := cr.FieldPos(0)
		rc, err := parseRow(fields)
		if err != nil {
			return &LoadError{Line: line, Err: err}
		}
		rows = append(rows, row{rc, line})
	}
	added, skipped := 0, 0
	for _, rw := range rows {
		if u.AddRecipe(rw.rc) {
			added++
		} else {
			skipped++
			u.logger.Debug("skipping repeated recipe", "name", rw.rc.Name, "line", rw.line)
		}
	}
	u.logger.Info("loaded recipes", "added", added, "skipped", skipped)
	return nil
}

// LoadFile is Load on the file at path.
func (u *Book) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	if err := u.Load(f); err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return err
	}
	return nil
}

// Open returns a Book holding the recipes of the file at path.
func Open(path string) (*Book, error) {
	u := NewBook()
	if err := u.LoadFile(path); err != nil {
		return nil, err
	}
	return u, nil
}
