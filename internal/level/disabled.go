package level

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

// DisabledName is the table file beside the level images.
const DisabledName = "disabled_materials.txt"

// Disabled maps a level index to the palette slots hidden on it.
type Disabled map[int][]int

// ParseDisabled reads lines of the form "<level>:<slot>,<slot>,...".
// Blank lines are ignored. Malformed lines are skipped and reported
// together in the returned error; the rest of the table is kept.
func ParseDisabled(r io.Reader) (Disabled, error) {
	d := Disabled{}
	var errs []error
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		idx, list, ok := strings.Cut(line, ":")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: missing ':'", n))
			continue
		}
		lv, err := strconv.Atoi(strings.TrimSpace(idx))
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: level: %w", n, err))
			continue
		}
		slots := d[lv]
		for _, f := range strings.Split(list, ",") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: slot: %w", n, err))
				continue
			}
			slots = append(slots, v)
		}
		d[lv] = slots
	}
	if err := sc.Err(); err != nil {
		errs = append(errs, err)
	}
	return d, errors.Join(errs...)
}

// LoadDisabled reads the table from fsys. A missing file yields an empty
// table and no error.
func LoadDisabled(fsys fs.FS, name string) (Disabled, error) {
	f, err := fsys.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return Disabled{}, nil
	}
	if err != nil {
		return Disabled{}, err
	}
	defer f.Close()
	return ParseDisabled(f)
}

// For returns the disabled slots of level as a set.
func (d Disabled) For(level int) map[int]bool {
	set := make(map[int]bool, len(d[level]))
	for _, s := range d[level] {
		set[s] = true
	}
	return set
}
