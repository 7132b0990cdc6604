package rescale

import (
	"fmt"
	"strings"
)

// Filter selects the resampling filter. The set mirrors the filters of
// common imaging libraries so that results stay comparable.
type Filter int

const (
	Lanczos Filter = iota
	Nearest
	Box
	Bilinear
	Hamming
	Bicubic
	CatmullRom
)

var filterNames = map[Filter]string{
	Lanczos:    "lanczos",
	Nearest:    "nearest",
	Box:        "box",
	Bilinear:   "bilinear",
	Hamming:    "hamming",
	Bicubic:    "bicubic",
	CatmullRom: "catmullrom",
}

func (f Filter) String() string {
	if name, ok := filterNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Filter(%d)", int(f))
}

func ParseFilter(name string) (Filter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range filterNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown resize filter %q", name)
}

// FilterNames lists the accepted names for ParseFilter.
func FilterNames() []string {
	names := make([]string, 0, len(filterNames))
	for f := Lanczos; f <= CatmullRom; f++ {
		names = append(names, filterNames[f])
	}
	return names
}
