package dualmap

import (
	"strings"

	"github.com/rotisserie/eris"
)

type Mode string

const (
	Yield      Mode = "yield"
	DotDensity Mode = "dotdensity"
	Bivariate  Mode = "bivariate"
)

// ErrUnknownMode is returned for a mode outside Yield, DotDensity and
// Bivariate.
var ErrUnknownMode = eris.New("dualmap: unknown mode")

// ParseMode parses a mode selector value.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Yield, DotDensity, Bivariate:
		return m, nil
	}
	return "", eris.Wrapf(ErrUnknownMode, "%q", s)
}

// Attribute is a statistic recorded per year.
type Attribute string

const (
	Area       Attribute = "Area"
	Production Attribute = "Prod"
	YieldAttr  Attribute = "Yield"
)

// FieldName returns the attribute column for year, e.g. Area_2020. The
// year is not validated.
func FieldName(a Attribute, year string) string {
	return string(a) + "_" + year
}
