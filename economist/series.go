package economist

import (
	"sort"
	"strings"
)

// seriesCodes maps short symbolic names to FRED series codes.
// It is never mutated after package initialization.
var seriesCodes = map[string]string{
	"GDP":                   "GDP",
	"REAL_GDP":              "GDPC1",
	"GDP_GROWTH":            "A191RL1Q225SBEA",
	"UNEMPLOYMENT":          "UNRATE",
	"NONFARM_PAYROLLS":      "PAYEMS",
	"INITIAL_CLAIMS":        "ICSA",
	"CPI":                   "CPIAUCSL",
	"CORE_CPI":              "CPILFESL",
	"PCE":                   "PCE",
	"CORE_PCE":              "PCEPILFE",
	"PPI":                   "PPIACO",
	"FED_FUNDS":             "FEDFUNDS",
	"TREASURY_2Y":           "DGS2",
	"TREASURY_10Y":          "DGS10",
	"TREASURY_30Y":          "DGS30",
	"YIELD_CURVE":           "T10Y2Y",
	"MORTGAGE_30Y":          "MORTGAGE30US",
	"M2":                    "M2SL",
	"INDUSTRIAL_PRODUCTION": "INDPRO",
	"RETAIL_SALES":          "RSAFS",
	"HOUSING_STARTS":        "HOUST",
	"CONSUMER_SENTIMENT":    "UMCSENT",
	"SP500":                 "SP500",
	"VIX":                   "VIXCLS",
	"DOLLAR_INDEX":          "DTWEXBGS",
	"OIL_WTI":               "DCOILWTICO",
}

// ResolveSeries returns the FRED series code for a symbolic name (case-insensitive).
// Unknown names are returned verbatim so vendor codes can be used directly.
func ResolveSeries(name string) string {
	if code, ok := seriesCodes[strings.ToUpper(name)]; ok {
		return code
	}
	return name
}

// SeriesAlias is one entry of the symbolic name table.
type SeriesAlias struct {
	Name string // symbolic name accepted by ResolveSeries
	Code string // FRED series code
}

// KnownSeries returns a copy of the symbolic name table sorted by name.
func KnownSeries() []SeriesAlias {
	aliases := make([]SeriesAlias, 0, len(seriesCodes))
	for name, code := range seriesCodes {
		aliases = append(aliases, SeriesAlias{Name: name, Code: code})
	}
	sort.Slice(aliases, func(i, j int) bool {
		return aliases[i].Name < aliases[j].Name
	})
	return aliases
}
