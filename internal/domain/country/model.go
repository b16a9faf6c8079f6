package country

// Country mirrors the upstream catalog record (restcountries v3.1 shape,
// trimmed to the fields the application renders). The catalog is external
// and read-only.
type Country struct {
	Name       Name                `json:"name"`
	Code       string              `json:"cca3"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Flags      Flags               `json:"flags"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
}

type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

type Flags struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}
