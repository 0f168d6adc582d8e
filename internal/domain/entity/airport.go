package entity

// Airport is a single record of the airport directory
type Airport struct {
	Code      string  `yaml:"code" json:"code"`
	Name      string  `yaml:"name" json:"name"`
	City      string  `yaml:"city" json:"city"`
	Country   string  `yaml:"country" json:"country"`
	Latitude  float64 `yaml:"lat" json:"lat"`
	Longitude float64 `yaml:"lon" json:"lon"`
	TzName    string  `yaml:"tz,omitempty" json:"tz,omitempty"`
}
