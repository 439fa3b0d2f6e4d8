package catalog

import (
	"bytes"

	"github.com/custodia-labs/datakit-cli/internal/core/domain"
	"github.com/custodia-labs/datakit-cli/internal/dataset"
	"github.com/custodia-labs/datakit-cli/internal/textproc"
)

// IrisRow is one observation from Fisher's iris data, decoded
// positionally from the headerless UCI file.
type IrisRow struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
	Species     string
}

// QuakeRow is one Fiji earthquake observation.
type QuakeRow struct {
	Lat      float64 `csv:"lat"`
	Long     float64 `csv:"long"`
	Depth    float64 `csv:"depth"`
	Mag      float64 `csv:"mag"`
	Stations int     `csv:"stations"`
}

// AirPassengerRow is one month of international airline passenger
// counts. Time is a fractional calendar year; convert with
// textproc.FractionalYearToTime.
type AirPassengerRow struct {
	Time  float64 `csv:"time"`
	Value float64 `csv:"value"`
}

// PlantGrowthRow is one plant dry-weight measurement.
type PlantGrowthRow struct {
	Weight float64 `csv:"weight"`
	Group  string  `csv:"group"`
}

// CO2Row is one month of Mauna Loa atmospheric CO2 readings, decoded
// positionally after fixed-width preprocessing.
type CO2Row struct {
	Year           int
	Month          int
	DecimalDate    float64
	Average        float64
	Deseasonalized float64
	Days           int
	StdDev         float64
	Uncertainty    float64
}

// CarRow is one car from the classic mpg dataset (JSON).
type CarRow struct {
	Name           string   `json:"Name"`
	MilesPerGallon *float64 `json:"Miles_per_Gallon"`
	Cylinders      int      `json:"Cylinders"`
	Displacement   float64  `json:"Displacement"`
	Horsepower     *float64 `json:"Horsepower"`
	WeightInLbs    int      `json:"Weight_in_lbs"`
	Acceleration   float64  `json:"Acceleration"`
	Year           string   `json:"Year"`
	Origin         string   `json:"Origin"`
}

const rdatasets = "https://raw.githubusercontent.com/vincentarelbundock/Rdatasets/master/csv/datasets"

// Iris declares the headerless UCI iris dataset.
func Iris() dataset.Dataset[IrisRow] {
	return dataset.FromDelimited[IrisRow](
		domain.URLSource("https://archive.ics.uci.edu/ml/machine-learning-databases/iris/iris.data"))
}

// Quakes declares the Fiji earthquakes dataset.
func Quakes() dataset.Dataset[QuakeRow] {
	return dataset.FromDelimitedHeadered[QuakeRow](
		domain.URLSource(rdatasets + "/quakes.csv"))
}

// AirPassengers declares the monthly airline passengers dataset.
func AirPassengers() dataset.Dataset[AirPassengerRow] {
	return dataset.FromDelimitedHeadered[AirPassengerRow](
		domain.URLSource(rdatasets + "/AirPassengers.csv"))
}

// PlantGrowth declares the plant growth dataset.
func PlantGrowth() dataset.Dataset[PlantGrowthRow] {
	return dataset.FromDelimitedHeadered[PlantGrowthRow](
		domain.URLSource(rdatasets + "/PlantGrowth.csv"))
}

// CO2MaunaLoa declares the NOAA monthly mean CO2 record, a
// comment-prefixed fixed-width text file.
func CO2MaunaLoa() dataset.Dataset[CO2Row] {
	return dataset.FromDelimited[CO2Row](
		domain.URLSource("https://gml.noaa.gov/webdata/ccgg/trends/co2/co2_mm_mlo.txt"),
		dataset.WithPreprocess(func(b []byte) ([]byte, error) {
			return textproc.FixedWidthToCSV(stripHashComments(b)), nil
		}))
}

// WineQualityRed declares the UCI red wine quality dataset
// (semicolon-delimited, headered). Column names contain spaces, so
// records decode into the dynamic Row form.
func WineQualityRed() dataset.Dataset[domain.Row] {
	return dataset.FromDelimitedHeadered[domain.Row](
		domain.URLSource("https://archive.ics.uci.edu/ml/machine-learning-databases/wine-quality/winequality-red.csv"),
		dataset.WithSeparator(';'))
}

// Cars declares the vega mpg dataset (a JSON array of car records).
func Cars() dataset.Dataset[CarRow] {
	return dataset.FromDocument[CarRow](
		domain.URLSource("https://raw.githubusercontent.com/vega/vega-datasets/main/data/cars.json"))
}

// BuiltIn returns the built-in catalog entries.
func BuiltIn() []Entry {
	return []Entry{
		{
			Name:        "iris",
			Description: "Fisher's iris measurements (UCI, headerless CSV)",
			Source:      domain.URLSource("https://archive.ics.uci.edu/ml/machine-learning-databases/iris/iris.data"),
			Load:        Tabulate(Iris()),
		},
		{
			Name:        "quakes",
			Description: "Locations of Fiji earthquakes (headered CSV)",
			Source:      domain.URLSource(rdatasets + "/quakes.csv"),
			Load:        Tabulate(Quakes()),
		},
		{
			Name:        "airpassengers",
			Description: "Monthly international airline passengers 1949-1960",
			Source:      domain.URLSource(rdatasets + "/AirPassengers.csv"),
			Load:        Tabulate(AirPassengers()),
		},
		{
			Name:        "plantgrowth",
			Description: "Dried plant weights by treatment group",
			Source:      domain.URLSource(rdatasets + "/PlantGrowth.csv"),
			Load:        Tabulate(PlantGrowth()),
		},
		{
			Name:        "co2",
			Description: "Mauna Loa monthly mean CO2 (fixed-width text)",
			Source:      domain.URLSource("https://gml.noaa.gov/webdata/ccgg/trends/co2/co2_mm_mlo.txt"),
			Load:        Tabulate(CO2MaunaLoa()),
		},
		{
			Name:        "winequality-red",
			Description: "Red wine quality scores (semicolon-delimited CSV)",
			Source:      domain.URLSource("https://archive.ics.uci.edu/ml/machine-learning-databases/wine-quality/winequality-red.csv"),
			Load:        Tabulate(WineQualityRed()),
		},
		{
			Name:        "cars",
			Description: "Classic car mpg records (JSON)",
			Source:      domain.URLSource("https://raw.githubusercontent.com/vega/vega-datasets/main/data/cars.json"),
			Load:        Tabulate(Cars()),
		},
	}
}

// stripHashComments removes '#'-prefixed lines and per-line leading and
// trailing spaces so fixed-width conversion yields clean columns.
func stripHashComments(b []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(b, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}
