package valuation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

// TableHeader is the column layout of the projection table.
var TableHeader = []string{
	"Year",
	"Forecasted FCF ($)",
	"Present Value of FCF ($)",
}

// WriteTableCSV writes the projection table to path.
func WriteTableCSV(path string, projections []YearlyProjection) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return EncodeTableCSV(f, projections)
}

// EncodeTableCSV writes the projection table as CSV to w.
func EncodeTableCSV(w io.Writer, projections []YearlyProjection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(TableHeader); err != nil {
		return err
	}
	for _, p := range projections {
		row := []string{
			strconv.Itoa(p.Year),
			fmtFloat(p.ForecastedFCF),
			fmtFloat(p.PresentValueOfFCF),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
