package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteTable prints the forecast table in aligned columns.
func WriteTable(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "Year\tForecasted FCF ($)\tPresent Value of FCF ($)\t"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t\n", r.Year, Currency(r.ForecastedFCF), Currency(r.PresentValueOfFCF)); err != nil {
			return err
		}
	}
	return tw.Flush()
}
