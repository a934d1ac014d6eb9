package report

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

/*
LoadCases reads report cases from a CSV file.

	Args:
		path: CSV file with the header
			label,pressure_mbar,length_cm,diameter_cm,price_per_liter_atm
*/
func LoadCases(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cases []Case
	if err := gocsv.UnmarshalFile(file, &cases); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("%s: no cases", path)
	}

	return cases, nil
}
