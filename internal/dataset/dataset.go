// Package dataset loads classification records from a YAML file for
// seeding the database. The file is optional: deployments normally run
// against an already-populated store, but a fresh environment can point
// DATASET_FILE at a dump and get a working table on first start.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dailydewey/internal/daily"
	"dailydewey/internal/models"
)

// Record is one entry of the YAML dataset file. Division and main
// class may be omitted; they are derived from the section code.
type Record struct {
	Section              string `yaml:"section"`
	SectionDescription   string `yaml:"section_description"`
	Division             string `yaml:"division,omitempty"`
	DivisionDescription  string `yaml:"division_description"`
	MainClass            string `yaml:"main_class,omitempty"`
	MainClassDescription string `yaml:"main_class_description"`
}

// File is the top-level structure of the dataset file.
type File struct {
	Records []Record `yaml:"records"`
}

// Load reads and validates a dataset file. A missing file returns
// (nil, nil): seeding is optional.
func Load(path string) ([]models.Classification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse dataset file: %w", err)
	}

	records := make([]models.Classification, 0, len(f.Records))
	for i, r := range f.Records {
		rec, err := r.toClassification()
		if err != nil {
			return nil, fmt.Errorf("dataset record %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r Record) toClassification() (models.Classification, error) {
	if !validCode(r.Section) {
		return models.Classification{}, fmt.Errorf("invalid section code %q", r.Section)
	}

	section := daily.Pad3(r.Section)

	division := r.Division
	if division == "" {
		// By convention the division is the first two digits + "0".
		division = section[:2] + "0"
	} else if !validCode(division) {
		return models.Classification{}, fmt.Errorf("invalid division code %q", r.Division)
	}

	mainClass := r.MainClass
	if mainClass == "" {
		mainClass = section[:1] + "00"
	} else if !validCode(mainClass) {
		return models.Classification{}, fmt.Errorf("invalid main class code %q", r.MainClass)
	}

	return models.Classification{
		SectionCode:          section,
		SectionDescription:   r.SectionDescription,
		DivisionCode:         daily.Pad3(division),
		DivisionDescription:  r.DivisionDescription,
		MainClassCode:        daily.Pad3(mainClass),
		MainClassDescription: r.MainClassDescription,
	}, nil
}

// validCode accepts 1 to 3 ASCII digits.
func validCode(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
