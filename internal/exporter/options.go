package exporter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type UnitScale int

const (
	Meters      UnitScale = 1
	Centimeters UnitScale = 100
	Millimeters UnitScale = 1000
)

const (
	DefaultExportPath = "//"
	DefaultFileName   = "object_dimensions.txt"
	DefaultUnitScale  = Meters

	DefaultLabelWidth  = "Width"
	DefaultLabelHeight = "Height"
	DefaultLabelDepth  = "Depth"
)

func (s UnitScale) String() string {
	return strconv.Itoa(int(s))
}

func (s UnitScale) UnitName() string {
	switch s {
	case Meters:
		return "Meters"
	case Centimeters:
		return "Centimeters"
	case Millimeters:
		return "Millimeters"
	}
	return ""
}

// Parses a unit scale given either as multiplier (1, 100, 1000) or as unit name (m, cm, mm, meters...)
func ParseUnitScale(value string) (UnitScale, error) {
	normalizedValue := strings.Trim(strings.ToLower(value), " ")
	switch normalizedValue {
	case "1", "m", "meter", "meters":
		return Meters, nil
	case "100", "cm", "centimeter", "centimeters":
		return Centimeters, nil
	case "1000", "mm", "millimeter", "millimeters":
		return Millimeters, nil
	}
	return 0, fmt.Errorf("invalid unit scale %q, must be one of 1|100|1000 or m|cm|mm", value)
}

// Contains the user settings driving a dimension export. ExportPath starting with "//" is relative
// to the directory of the scene being exported.
type ExportSettings struct {
	ExportPath    string    `json:"export_path"`
	FileName      string    `json:"file_name" validate:"required"`
	UnitScale     UnitScale `json:"unit_scale" validate:"oneof=1 100 1000"`
	IncludeWidth  bool      `json:"include_width"`
	IncludeHeight bool      `json:"include_height"`
	IncludeDepth  bool      `json:"include_depth"`
	LabelWidth    string    `json:"label_width"`
	LabelHeight   string    `json:"label_height"`
	LabelDepth    string    `json:"label_depth"`
}

func DefaultExportSettings() *ExportSettings {
	return &ExportSettings{
		ExportPath:    DefaultExportPath,
		FileName:      DefaultFileName,
		UnitScale:     DefaultUnitScale,
		IncludeWidth:  true,
		IncludeHeight: true,
		IncludeDepth:  true,
		LabelWidth:    DefaultLabelWidth,
		LabelHeight:   DefaultLabelHeight,
		LabelDepth:    DefaultLabelDepth,
	}
}

// Checks the settings invariants: a non-empty file name and a supported unit scale
func (s *ExportSettings) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Use JSON field name in error messages
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("key=%q, value=\"%v\", failed %q validation", e.Field(), e.Value(), e.ActualTag()))
	}
	return fmt.Errorf("invalid export settings: %s", strings.Join(msgs, "; "))
}
