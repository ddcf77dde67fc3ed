package tools

import (
	goflag "flag"

	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

const (
	CommandExport = "export"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type FlagsForCommandExport struct {
	Config  *string `json:"config"`
	Help    *bool   `json:"help"`
	Version *bool   `json:"version"`

	// every flag of the command, consumed by the config loader
	FlagSet *pflag.FlagSet `json:"-"`
}

// Parses the flags preceding the subcommand. Glog flags (-v, -logtostderr...) are accepted here.
func ParseFlagsGlobal(args []string) (FlagsGlobal, []string) {
	flagSet := pflag.NewFlagSet("dimexport", pflag.ExitOnError)
	flagSet.SetInterspersed(false)
	flagSet.AddGoFlagSet(goflag.CommandLine)

	help := defineBoolFlagCommand(flagSet, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagSet, "version", "", false, "Displays the version of dimexport.")

	_ = flagSet.Parse(args)

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}, flagSet.Args()
}

func NewFlagSetForCommandExport() *pflag.FlagSet {
	flagCommand := pflag.NewFlagSet("command-export", pflag.ContinueOnError)

	defineStringFlagCommand(flagCommand, "config", "c", "", "Specifies the YAML config file. Defaults to dimexport.yaml in the working directory.")
	defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input scene file/folder (.obj, .stl, .yaml, .yml, .json).")
	defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all scene files from input folder. Input must be a folder if specified")
	defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all scene files inside the subfolders")
	defineStringSliceFlagCommand(flagCommand, "select", "s", nil, "Glob pattern on object names to export, can be repeated. All objects are selected by default.")
	defineStringFlagCommand(flagCommand, "obj-up-axis", "", "Y", "Up axis of OBJ coordinates, 'Y' or 'Z'.")

	defineStringFlagCommand(flagCommand, "export-path", "o", "//", "Folder where to write the file. A leading '//' is relative to the folder of the first scene file.")
	defineStringFlagCommand(flagCommand, "file-name", "n", "object_dimensions.txt", "Name of the exported text file.")
	defineStringFlagCommand(flagCommand, "unit-scale", "u", "1", "Unit conversion of exported values: 1 (meters), 100 (centimeters) or 1000 (millimeters).")
	defineBoolFlagCommand(flagCommand, "include-width", "", true, "Exports the width (X).")
	defineBoolFlagCommand(flagCommand, "include-height", "", true, "Exports the height (Z).")
	defineBoolFlagCommand(flagCommand, "include-depth", "", true, "Exports the depth (Y).")
	defineStringFlagCommand(flagCommand, "label-width", "", "Width", "Label for width.")
	defineStringFlagCommand(flagCommand, "label-height", "", "Height", "Label for height.")
	defineStringFlagCommand(flagCommand, "label-depth", "", "Depth", "Label for depth.")

	defineBoolFlagCommand(flagCommand, "dry-run", "", false, "Prints the report to stdout instead of writing the file.")
	defineBoolFlagCommand(flagCommand, "silent", "", false, "Use to suppress all the non-error messages.")
	defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	defineBoolFlagCommand(flagCommand, "version", "v", false, "Displays the version of dimexport.")

	return flagCommand
}

func ParseFlagsForCommandExport(args []string) (FlagsForCommandExport, error) {
	glog.V(2).Infoln("export args", FmtJSONString(args))

	flagCommand := NewFlagSetForCommandExport()
	if err := flagCommand.Parse(args); err != nil {
		return FlagsForCommandExport{}, err
	}

	config, _ := flagCommand.GetString("config")
	help, _ := flagCommand.GetBool("help")
	version, _ := flagCommand.GetBool("version")

	return FlagsForCommandExport{
		Config:  &config,
		Help:    &help,
		Version: &version,
		FlagSet: flagCommand,
	}, nil
}

func defineStringFlagCommand(flagCommand *pflag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVarP(&output, name, shortHand, defaultValue, usage)
	return &output
}

func defineStringSliceFlagCommand(flagCommand *pflag.FlagSet, name string, shortHand string, defaultValue []string, usage string) *[]string {
	var output []string
	flagCommand.StringSliceVarP(&output, name, shortHand, defaultValue, usage)
	return &output
}

func defineBoolFlagCommand(flagCommand *pflag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVarP(&output, name, shortHand, defaultValue, usage)
	return &output
}
