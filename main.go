/*
 * This file is part of the dimexport distribution (https://github.com/ecopia-map/dimexport).
 * Copyright (c) 2026 the dimexport authors
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"errors"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecopia-map/dimexport/internal/config"
	"github.com/ecopia-map/dimexport/internal/exporter"
	"github.com/ecopia-map/dimexport/internal/host"
	"github.com/ecopia-map/dimexport/internal/scene"
	"github.com/ecopia-map/dimexport/pkg"
	"github.com/ecopia-map/dimexport/pkg/loader_manager/std_loader_manager"
	"github.com/ecopia-map/dimexport/tools"
	"github.com/golang/glog"
	"github.com/spf13/pflag"
)

const VERSION = "1.2.0"

const logo = `
     _ _                                       _
  __| (_)_ __ ___   _____  ___ __   ___  _ __| |_
 / _  | | '_   _ \ / _ \ \/ / '_ \ / _ \| '__| __|
| (_| | | | | | | |  __/>  <| |_) | (_) | |  | |_
 \__,_|_|_| |_| |_|\___/_/\_\ .__/ \___/|_|   \__|
  Scene object dimensions   |_|  exporter written in golang
  Copyright YYYY
`

func main() {
	_ = goflag.Set("logtostderr", "true")

	flagsGlobal, args := tools.ParseFlagsGlobal(os.Args[1:])
	// glog reads its flags from the standard flag set, already filled through pflag
	_ = goflag.CommandLine.Parse([]string{})
	defer glog.Flush()

	if *flagsGlobal.Help {
		showHelp(nil)
		return
	}
	if *flagsGlobal.Version {
		printVersion()
		return
	}

	if len(args) == 0 {
		glog.Fatal("Please specify a subcommand [export].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandExport:
		code := mainCommandExport(args, os.Stdout)
		glog.Flush()
		os.Exit(code)
	default:
		glog.Fatalf("Unrecognized command [%q]. Command must be one of [export]", cmd)
	}
}

// Runs the export command and returns the process exit status. Dry run reports go to stdout.
func mainCommandExport(args []string, stdout io.Writer) int {
	// Retrieve command line args
	flags, err := tools.ParseFlagsForCommandExport(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		glog.Errorf("Error parsing input parameters: %v", err)
		return 1
	}

	// Prints the command line flag description
	if *flags.Help {
		showHelp(flags.FlagSet)
		return 0
	}
	if *flags.Version {
		printVersion()
		return 0
	}

	cfg, err := config.LoadConfig(*flags.Config, flags.FlagSet)
	if err != nil {
		glog.Errorf("Error loading configuration: %v", err)
		return 1
	}
	if cfg.Silent {
		tools.DisableLogger()
	}
	if cfg.ConfigFileUsed != "" {
		tools.LogOutput("Using config file", cfg.ConfigFileUsed)
	}

	opts, err := cfg.LoadOptions()
	if err != nil {
		glog.Errorf("Error parsing input parameters: %v", err)
		return 1
	}
	settings, err := cfg.ExportSettings()
	if err != nil {
		glog.Errorf("Error parsing input parameters: %v", err)
		return 1
	}
	glog.V(1).Infoln("export settings", tools.FmtJSONString(settings))
	glog.V(1).Infof("dimensions in %s (x%s)", settings.UnitScale.UnitName(), settings.UnitScale)

	dimensionExport := pkg.NewDimensionExport(tools.NewStandardFileFinder(), std_loader_manager.NewLoaderManager(opts))

	if cfg.DryRun {
		return printReport(dimensionExport, opts, settings, stdout)
	}

	defer timeTrack(time.Now(), "export")
	status, err := dimensionExport.RunExport(opts, settings, host.NewGlogReporter(cfg.Silent))
	if err != nil {
		glog.Errorf("Error while exporting: %v", err)
		return 1
	}
	if status != host.Finished {
		return 1
	}
	return 0
}

// Writes the report to stdout instead of the export file. Warnings go through the same status
// mapping as a real export, INFO messages are only logged at verbosity 1.
func printReport(dimensionExport pkg.IDimensionExport, opts *scene.LoadOptions, settings *exporter.ExportSettings, stdout io.Writer) int {
	selection, _, err := dimensionExport.LoadSelection(opts)
	if err != nil {
		glog.Errorf("Error while exporting: %v", err)
		return 1
	}

	recorder := host.NewRecordingReporter()
	status := host.RunExport(exporter.NewReportWriter(stdout, "stdout"), selection, settings, recorder)
	for _, msg := range recorder.Messages() {
		if msg.Level == host.Info {
			glog.V(1).Infoln(msg)
		} else {
			glog.Warningln(msg)
		}
	}

	if status != host.Finished {
		return 1
	}
	return 0
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp(commandFlags *pflag.FlagSet) {
	printLogo()
	fmt.Println("***")
	fmt.Println("dimexport reads the bounding box dimensions of the mesh objects of a scene and writes them to a text file")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: dimexport [-v level] export -i <scene file/folder> [flags]")
	fmt.Println("")
	if commandFlags == nil {
		commandFlags = tools.NewFlagSetForCommandExport()
	}
	fmt.Println("Export command flags: ")
	commandFlags.SetOutput(os.Stdout)
	commandFlags.PrintDefaults()
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
