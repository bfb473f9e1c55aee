/*
 * This file is part of the Go Cesium Point Cloud Tiler distribution (https://github.com/mfbonfigli/gocesiumtiler).
 * Copyright (c) 2019 Massimo Federico Bonfigli - m.federico.bonfigli@gmail.com
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
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/ecopia-map/export3ds/internal/exporter"
	"github.com/ecopia-map/export3ds/pkg"
	"github.com/ecopia-map/export3ds/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/export3ds/tools"
)

const VERSION = "1.0.0"

const logo = `
                             _   _____     _
  _____  ___ __   ___  _ __| |_|___ / __| |___
 / _ \ \/ / '_ \ / _ \| '__| __| |_ \/ _  / __|
|  __/>  <| |_) | (_) | |  | |_ ___) | (_| \__ \
 \___/_/\_\ .__/ \___/|_|   \__|____/\__,_|___/
          |_| A 3DS scene exporter written in golang
              Copyright YYYY - Ecopia Map
`

func main() {
	// progress and errors go to the console, glog files are not wanted by default
	_ = flag.Set("logtostderr", "true")
	defer glog.Flush()

	flagsGlobal := tools.ParseFlagsGlobal()
	glog.V(1).Info(tools.FmtJSONString(flagsGlobal))

	if *flagsGlobal.Help {
		showHelp()
		return
	}
	if *flagsGlobal.Version {
		printVersion()
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		glog.Fatal("Please specify a subcommand [export|validate].")
	}
	cmd, args := args[0], args[1:]

	switch cmd {
	case tools.CommandExport:
		mainCommandExport(args)
	case tools.CommandValidate:
		mainCommandValidate(args)
	default:
		glog.Fatalf("Unrecognized command [%q]. Command must be one of [export|validate]", cmd)
	}
}

func mainCommandExport(args []string) {
	// Retrieve command line args
	flags := tools.ParseFlagsForCommandExport(args)

	if *flags.Help {
		showHelp()
		return
	}

	if *flags.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if *flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if *flags.LogTimestamp {
		tools.EnableLoggerTimestamp()
	} else {
		tools.DisableLoggerTimestamp()
	}

	opts := optionsFromSceneFlags(flags.SceneFlags)
	opts.Output = *flags.Output
	opts.Compress = *flags.Gzip

	// Validate Options
	if msg, res := validateOptions(opts); !res {
		glog.Fatal("Error parsing input parameters: " + msg)
	}

	defer timeTrack(time.Now(), "export")
	err := pkg.NewExporter(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunExporter(opts)

	if err != nil {
		glog.Fatal("Error while exporting: ", err)
	} else {
		tools.LogOutput("Conversion Completed")
	}
}

func mainCommandValidate(args []string) {
	flags := tools.ParseFlagsForCommandValidate(args)

	if *flags.Help {
		showHelp()
		return
	}
	tools.DisableLoggerTimestamp()

	opts := optionsFromSceneFlags(flags.SceneFlags)
	if msg, res := validateOptions(opts); !res {
		glog.Fatal("Error parsing input parameters: " + msg)
	}

	reports, err := pkg.NewValidator(tools.NewStandardFileFinder(), std_algorithm_manager.NewAlgorithmManager(opts)).RunValidator(opts)
	if err != nil {
		glog.Fatal("Validation failed: ", err)
	}
	tools.LogOutput(fmt.Sprintf("%d scene files are valid", len(reports)))
}

func optionsFromSceneFlags(flags tools.SceneFlags) *exporter.Options {
	opts := exporter.DefaultOptions()
	opts.Input = *flags.Input
	opts.FolderProcessing = *flags.FolderProcessing
	opts.Recursive = *flags.RecursiveFolderProcessing
	opts.ZOffset = *flags.ZOffset
	opts.Mesh.Tolerance = *flags.Tolerance
	opts.UpAxis = exporter.ParseUpAxis(*flags.UpAxis)
	return opts
}

// Validates the input options provided to the command line tool checking
// that input and output folders/files exist
func validateOptions(opts *exporter.Options) (string, bool) {
	info, err := os.Stat(opts.Input)
	if err != nil {
		return "Input file/folder not found", false
	}
	if opts.FolderProcessing && !info.IsDir() {
		return "Input must be a folder when folder processing is enabled", false
	}
	if !opts.FolderProcessing && info.IsDir() {
		return "Input is a folder, use -folder to process all the scene files it contains", false
	}
	if opts.FolderProcessing && opts.Output != "" {
		if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
			return "Output folder cannot be created: " + err.Error(), false
		}
	}
	if opts.UpAxis == "" {
		return "Up axis must be Y or Z", false
	}
	if opts.Mesh.Tolerance <= 0 {
		return "tolerance must be positive", false
	}
	return "", true
}

func timeTrack(start time.Time, name string) {
	elapsed := time.Since(start)
	tools.LogOutput(fmt.Sprintf("%s took %s", name, elapsed))
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("export3ds is a tool that converts OBJ files and YAML/TOML scene manifests into Autodesk 3DS files")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	fmt.Println("Usage: export3ds [global flags] export|validate [command flags]")
	fmt.Println("")
	fmt.Println("Global flags: ")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
	fmt.Println("")
	fmt.Println("Run 'export3ds export -h' or 'export3ds validate -h' for the command flags.")
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
