package tools

import (
	"flag"

	"github.com/golang/glog"
)

const (
	CommandExport   = "export"
	CommandValidate = "validate"
)

type FlagsGlobal struct {
	Help    *bool `json:"help"`
	Version *bool `json:"version"`
}

type SceneFlags struct {
	Input                     *string  `json:"input"`
	FolderProcessing          *bool    `json:"folder"`
	RecursiveFolderProcessing *bool    `json:"recursive"`
	UpAxis                    *string  `json:"up"`
	ZOffset                   *float64 `json:"zoffset"`
	Tolerance                 *float64 `json:"tolerance"`
}

type FlagsForCommandExport struct {
	SceneFlags
	Output       *string `json:"output"`
	Gzip         *bool   `json:"gzip"`
	Silent       *bool   `json:"silent"`
	LogTimestamp *bool   `json:"timestamp"`
	Help         *bool   `json:"help"`
	Version      *bool   `json:"version"`
}

type FlagsForCommandValidate struct {
	SceneFlags
	Help *bool `json:"help"`
}

// -v is taken by glog verbosity, so version has no shorthand
func ParseFlagsGlobal() FlagsGlobal {
	help := defineBoolFlag("help", "h", false, "Displays this help.")
	version := defineBoolFlag("version", "", false, "Displays the version of export3ds.")

	flag.Parse()

	return FlagsGlobal{
		Help:    help,
		Version: version,
	}
}

func defineSceneFlags(flagCommand *flag.FlagSet) SceneFlags {
	return SceneFlags{
		Input:                     defineStringFlagCommand(flagCommand, "input", "i", "", "Specifies the input scene file/folder (.obj, .yaml, .yml, .toml, optionally .gz compressed)."),
		FolderProcessing:          defineBoolFlagCommand(flagCommand, "folder", "f", false, "Enables processing of all scene files from input folder. Input must be a folder if specified."),
		RecursiveFolderProcessing: defineBoolFlagCommand(flagCommand, "recursive", "r", false, "Enables recursive lookup for all scene files inside the subfolders."),
		UpAxis:                    defineStringFlagCommand(flagCommand, "up", "u", "Z", "Up axis of the input coordinates, Y or Z. Y-up input is rotated to the Z-up frame used by 3DS."),
		ZOffset:                   defineFloat64FlagCommand(flagCommand, "zoffset", "z", 0, "Vertical offset to apply to vertices, after the axis conversion."),
		Tolerance:                 defineFloat64FlagCommand(flagCommand, "tolerance", "t", 15, "Tessellation tolerance for curved faces."),
	}
}

func ParseFlagsForCommandExport(args []string) FlagsForCommandExport {
	glog.V(1).Info(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-export", flag.ExitOnError)

	sceneFlags := defineSceneFlags(flagCommand)
	output := defineStringFlagCommand(flagCommand, "output", "o", "", "Specifies the output 3ds file, or the output folder when -folder is set.")
	gzip := defineBoolFlagCommand(flagCommand, "gzip", "g", false, "Writes gzip compressed .3ds.gz files.")
	silent := defineBoolFlagCommand(flagCommand, "silent", "s", false, "Use to suppress all the non-error messages.")
	logTimestamp := defineBoolFlagCommand(flagCommand, "timestamp", "", false, "Adds timestamp to log messages.")
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")
	version := defineBoolFlagCommand(flagCommand, "version", "", false, "Displays the version of export3ds.")

	flagCommand.Parse(args)

	return FlagsForCommandExport{
		SceneFlags:   sceneFlags,
		Output:       output,
		Gzip:         gzip,
		Silent:       silent,
		LogTimestamp: logTimestamp,
		Help:         help,
		Version:      version,
	}
}

func ParseFlagsForCommandValidate(args []string) FlagsForCommandValidate {
	glog.V(1).Info(FmtJSONString(args))

	flagCommand := flag.NewFlagSet("command-validate", flag.ExitOnError)

	sceneFlags := defineSceneFlags(flagCommand)
	help := defineBoolFlagCommand(flagCommand, "help", "h", false, "Displays this help.")

	flagCommand.Parse(args)

	return FlagsForCommandValidate{
		SceneFlags: sceneFlags,
		Help:       help,
	}
}

func defineBoolFlag(name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flag.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flag.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineStringFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue string, usage string) *string {
	var output string
	flagCommand.StringVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.StringVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}

	return &output
}

func defineFloat64FlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue float64, usage string) *float64 {
	var output float64
	flagCommand.Float64Var(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.Float64Var(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}

func defineBoolFlagCommand(flagCommand *flag.FlagSet, name string, shortHand string, defaultValue bool, usage string) *bool {
	var output bool
	flagCommand.BoolVar(&output, name, defaultValue, usage)
	if shortHand != name && shortHand != "" {
		flagCommand.BoolVar(&output, shortHand, defaultValue, usage+" (shorthand for "+name+")")
	}
	return &output
}
