// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/romfs/internal/artifact"
	"github.com/aibor/romfs/internal/payload"
	"github.com/aibor/romfs/internal/romfs"
)

const (
	name = "romfs-embed"

	defaultOutput = "romfs_embedded.h"

	usageMessage = `Usage of 'romfs-embed':
    romfs-embed [flags...] [name=]source...

Embed files into C source for a ROMFS:
	romfs-embed -o romfs_embedded.h scripts/init.lua=lua/init.lua bootloader.bin

Resources can also be listed in YAML files:
	romfs-embed -list resources.yaml -o romfs_embedded.h -o cpio=romfs.img

If only a source path is given, it is used as logical name as well.
`
)

type flags struct {
	Specs       []romfs.Spec
	ListFiles   FilePathList
	Outputs     OutputList
	Mode        payload.Mode
	ArrayPrefix string
	Attribute   string
	TableDecl   string
	Debug       bool
	Version     bool
}

func parseArgs(args []string, output io.Writer) (*flags, error) {
	flags := &flags{
		ArrayPrefix: artifact.DefaultArrayPrefix,
		TableDecl:   artifact.DefaultTableDecl,
	}

	flagSet := flags.newFlagSet(output)

	err := flagSet.Parse(args)
	if err != nil {
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	// With version flag, the caller prints the version and exits.
	if flags.Version {
		return flags, nil
	}

	for _, arg := range flagSet.Args() {
		spec, err := ParseResourceArg(arg)
		if err != nil {
			return nil, fail(flagSet, "resource", err)
		}

		flags.Specs = append(flags.Specs, spec)
	}

	if len(flags.Specs) == 0 && len(flags.ListFiles) == 0 {
		return nil, fail(flagSet, "no resources given", nil)
	}

	if len(flags.Outputs) == 0 {
		flags.Outputs = OutputList{{
			Format: artifact.FormatForPath(defaultOutput),
			Path:   defaultOutput,
		}}
	}

	return flags, nil
}

func (f *flags) newFlagSet(output io.Writer) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() { usage(flagSet) }

	flagSet.Var(
		&f.Outputs,
		"o",
		"output artifact as [format=]path. Formats: header, cpio, manifest. "+
			"Format defaults by extension. Flag may be used more than once. "+
			"Empty value clears the list. (default "+defaultOutput+")",
	)

	flagSet.Var(
		&f.ListFiles,
		"list",
		"YAML file listing resources. Flag may be used more than once. "+
			"Empty value clears the list.",
	)

	flagSet.TextVar(
		&f.Mode,
		"mode",
		f.Mode,
		"payload encoding: compressed, uncompressed",
	)

	flagSet.StringVar(
		&f.ArrayPrefix,
		"prefix",
		f.ArrayPrefix,
		"name prefix of the generated byte arrays",
	)

	flagSet.StringVar(
		&f.Attribute,
		"attribute",
		f.Attribute,
		"attribute put in front of each byte array declaration",
	)

	flagSet.StringVar(
		&f.TableDecl,
		"table",
		f.TableDecl,
		"declaration of the lookup table",
	)

	flagSet.BoolVar(
		&f.Debug,
		"debug",
		f.Debug,
		"enable debug output",
	)

	flagSet.BoolVar(
		&f.Version,
		"version",
		f.Version,
		"show version and exit",
	)

	return flagSet
}

// fail fails like flag does. It prints the error first and then usage.
func fail(flagSet *flag.FlagSet, msg string, err error) error {
	err = &ParseArgsError{msg: msg, err: err}
	fmt.Fprintln(flagSet.Output(), err.Error())

	flagSet.Usage()

	return err
}

func usage(flagSet *flag.FlagSet) {
	fmt.Fprint(flagSet.Output(), usageMessage)
	fmt.Fprintln(flagSet.Output(), "\nFlags:")
	flagSet.PrintDefaults()
}

func (f *flags) artifactConfig() artifact.Config {
	return artifact.Config{
		Header: artifact.Header{
			ArrayPrefix: f.ArrayPrefix,
			Attribute:   f.Attribute,
			TableDecl:   f.TableDecl,
		},
		Mode: f.Mode,
	}
}

func printVersionInformation(output io.Writer) error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(output, "Version: %s\n", buildInfo.Main.Version)

	return nil
}
