/*
 * main.go, part of emc2lt
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// emc2lt converts EMC .prm force-field files into a moltemplate .lt file.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rmera/emc2lt"
	"github.com/rmera/emc2lt/lt"
	"github.com/rmera/emc2lt/prm"
)

type options struct {
	styles  emc2lt.Styles
	name    string
	units   bool
	factors string
}

const longHelp = `Converts a list of files in EMC .prm format to a moltemplate .lt file.

Styles for each kind of interaction can be given in the command line.
Any valid LAMMPS style can be used. The defaults are lj/cut/coul/long for
pairs and harmonic for everything else.

With --units, no automatic unit conversion is attempted. The conversion
factors can then be given in a YAML file with --factors, with the keys
length, energy, density, bond, angle, dihedral and improper.`

func main() {
	log := newLogger()
	defer log.Sync()
	if err := newRootCmd(log, os.Args).Execute(); err != nil {
		report(err, log)
		log.Error("Aborting...")
		os.Exit(1)
	}
}

// report logs err, with the offending file and the chain of calls that
// produced it when err carries them.
func report(err error, log *zap.SugaredLogger) {
	var fe emc2lt.FileError
	if errors.As(err, &fe) && fe.FileName() != "" {
		log.Errorw(err.Error(), "file", fe.FileName(), "trace", fe.Decorate(""))
		return
	}
	var e emc2lt.Error
	if errors.As(err, &e) {
		log.Errorw(err.Error(), "trace", e.Decorate(""))
		return
	}
	log.Error(err)
}

// newLogger returns a human-friendly logger that writes to stderr.
func newLogger() *zap.SugaredLogger {
	z := zap.NewDevelopmentConfig()
	z.OutputPaths = []string{"stderr"}
	z.DisableStacktrace = true
	z.DisableCaller = true
	z.EncoderConfig.TimeKey = ""
	z.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, err := z.Build()
	if err != nil {
		return zap.NewExample().Sugar()
	}
	return logger.Sugar()
}

func newRootCmd(log *zap.SugaredLogger, argv []string) *cobra.Command {
	o := new(options)
	cmd := &cobra.Command{
		Use:           "emc2lt file1.prm [file2.prm ...]",
		Short:         "EMC .prm to moltemplate .lt conversion tool",
		Long:          longHelp,
		Example:       "emc2lt file1.prm file2.prm --bond-style=harmonic --angle-style=harmonic",
		Version:       lt.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return run(o, args, argv, log)
		},
	}
	cmd.SetArgs(argv[1:])
	f := cmd.Flags()
	f.StringVar(&o.styles.Pair, "pair-style", "", "LAMMPS pair style")
	f.StringVar(&o.styles.Bond, "bond-style", "", "LAMMPS bond style")
	f.StringVar(&o.styles.Angle, "angle-style", "", "LAMMPS angle style")
	f.StringVar(&o.styles.Dihedral, "dihedral-style", "", "LAMMPS dihedral style")
	f.StringVar(&o.styles.Improper, "improper-style", "", "LAMMPS improper style")
	f.StringVar(&o.name, "name", "", "basename for the output file (default: the force field name)")
	f.BoolVar(&o.units, "units", false, "manual units: no automatic unit conversion")
	f.StringVar(&o.factors, "factors", "", "YAML file with the conversion factors to use with --units")
	return cmd
}

// checkFiles makes sure every input file exists before anything is read.
func checkFiles(fnames []string, log *zap.SugaredLogger) error {
	for _, v := range fnames {
		st, err := os.Stat(v)
		if err != nil || st.IsDir() {
			return fmt.Errorf("invalid filename: %s", v)
		}
		log.Infof("Converting: %s", v)
	}
	return nil
}

func run(o *options, fnames []string, argv []string, log *zap.SugaredLogger) error {
	log.Infof("%s conversion tool: v%s", lt.Tool, lt.Version)
	if err := checkFiles(fnames, log); err != nil {
		return err
	}
	log.Info("from EMC .prm to moltemplate .lt format")
	opt := emc2lt.Options{Styles: o.styles, ManualUnits: o.units}
	if o.factors != "" {
		if !o.units {
			log.Warn("--factors given without --units, the factors will be ignored")
		}
		s, err := emc2lt.LoadSettingsFile(o.factors)
		if err != nil {
			return err
		}
		opt.Settings = s
	}
	files := make([]*prm.File, 0, len(fnames))
	for _, v := range fnames {
		f, err := prm.ReadFile(v)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	ff, err := emc2lt.New(files, opt, log)
	if err != nil {
		return err
	}
	out := lt.FileName(o.name, ff.Define.FFName)
	err = lt.WriteFile(out, ff, lt.Header{Date: time.Now(), Invocation: argv}, log)
	if err != nil {
		return err
	}
	log.Infof("Wrote %s", out)
	return nil
}
