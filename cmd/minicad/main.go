// seehuhn.de/go/minicad - a minimal raster drawing tool
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command minicad replays a drawing script and writes the resulting
// canvas to a file.
//
// Usage:
//
//	minicad [-config file.toml] [-o out.png] [-v] [script]
//
// The script is read from standard input if no file is given.  See
// session.ParseScript for the script format.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"seehuhn.de/go/minicad"
	"seehuhn.de/go/minicad/session"
)

func main() {
	var (
		configFile = flag.String("config", "", "TOML configuration file")
		output     = flag.String("o", "", "write the final canvas to this file")
		verbose    = flag.Bool("v", false, "log debug messages to stderr")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	minicad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if err := run(*configFile, *output, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "minicad:", err)
		os.Exit(1)
	}
}

func run(configFile, output, scriptFile string) error {
	cfg := session.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = session.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}

	var in io.Reader = os.Stdin
	if scriptFile != "" && scriptFile != "-" {
		f, err := os.Open(scriptFile)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	cmds, err := session.ParseScript(in)
	if err != nil {
		return err
	}

	s := session.New(cfg)
	if err := s.Run(cmds); err != nil {
		return err
	}

	if output != "" {
		return s.Export(output)
	}
	return nil
}
