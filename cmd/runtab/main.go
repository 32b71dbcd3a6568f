// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Runtab summarizes simulator run reports as aligned tables.
//
// Usage:
//
//	runtab [flags] [report...]
//	runtab -batch dir [flags]
//
// A run report is a text file whose first lines are a header, whose
// middle lines are data rows, and whose last lines are a footer. Each
// data row starts with a 48-character label followed by a value, and
// the same label appears once per section of the report (for example
// once each for forward, backward and overall branches). Runtab
// groups the values by label and prints one row per label:
//
//	Type                                                       Forward            Backward             Overall
//	C. SAg:                                          16410479 (21.47%)    3561674 (10.16%)   19972153 (17.92%)
//
// Which lines are header, data and footer is decided by line number
// alone. Rows whose label starts with "Total" are aggregates and are
// printed with each value padded to 20 columns.
//
// By default, runtab reads the named reports (or standard input) and
// writes their tables to standard output.
//
// With -batch, runtab summarizes every file in dir whose name starts
// with -prefix, one at a time, printing each file name as it goes.
// Each table is written to a file named after its report with
// -trim-prefix leading and -trim-suffix trailing characters removed,
// in -out (default dir), or to the Cloud Storage bucket named by
// -gcs-bucket, or with -stdout to standard output.
//
// # Profiles
//
// All settings come from a profile, selected with -profile. Flags
// that are given explicitly override the profile. The built-in
// profiles are:
//
//	summary     lines 1-8 are echoed, 9-40 are data, the rest is
//	            printed after the table; batch selects "br2*" files
//	            and strips "br2." and ".out.<timestamp>" from names.
//	predictors  lines 1-7 are dropped, lines 25-26 are echoed, and
//	            only the SAg, GAg, gshare and hybrid rows ("C. ",
//	            "D. ", "E. ", "G. ") are printed; batch selects "4*"
//	            files and prints to standard output.
//
// More profiles can be loaded from a YAML file with -config:
//
//	profiles:
//	  - name: forward
//	    header_end: 10
//	    body_end: 18
//	    total_prefixes: ["Total"]
//	    filter: true
//	    filter_prefixes: ["A. ", "B. "]
//
// Prefix lists given to -total and -filter are separated by commas
// and are not trimmed, so "G. ,C. " selects "G. " and "C. ".
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/option"

	"github.com/1-Harshit/cs422-computer-architecture/internal/profile"
	"github.com/1-Harshit/cs422-computer-architecture/runfmt"
	runtabpkg "github.com/1-Harshit/cs422-computer-architecture/runtab"
	"github.com/1-Harshit/cs422-computer-architecture/storage/fs"
	"github.com/1-Harshit/cs422-computer-architecture/storage/fs/gcs"
	"github.com/1-Harshit/cs422-computer-architecture/storage/fs/local"
)

func main() {
	log.SetPrefix("runtab: ")
	log.SetFlags(0)

	if err := runtab(context.Background(), os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// errUsage reports a command line error. The flag set has already
// printed the details.
var errUsage = errors.New("usage error")

func usage(flags *flag.FlagSet) func() {
	return func() {
		fmt.Fprintf(flags.Output(), `Usage: runtab [flags] [report...]
       runtab -batch dir [flags]

runtab summarizes simulator run reports as aligned tables.
See "go doc github.com/1-Harshit/cs422-computer-architecture/cmd/runtab".

Built-in profiles: %s

Flags:
`, strings.Join(profile.Names(), ", "))
		flags.PrintDefaults()
	}
}

// batchFlags are only meaningful with -batch.
var batchFlags = []string{"prefix", "trim-prefix", "trim-suffix", "stdout", "out", "gcs-bucket", "gcs-prefix", "gcs-credentials"}

func runtab(ctx context.Context, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("runtab", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = usage(flags)

	var (
		flagProfile     = flags.String("profile", profile.Default, "use the named `profile`")
		flagConfig      = flags.String("config", "", "load additional profiles from YAML `file`")
		flagHeaderEnd   = flags.Int("header-end", 0, "first data `line`; earlier lines are header")
		flagBodyEnd     = flags.Int("body-end", 0, "last data `line`, or 0 for no footer")
		flagEchoHeader  = flags.Bool("echo-header", false, "print header lines before the table")
		flagEchoLines   = flags.String("echo-lines", "", "print `lines` N or N-M verbatim")
		flagDeferFooter = flags.Bool("defer-footer", false, "print footer lines after the table")
		flagTotal       = flags.String("total", "", "aggregate row label `prefixes`, comma-separated")
		flagFilter      = flags.String("filter", "", "print only rows whose label starts with one of `prefixes`, comma-separated")
		flagNoFilter    = flags.Bool("nofilter", false, "print every row, ignoring the profile's filter")
		flagSkipTable   = flags.Bool("skip-table", false, "print echoed lines only, without a table")
		flagBatch       = flags.String("batch", "", "summarize every selected report in `dir`")
		flagPrefix      = flags.String("prefix", "", "with -batch, select reports whose name starts with `prefix`")
		flagTrimPrefix  = flags.Int("trim-prefix", 0, "with -batch, drop `n` leading characters from output names")
		flagTrimSuffix  = flags.Int("trim-suffix", 0, "with -batch, drop `n` trailing characters from output names")
		flagStdout      = flags.Bool("stdout", false, "with -batch, write tables to standard output")
		flagOut         = flags.String("out", "", "with -batch, write tables into `dir` (default the batch directory)")
		flagBucket      = flags.String("gcs-bucket", "", "with -batch, write tables to Cloud Storage `bucket`")
		flagGCSPrefix   = flags.String("gcs-prefix", "", "with -batch, prefix object names with `path`")
		flagCredentials = flags.String("gcs-credentials", "", "with -batch, read Cloud Storage credentials from `file`")
		flagVerbose     = flags.Bool("v", false, "print verbose log messages")
	)
	if err := flags.Parse(args); err != nil {
		return errUsage
	}
	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	usageErr := func(format string, args ...interface{}) error {
		fmt.Fprintf(wErr, "runtab: "+format+"\n", args...)
		flags.Usage()
		return errUsage
	}
	if set["filter"] && *flagNoFilter {
		return usageErr("-filter and -nofilter are mutually exclusive")
	}
	if *flagBatch == "" {
		for _, name := range batchFlags {
			if set[name] {
				return usageErr("-%s requires -batch", name)
			}
		}
	} else if flags.NArg() > 0 {
		return usageErr("-batch does not take report arguments")
	}
	if *flagStdout && (set["out"] || set["gcs-bucket"]) {
		return usageErr("-stdout cannot be combined with -out or -gcs-bucket")
	}
	if set["out"] && set["gcs-bucket"] {
		return usageErr("-out and -gcs-bucket are mutually exclusive")
	}

	var profiles map[string]profile.Profile
	if *flagConfig != "" {
		var err error
		if profiles, err = profile.Load(*flagConfig); err != nil {
			return err
		}
	}
	prof, err := profile.Lookup(profiles, *flagProfile)
	if err != nil {
		return err
	}

	// Explicit flags override the profile.
	if set["header-end"] {
		prof.HeaderEnd = *flagHeaderEnd
	}
	if set["body-end"] {
		prof.BodyEnd = *flagBodyEnd
	}
	if set["echo-header"] {
		prof.EchoHeader = *flagEchoHeader
	}
	if set["echo-lines"] {
		prof.EchoLines = *flagEchoLines
	}
	if set["defer-footer"] {
		prof.DeferFooter = *flagDeferFooter
	}
	if set["total"] {
		prof.TotalPrefixes = splitPrefixes(*flagTotal)
	}
	if set["filter"] {
		prof.Filter = true
		prof.FilterPrefixes = splitPrefixes(*flagFilter)
	}
	if *flagNoFilter {
		prof.Filter = false
	}
	if set["skip-table"] {
		prof.SkipTable = *flagSkipTable
	}
	if set["prefix"] {
		prof.BatchPrefix = *flagPrefix
	}
	if set["trim-prefix"] {
		prof.TrimPrefix = *flagTrimPrefix
	}
	if set["trim-suffix"] {
		prof.TrimSuffix = *flagTrimSuffix
	}
	if set["stdout"] {
		prof.Stdout = *flagStdout
	}
	if set["out"] || set["gcs-bucket"] {
		prof.Stdout = false
	}

	pl, err := prof.Pipeline()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "runtab: ", 0)
	if *flagVerbose {
		logger.SetOutput(wErr)
	}

	if *flagBatch == "" {
		return summarizeFiles(pl, w, flags.Args())
	}

	b := &batch{
		pl:         pl,
		files:      runfmt.Files{Dir: *flagBatch, Prefix: prof.BatchPrefix},
		trimPrefix: prof.TrimPrefix,
		trimSuffix: prof.TrimSuffix,
		w:          w,
		logger:     logger,
	}
	switch {
	case prof.Stdout:
		// Leave b.fsys nil.
	case *flagBucket != "":
		var opts []option.ClientOption
		if *flagCredentials != "" {
			opts = append(opts, option.WithCredentialsFile(*flagCredentials))
		}
		gfs, err := gcs.NewFS(ctx, *flagBucket, *flagGCSPrefix, opts...)
		if err != nil {
			return err
		}
		defer gfs.Close()
		b.fsys = gfs
	default:
		out := *flagOut
		if out == "" {
			out = *flagBatch
		}
		b.fsys = local.NewFS(out)
		b.inPlace = samePath(out, *flagBatch)
	}
	return b.run(ctx)
}

// splitPrefixes splits a comma-separated prefix list. The empty
// string is the empty list.
func splitPrefixes(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func samePath(a, b string) bool {
	a, errA := filepath.Abs(a)
	b, errB := filepath.Abs(b)
	return errA == nil && errB == nil && a == b
}

// summarizeFiles writes the table of each report in paths to w. The
// path "-", or an empty list, means standard input.
func summarizeFiles(pl *runtabpkg.Pipeline, w io.Writer, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		if path == "-" {
			if err := pl.Process(os.Stdin, "<stdin>", w); err != nil {
				return err
			}
			continue
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = pl.Process(f, path, w)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// A batch summarizes the selected reports of a directory, one at a
// time.
type batch struct {
	pl    *runtabpkg.Pipeline
	files runfmt.Files

	// fsys receives one output file per report. If fsys is nil,
	// tables are written to w.
	fsys                   fs.FS
	trimPrefix, trimSuffix int

	// inPlace is set if fsys writes into the batch directory.
	// reports then holds every selected name, none of which may
	// be used for an output.
	inPlace bool
	reports map[string]bool

	w      io.Writer
	logger *log.Logger
}

func (b *batch) run(ctx context.Context) error {
	if b.inPlace {
		list := runfmt.Files{Dir: b.files.Dir, Prefix: b.files.Prefix}
		b.reports = make(map[string]bool)
		for list.Scan() {
			b.reports[list.Name()] = true
		}
		if err := list.Err(); err != nil {
			return err
		}
	}

	n := 0
	for b.files.Scan() {
		name := b.files.Name()
		fmt.Fprintln(b.w, name)
		if err := b.summarize(ctx, name, b.files.Path()); err != nil {
			return fmt.Errorf("summarizing %s: %w", name, err)
		}
		fmt.Fprintln(b.w)
		n++
	}
	if err := b.files.Err(); err != nil {
		return err
	}
	b.logger.Printf("%d reports summarized", n)
	return nil
}

func (b *batch) summarize(ctx context.Context, name, path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	if b.fsys == nil {
		return b.pl.Process(in, path, b.w)
	}

	outName, err := runfmt.OutputName(name, b.trimPrefix, b.trimSuffix)
	if err != nil {
		return err
	}
	if b.inPlace && b.reports[outName] {
		return fmt.Errorf("output %s would overwrite a report", outName)
	}
	out, err := b.fsys.NewWriter(ctx, outName, map[string]string{"report": name})
	if err != nil {
		return err
	}
	if err := b.pl.Process(in, path, out); err != nil {
		out.CloseWithError(err)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	b.logger.Printf("%s -> %s", name, outName)
	return nil
}
