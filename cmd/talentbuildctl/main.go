/*
talentbuildctl counts, samples, and encodes talent-tree builds from a
parsed catalog.

usage: talentbuildctl [ -config <path> | -h ] [flags] <command>

All flags must come before the command.

commands:

	count		count every valid build of a tree under its budget
	generate	sample up to -limit builds, evenly spaced across the build space
	encode		pack a build (read as JSON from stdin) into a talent hash
	decode		unpack a talent hash back into a build, printed as JSON

flags:

	-config path
	  	engine config file (optional; env vars and defaults still apply)
	-catalog path
	  	catalog JSON file to parse (overrides config.catalog.path)
	-class name
	  	className to select from the catalog
	-spec name
	  	specName to select from the catalog
	-tree kind
	  	which tree within the selection: "class", "spec", or "hero:<id>" (default "spec")
	-limit n
	  	max builds returned by generate (default from config.solver.sample_limit)
	-hash s
	  	talent hash to decode
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/talentdag/engine/catalog"
	"github.com/talentdag/engine/codec"
	"github.com/talentdag/engine/config"
	"github.com/talentdag/engine/constraint"
	"github.com/talentdag/engine/counter"
	"github.com/talentdag/engine/tree"
	"github.com/talentdag/engine/unrank"
)

const version = "v0.1.0"

type cliArgs struct {
	command     string
	configPath  string
	catalogPath string
	class       string
	spec        string
	treeSel     string
	limit       int
	hash        string
}

func parseArgs() cliArgs {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: talentbuildctl [ -config <path> ] [flags] <command>")
		fmt.Fprintln(os.Stderr, "\ncommands:\n  count\n  generate\n  encode\n  decode")
		flag.PrintDefaults()
	}
	var a cliArgs
	flag.StringVar(&a.configPath, "config", "", "engine config file")
	flag.StringVar(&a.catalogPath, "catalog", "", "catalog JSON file")
	flag.StringVar(&a.class, "class", "", "className to select")
	flag.StringVar(&a.spec, "spec", "", "specName to select")
	flag.StringVar(&a.treeSel, "tree", "spec", `tree within the selection: "class", "spec", or "hero:<id>"`)
	flag.IntVar(&a.limit, "limit", 0, "max builds for generate")
	flag.StringVar(&a.hash, "hash", "", "talent hash to decode")
	ver := flag.Bool("v", false, "print version and exit")
	flag.Parse()
	if *ver {
		fmt.Printf("talentbuildctl version %s\n", version)
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		fail("exactly one command required: count | generate | encode | decode")
	}
	a.command = flag.Arg(0)
	return a
}

func fail(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	flag.Usage()
	os.Exit(1)
}

func main() {
	log.SetFlags(log.LstdFlags)
	args := parseArgs()

	cfg, err := config.Load(args.configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	catalogPath := args.catalogPath
	if catalogPath == "" {
		catalogPath = cfg.Catalog.Path
	}
	if catalogPath == "" {
		log.Fatalf("no catalog path given (-catalog or catalog.path in config)")
	}
	limit := args.limit
	if limit <= 0 {
		limit = cfg.Solver.SampleLimit
	}

	records, err := loadCatalog(catalogPath)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	specs, err := catalog.Parse(records, catalog.DefaultBudgets())
	if err != nil {
		log.Fatalf("parse: %v", err)
	}
	spec, err := selectSpecialization(specs, args.class, args.spec)
	if err != nil {
		log.Fatalf("select: %v", err)
	}
	t, err := selectTree(spec, args.treeSel)
	if err != nil {
		log.Fatalf("select: %v", err)
	}

	store := constraint.Store{}
	lookup := codec.BuildEntryLookup(t)

	switch args.command {
	case "count":
		runCount(t, store)
	case "generate":
		runGenerate(t, store, limit)
	case "encode":
		runEncode(lookup)
	case "decode":
		runDecode(args.hash, lookup)
	default:
		fail(fmt.Sprintf("unknown command %q: count | generate | encode | decode", args.command))
	}
}

func loadCatalog(path string) ([]catalog.RawCatalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []catalog.RawCatalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return records, nil
}

func selectSpecialization(specs []tree.Specialization, class, spec string) (*tree.Specialization, error) {
	for i := range specs {
		if (class == "" || specs[i].ClassName == class) && (spec == "" || specs[i].SpecName == spec) {
			return &specs[i], nil
		}
	}
	return nil, fmt.Errorf("no specialization matching class=%q spec=%q", class, spec)
}

func selectTree(spec *tree.Specialization, sel string) (*tree.TalentTree, error) {
	switch {
	case sel == "class":
		return spec.ClassTree, nil
	case sel == "spec" || sel == "":
		return spec.SpecTree, nil
	case strings.HasPrefix(sel, "hero:"):
		idStr := strings.TrimPrefix(sel, "hero:")
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, fmt.Errorf("invalid hero id %q: %w", idStr, err)
		}
		for _, ht := range spec.HeroTrees {
			if ht.SubTreeID != nil && *ht.SubTreeID == id {
				return ht, nil
			}
		}
		return nil, fmt.Errorf("no hero tree with id %d", id)
	default:
		return nil, fmt.Errorf("invalid -tree %q", sel)
	}
}

func runCount(t *tree.TalentTree, store constraint.Store) {
	result, err := counter.CountTreeBuilds(t, store)
	if err != nil {
		log.Fatalf("count: %v", err)
	}
	for _, w := range result.Warnings {
		log.Printf("warning [%s]: %s", w.Check, w.Message)
	}
	fmt.Printf("%s builds (%dms)\n", result.Count.String(), result.DurationMs)
}

func runGenerate(t *tree.TalentTree, store constraint.Store, limit int) {
	builds, warnings, err := unrank.GenerateTreeBuilds(t, store, limit)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}
	for _, w := range warnings {
		log.Printf("warning [%s]: %s", w.Check, w.Message)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(builds); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}

func runEncode(lookup codec.EntryLookup) {
	var raw map[int]codec.Selection
	if err := json.NewDecoder(os.Stdin).Decode(&raw); err != nil {
		log.Fatalf("read selection JSON from stdin: %v", err)
	}
	hash, err := codec.EncodeTalentHash(lookup, raw)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}
	fmt.Println(hash)
}

func runDecode(hash string, lookup codec.EntryLookup) {
	selections, err := codec.DecodeTalentHash(hash, lookup)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(selections); err != nil {
		log.Fatalf("encode output: %v", err)
	}
}
