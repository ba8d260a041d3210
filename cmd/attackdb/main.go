// attackdb maintains the canonical attack table used by the attack engine.
//
// Usage:
//
//	go run ./cmd/attackdb/ [-config config.toml] <command> [args]
//
// Commands:
//
//	regenerate                       rebuild the default table and save it
//	stats                            print table statistics
//	lookup <clusters> <ind> <brk> <chain>
//	                                 resolve one combo, e.g. lookup 4,4,4 0 0 3
//	search <min_damage> [combo_type] list matching rules by damage
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/CloudTigerx/BladeFighters-sub001/internal/attack"
	"github.com/CloudTigerx/BladeFighters-sub001/internal/attackdb"
	"github.com/CloudTigerx/BladeFighters-sub001/internal/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "engine config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}
	log, err := cfg.Logging.BuildLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "regenerate":
		err = regenerate(cfg, log)
	case "stats":
		err = stats(cfg, log)
	case "lookup":
		err = lookup(cfg, log, args[1:])
	case "search":
		err = search(cfg, log, args[1:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: attackdb [-config config.toml] <regenerate|stats|lookup|search> [args]")
}

func regenerate(cfg *config.Config, log *zap.Logger) error {
	db := attackdb.New(log)
	db.GenerateDefaults()
	if err := db.SaveFile(cfg.Database.Path); err != nil {
		return err
	}
	fmt.Printf("regenerated %d rules → %s\n", db.Len(), cfg.Database.Path)

	// Sanity check the stacked-cluster combination rule.
	combo := attack.Combo{ClusterSizes: []int{4, 4, 4}, ChainMultiplier: 3}
	out := db.CalculateAttackOutput(combo)
	fmt.Printf("verify %s → %s\n", combo.Key(), describe(out))
	return nil
}

func stats(cfg *config.Config, log *zap.Logger) error {
	db := attackdb.Open(cfg.Database.Path, cfg.Database.Autogenerate, log)
	s := db.Statistics()
	fmt.Printf("rules:     %d (+%d overrides)\n", s.TotalRules, s.Overrides)
	for _, t := range []attack.ComboType{attack.ComboPureCluster, attack.ComboPureIndividual, attack.ComboMixed, attack.ComboEmpty} {
		if n := s.ByType[t]; n > 0 {
			fmt.Printf("  %-16s %d\n", t, n)
		}
	}
	fmt.Printf("damage:    %d..%d (avg %.1f)\n", s.MinDamage, s.MaxDamage, s.AvgDamage)
	return nil
}

func lookup(cfg *config.Config, log *zap.Logger, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("lookup needs <clusters> <individual> <breaker> <chain>")
	}
	clusters, err := parseClusters(args[0])
	if err != nil {
		return err
	}
	nums := make([]int, 3)
	for i, a := range args[1:] {
		n, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("parse %q: %w", a, err)
		}
		nums[i] = n
	}

	db := attackdb.Open(cfg.Database.Path, cfg.Database.Autogenerate, log)
	combo := attack.Combo{
		ClusterSizes:     clusters,
		IndividualBlocks: nums[0],
		BreakerBlocks:    nums[1],
		ChainMultiplier:  nums[2],
	}
	out := db.CalculateAttackOutput(combo)
	fmt.Printf("%s → %s\n", combo.Key(), describe(out))
	return nil
}

func search(cfg *config.Config, log *zap.Logger, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("search needs <min_damage> [combo_type]")
	}
	minDamage, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("parse min damage %q: %w", args[0], err)
	}
	filter := attackdb.Filter{MinDamage: minDamage}
	if len(args) > 1 {
		filter.ComboType = attack.ComboType(args[1])
	}

	db := attackdb.Open(cfg.Database.Path, cfg.Database.Autogenerate, log)
	entries := db.Search(filter)
	for _, e := range entries {
		fmt.Printf("%-24s %s\n", e.Key, describe(e.Output))
	}
	fmt.Printf("%d rules matched\n", len(entries))
	return nil
}

func parseClusters(arg string) ([]int, error) {
	if arg == "0" || arg == "none" {
		return nil, nil
	}
	var sizes []int
	for _, part := range strings.Split(arg, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("parse cluster list %q: %w", arg, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func describe(out attack.Output) string {
	var parts []string
	for _, s := range out.Strikes {
		parts = append(parts, s.String())
	}
	strikes := "no strikes"
	if len(parts) > 0 {
		strikes = strings.Join(parts, " + ")
	}
	return fmt.Sprintf("%s, %d garbage (%s, %d damage)",
		strikes, out.GarbageBlocks, out.ComboType, out.TotalDamage)
}
