// Command vebbench measures veb sets over a list of universe widths and
// optionally checks each one against a sorted reference.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"VanEmdeBoas/bits"
	"VanEmdeBoas/radixsort"
	"VanEmdeBoas/utils"
	"VanEmdeBoas/veb"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

type result struct {
	width    uint
	n        int
	distinct int
	levels   int
	insert   time.Duration
	contains time.Duration
	walk     time.Duration
	erase    time.Duration
	visits   uint64
	bytes    int
	mem      utils.MemReport
}

func main() {
	var (
		widthsArg = flag.String("widths", "8,16,24,32,48,64", "Comma-separated universe widths in bits")
		n         = flag.Int("n", 1_000_000, "Values inserted per width")
		seed      = flag.Int64("seed", time.Now().UnixNano(), "Base RNG seed")
		workers   = flag.Int("workers", runtime.NumCPU(), "Widths measured in parallel")
		verify    = flag.Bool("verify", true, "Check the successor walk against a sorted reference")
		mem       = flag.Bool("mem", false, "Print a memory report per width")
		jsonOut   = flag.Bool("json", false, "Log as JSON")
		verbose   = flag.Bool("v", false, "Debug logging")
		maxValue  = flag.Uint64("max", 0, "Largest value to insert; when set, replaces -widths with the narrowest width holding it")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if *jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)

	widths := resolveWidths(*widthsArg, *maxValue)
	if len(widths) == 0 {
		fail("widths must be non-empty")
	}
	for _, w := range widths {
		if w < 1 || w > 64 {
			fail("width %d out of range [1, 64]", w)
		}
	}
	if *n <= 0 {
		fail("n must be > 0")
	}
	if *workers <= 0 {
		fail("workers must be > 0")
	}

	logger.Info("start",
		"widths", fmt.Sprint(widths),
		"n", humanize.Comma(int64(*n)),
		"seed", *seed,
		"workers", *workers,
	)

	results := make([]result, len(widths))
	bar := progressbar.Default(int64(len(widths)), "widths")

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i, w := range widths {
		g.Go(func() error {
			res, err := run(ctx, logger, uint(w), limitFor(uint(w), *maxValue), *n, *seed+int64(i)*1_000_003, *verify)
			if err != nil {
				return fmt.Errorf("width %d: %w", w, err)
			}
			results[i] = res
			_ = bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fail("%v", err)
	}
	_ = bar.Finish()

	for _, res := range results {
		logger.Info("width",
			"w", res.width,
			"levels", res.levels,
			"distinct", humanize.Comma(int64(res.distinct)),
			"insert_ns_op", perOp(res.insert, res.n),
			"contains_ns_op", perOp(res.contains, res.n),
			"walk_ns_op", perOp(res.walk, res.distinct),
			"erase_ns_op", perOp(res.erase, res.n),
			"visits_op", fmt.Sprintf("%.2f", float64(res.visits)/float64(3*res.n+res.distinct)),
			"size", humanize.IBytes(uint64(res.bytes)),
		)
		if *mem {
			if *jsonOut {
				fmt.Println(res.mem.JSON())
			} else {
				res.mem.Print(0)
			}
		}
	}
}

// resolveWidths returns the widths to measure: the one that fits maxValue
// when it is set, the parsed list otherwise.
func resolveWidths(arg string, maxValue uint64) []int {
	if maxValue > 0 {
		return []int{int(bits.WidthFor(maxValue))}
	}
	return parseCSVInts(arg)
}

func limitFor(width uint, maxValue uint64) uint64 {
	if maxValue > 0 {
		return min(maxValue, bits.LowMask(width))
	}
	return bits.LowMask(width)
}

// randomValue draws uniformly from [0, limit].
func randomValue(r *rand.Rand, limit uint64) uint64 {
	if limit == math.MaxUint64 {
		return r.Uint64()
	}
	return r.Uint64() % (limit + 1)
}

func run(ctx context.Context, logger *slog.Logger, width uint, limit uint64, n int, seed int64, verify bool) (result, error) {
	r := rand.New(rand.NewSource(seed))
	s, err := veb.New[uint64](width)
	if err != nil {
		return result{}, err
	}

	values := make([]uint64, n)
	for i := range values {
		values[i] = randomValue(r, limit)
	}

	res := result{width: width, n: n, levels: s.Levels()}

	start := time.Now()
	for _, v := range values {
		s.Insert(v)
	}
	res.insert = time.Since(start)
	res.distinct = s.Len()

	if err := ctx.Err(); err != nil {
		return result{}, err
	}

	start = time.Now()
	for _, v := range values {
		if !s.Contains(v) {
			return result{}, fmt.Errorf("inserted value %d missing", v)
		}
	}
	res.contains = time.Since(start)

	start = time.Now()
	walked := make([]uint64, 0, res.distinct)
	for v := range s.All() {
		walked = append(walked, v)
	}
	res.walk = time.Since(start)

	if verify {
		want := slices.Clone(values)
		radixsort.Uint64s(want)
		want = slices.Compact(want)
		if !slices.Equal(want, walked) {
			return result{}, fmt.Errorf("successor walk differs from sorted reference (seed %d)", seed)
		}
		logger.Debug("verified", "w", width, "distinct", len(want))
	}

	res.bytes = s.ByteSize()
	res.mem = s.MemDetailed()
	res.mem.Name = fmt.Sprintf("veb.Set[width=%d]", width)

	start = time.Now()
	for _, v := range values {
		s.Erase(v)
	}
	res.erase = time.Since(start)
	res.visits = s.Stats().Visits

	if !s.Empty() {
		return result{}, fmt.Errorf("%d values left after erasing everything", s.Len())
	}
	return res, nil
}

func perOp(d time.Duration, ops int) string {
	if ops == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(d.Nanoseconds())/float64(ops))
}

func parseCSVInts(v string) []int {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			fail("failed to parse int %q: %v", p, err)
		}
		out = append(out, n)
	}
	return out
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
