package main

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/mihai-negru/go-data-structures/Trees"
	"github.com/spf13/pflag"
)

var (
	bAddN  = pflag.Uint32("n", 100000, "number of keys added per run")
	bSteps = pflag.Uint32("steps", 10, "number of runs, each deleting a larger share of the keys")
	seed   = pflag.Int64("seed", 0, "seed of the key generator")
	show   = pflag.Uint32("print", 0, "print the traversals of a tree holding this many keys, then exit")
	debug  = pflag.Bool("debug", false, "log at debug level")
)

var _R *rand.Rand
var bRmvN uint32

func create(b *testing.B, all []int) (*Trees.RBTree[int, uint32], []int) {
	b.Helper()
	tree := Trees.NewOrderedRB[int, uint32](*bAddN)
	for range *bAddN {
		a := _R.Int()
		if e := tree.Insert(a); e != nil {
			b.Fatal(e)
		}
		all = append(all, a)
	}
	return tree, all
}

var __r1 bool

// missed counts deletions of keys that were already gone, random keys can repeat.
var missed int

func BenchmarkDelQry(b *testing.B) {
	all := make([]int, 0, *bAddN)
	b.ResetTimer()
	for range b.N {
		b.StopTimer()
		var tree *Trees.RBTree[int, uint32]
		tree, all = create(b, all[:0])
		b.StartTimer()
		for _, v := range all[:bRmvN] {
			if tree.Delete(v) != nil {
				missed++
			}
		}
		for _, v := range all {
			__r1 = tree.Has(v)
		}
	}
}

func render(n uint32) error {
	tree := Trees.NewOrderedRB[int, uint32](n)
	for _, k := range _R.Perm(int(n)) {
		if e := tree.Insert(k); e != nil {
			return e
		}
	}
	for _, o := range []Trees.Order{Trees.OrderIn, Trees.OrderPre, Trees.OrderPost, Trees.OrderLevel} {
		fmt.Print(color.CyanString("%-10s ", o))
		if e := tree.Render(os.Stdout, o, strconv.Itoa); e != nil {
			return e
		}
		fmt.Println()
	}
	slog.Info("tree", slog.Int("height", tree.Height()), slog.Any("size", tree.Size()), slog.Any("valid", tree.Validate() == nil))
	return nil
}

func main() {
	testing.Init()
	pflag.Parse()
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, &slogcolor.Options{
		Level:         level,
		TimeFormat:    "15:04:05.000",
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 16,
		MsgPrefix:     color.HiWhiteString("|"),
		MsgColor:      color.New(color.FgHiWhite),
		MsgLength:     24,
	})))
	_R = rand.New(rand.NewSource(*seed))

	if *show > 0 {
		if e := render(*show); e != nil {
			slog.Error("cannot render tree", slog.Any("error", e))
			os.Exit(1)
		}
		return
	}
	if *bSteps == 0 {
		slog.Error("steps must be positive")
		os.Exit(2)
	}
	var cs []float64
	var N int
	for i := uint32(1); i <= *bSteps; i++ {
		bRmvN = *bAddN / *bSteps * i
		missed = 0
		br := testing.Benchmark(BenchmarkDelQry)
		cs = append(cs, float64(br.T.Milliseconds()))
		N += br.N
		slog.Debug("step done", slog.Any("step", i), slog.Any("removed", bRmvN), slog.Int("runs", br.N), slog.Any("elapsed", br.T), slog.Int("missed deletes", missed))
	}
	var sum float64 = 0
	for _, v := range cs {
		sum += v
	}
	avg := sum / float64(N)
	sum = 0
	for _, v := range cs {
		a := v - avg
		sum += a * a
	}
	slog.Info("measured", slog.Float64("average ms/op", avg), slog.Float64("stddev ms/op", math.Sqrt(sum/float64(N))))
}
