package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gostonefire/memhashset"
	"github.com/gostonefire/memhashset/bench"
	"github.com/gostonefire/memhashset/crt"
)

const (
	historyFileEnv     = "MEMHASHSET_HISTFILE"
	historyFileDefault = ".memhashset_history"
)

func main() {
	crtName := flag.String("crt", "chaining", "collision resolution technique: chaining, linear, quadratic or double")
	capacity := flag.Int64("capacity", 1024, "initial capacity of the table")
	runBench := flag.Bool("bench", false, "run the benchmark instead of the interactive prompt")
	ops := flag.Int("ops", 100000, "number of elements per benchmark round")
	warmup := flag.Int("warmup", 2, "number of untimed warmup rounds before measuring")
	seed := flag.Int64("seed", 42, "seed for the benchmark element sequence")
	flag.Parse()

	logger, err := initLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to initialize logger: %s\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	technique, err := techniqueFromName(*crtName)
	if err != nil {
		logger.Fatal("invalid flag", zap.Error(err))
	}

	if *runBench {
		runBenchmark(technique, *capacity, *ops, *warmup, *seed, logger)
		return
	}

	repl(technique, *capacity, logger)
}

// initLogger - Builds a production zap logger with RFC3339 timestamps
func initLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format(time.RFC3339))
	}

	return config.Build()
}

// techniqueFromName - Translates the -crt flag value to its crt package constant
func techniqueFromName(name string) (technique int, err error) {
	switch strings.ToLower(name) {
	case "chaining":
		technique = crt.SeparateChaining
	case "linear":
		technique = crt.LinearProbing
	case "quadratic":
		technique = crt.QuadraticProbing
	case "double":
		technique = crt.DoubleHashing
	default:
		err = fmt.Errorf("unknown collision resolution technique: %s", name)
	}

	return
}

// runBenchmark - Creates a hash set over int64 elements and drives the bench runner against it
func runBenchmark(technique int, capacity int64, ops, warmup int, seed int64, logger *zap.Logger) {
	hashSet, setInfo, err := memhashset.NewHashSet[int64](technique, capacity, nil)
	if err != nil {
		logger.Fatal("unable to create hash set", zap.Error(err))
	}

	logger.Info("benchmark start",
		zap.Int("crt", setInfo.CollisionResolutionTechnique),
		zap.Int64("capacity", setInfo.Capacity),
		zap.Int("ops", ops),
		zap.Int("warmup", warmup),
	)

	runner := bench.NewRunner(ops, warmup, seed, logger)
	for _, result := range runner.Run(hashSet) {
		fmt.Printf("%-8s %10d ops %14s %12.1f ns/op\n", result.Operation, result.Ops, result.Elapsed, result.NsPerOp)
	}
}

// repl - Runs the interactive prompt over a hash set of string elements
func repl(technique int, capacity int64, logger *zap.Logger) {
	hashSet, setInfo, err := memhashset.NewHashSet[string](technique, capacity, nil)
	if err != nil {
		logger.Fatal("unable to create hash set", zap.Error(err))
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// History and banner only make sense when a human is on the other end
	interactive := isatty.IsTerminal(os.Stdin.Fd())
	var historyFile string
	if interactive {
		historyFile = dotfilePath(historyFileEnv, historyFileDefault)
		if historyFile != "" {
			if f, err := os.Open(historyFile); err == nil {
				_, _ = line.ReadHistory(f)
				_ = f.Close()
			}
		}
		fmt.Printf("memhashset (crt %d, capacity %d), type help for commands\n",
			setInfo.CollisionResolutionTechnique, setInfo.Capacity)
	}

	for {
		input, err := line.Prompt("memhashset> ")
		if err != nil {
			break
		}

		fields := strings.Fields(input)
		if len(fields) == 0 {
			continue
		}
		if interactive {
			line.AppendHistory(input)
		}

		if quit := execute(hashSet, fields); quit {
			break
		}
	}

	if interactive && historyFile != "" {
		if f, err := os.Create(historyFile); err == nil {
			_, _ = line.WriteHistory(f)
			_ = f.Close()
		}
	}
}

// execute - Dispatches one prompt line against the hash set
func execute(hashSet *memhashset.HashSet[string], fields []string) (quit bool) {
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		quit = true
	case "insert":
		if len(fields) != 2 {
			fmt.Println("usage: insert <element>")
			return
		}
		fmt.Println(hashSet.Insert(fields[1]))
	case "find":
		if len(fields) != 2 {
			fmt.Println("usage: find <element>")
			return
		}
		fmt.Println(hashSet.Find(fields[1]))
	case "remove":
		if len(fields) != 2 {
			fmt.Println("usage: remove <element>")
			return
		}
		fmt.Println(hashSet.Remove(fields[1]))
	case "count":
		fmt.Println(hashSet.Count())
	case "clear":
		hashSet.Clear()
	case "stat":
		stat := hashSet.Stat(false)
		fmt.Printf("records: %d, capacity: %d\n", stat.Records, stat.Capacity)
	case "help":
		fmt.Println("commands: insert <e>, find <e>, remove <e>, count, clear, stat, quit")
	default:
		fmt.Printf("unknown command: %s\n", fields[0])
	}

	return
}

// dotfilePath - Returns the path to the history dotfile, the env variable wins over $HOME
func dotfilePath(envOverride, dotFilename string) string {
	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		return path
	}

	if home := os.Getenv("HOME"); home != "" {
		return fmt.Sprintf("%s/%s", home, dotFilename)
	}

	return ""
}
