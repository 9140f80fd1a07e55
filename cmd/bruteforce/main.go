package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sandokanCat/open-utils/internal/cracker"
	"github.com/sandokanCat/open-utils/internal/hashes"
	"github.com/sandokanCat/open-utils/internal/report"
	"github.com/sandokanCat/open-utils/internal/wordlist"
)

var startTime = time.Now()

var (
	targetHash     string
	hashFile       string
	stdinMode      bool
	hashLength     int
	algoName       string
	customWordlist string
	mode           string
	threads        int
	saveFile       string
	jsonFile       string
	logFile        string
	quiet          bool
	config         string
)

var rootCmd = &cobra.Command{
	Use:   "bruteforce",
	Short: "Academic hash bruteforce tool (password+salt)",
	Long: `bruteforce cracks hex digests by trying every password and salt combination
from its wordlists under the supported hash algorithms, in parallel, stopping
at the first match.`,
	Example: `  bruteforce -x 5f4dcc3b5aa765d61d8327deb882cf99
  bruteforce -f hashes.txt -n 32 -w mylist.txt -t 4`,
	Version:       "1.4.2 by sandokan.cat",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if config != "" {
			viper.SetConfigFile(config)
			if err := viper.ReadInConfig(); err != nil {
				log.Printf("Warning: could not read config file: %v", err)
			}
		}
		if threads > 0 {
			viper.Set("threads", threads)
		}
		if logFile != "" {
			viper.Set("log", logFile)
		}
	},
	RunE: runAttack,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported algorithms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported algorithms:")
		for _, a := range hashes.Supported() {
			fmt.Printf("  - %-9s (%d hex chars)\n", a, a.HexLen())
		}
	},
}

func init() {
	rootCmd.Flags().StringVarP(&targetHash, "target-hash", "x", "", "Single target hash to crack")
	rootCmd.Flags().StringVarP(&hashFile, "hash-file", "f", "", "File containing one hash per line")
	rootCmd.Flags().BoolVarP(&stdinMode, "stdin-mode", "d", false, "Read target hashes from standard input")
	rootCmd.Flags().IntVarP(&hashLength, "hash-length", "n", 0, "Infer algorithm(s) by hash length")
	rootCmd.Flags().StringVarP(&algoName, "algo", "a", "", "Force algorithm (see the list command)")
	rootCmd.Flags().StringVarP(&customWordlist, "custom-wordlist", "w", "", "Add an extra custom wordlist")
	rootCmd.Flags().StringVarP(&mode, "mode", "m", "both", "Combination mode: ps, sp or both")
	rootCmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of parallel workers (default: CPU cores)")
	rootCmd.Flags().StringVarP(&saveFile, "save", "s", "", "Save cracked results to a file")
	rootCmd.Flags().StringVarP(&jsonFile, "json", "j", "", "Export result(s) to JSON")
	rootCmd.Flags().StringVarP(&logFile, "log", "l", "", "Path to log file (default: bruteforce.log)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress verbose output")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
	rootCmd.PersistentFlags().StringVar(&config, "config", "", "Config file path")

	rootCmd.AddCommand(listCmd)

	viper.SetEnvPrefix("BRUTEFORCE")
	viper.AutomaticEnv()
	viper.SetDefault("threads", runtime.NumCPU())
	viper.SetDefault("log", "bruteforce.log")
	viper.SetDefault("wordlists", []string{"wordlist/10k-most-common.txt", "wordlist/rockyou.txt"})
}

func runAttack(cmd *cobra.Command, args []string) error {
	picked := 0
	if targetHash != "" {
		picked++
	}
	if hashFile != "" {
		picked++
	}
	if stdinMode {
		picked++
	}
	if picked != 1 {
		return errors.New("provide exactly one of --target-hash, --hash-file or --stdin-mode")
	}

	runMode, err := cracker.ParseMode(mode)
	if err != nil {
		return err
	}

	var forced *hashes.Algorithm
	if algoName != "" {
		a, err := hashes.Parse(algoName)
		if err != nil {
			return fmt.Errorf("%w (see 'bruteforce list')", err)
		}
		forced = &a
	}

	sess := cracker.NewSession()
	sess.Start = startTime
	logger := newLogger(viper.GetString("log"), sess)

	targets, err := collectTargets()
	if err != nil {
		return err
	}

	lists := wordlist.Sources(customWordlist, viper.GetStringSlice("wordlists"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		cancel()
	}()

	var bar *pb.ProgressBar
	finishBar := func() {
		if bar != nil {
			bar.Finish()
			bar = nil
		}
	}

	eng := cracker.New(cracker.Options{
		Workers: viper.GetInt("threads"),
		Logger:  logger,
		Event: func(event string, kv map[string]any) {
			switch event {
			case "start":
				finishBar()
				if quiet {
					return
				}
				color.Cyan("\nTrying wordlist: %v", kv["wordlist"])
				fmt.Printf("Loaded %v words...\n", kv["words"])
				if units, ok := kv["units"].(uint64); ok {
					bar = pb.Full.Start64(int64(units))
				}
			case "missing":
				if !quiet {
					color.Yellow("%v not found. Skipping...", kv["wordlist"])
				}
			}
		},
		Progress: func(done, total uint64) {
			if bar != nil {
				bar.SetCurrent(int64(done))
			}
		},
	})

	rep := &report.Reporter{Save: saveFile, JSON: jsonFile, Quiet: quiet, Logger: logger}

	for _, target := range targets {
		if !hashes.ValidTarget(target) {
			color.Yellow("Skipping '%s': not a valid hex string", target)
			logger.Warn().Str("hash", target).Msg("not a valid hex string, skipping")
			continue
		}
		algos := hashes.Resolve(forced, target, hashLength)

		out, err := eng.Attack(ctx, target, lists, algos, runMode)
		finishBar()
		if err != nil {
			if errors.Is(err, context.Canceled) {
				if !quiet {
					color.Red("\nAttack interrupted by the user.")
				}
				return nil
			}
			return err
		}
		rep.Report(out, sess.Elapsed())
	}
	return nil
}

// collectTargets gathers the hashes to attack from whichever input source
// was selected.
func collectTargets() ([]string, error) {
	switch {
	case hashFile != "":
		f, err := os.Open(hashFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("hash file '%s' not found", hashFile)
			}
			return nil, err
		}
		defer f.Close()
		return readTargets(f)
	case stdinMode:
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			fmt.Println("Waiting for input... (press Ctrl+D to end)")
		}
		targets, err := readTargets(os.Stdin)
		if err != nil {
			return nil, err
		}
		if len(targets) == 0 {
			return nil, errors.New("no hashes provided via stdin")
		}
		return targets, nil
	default:
		return []string{targetHash}, nil
	}
}

func readTargets(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if t := strings.TrimSpace(sc.Text()); t != "" {
			out = append(out, t)
		}
	}
	return out, sc.Err()
}

// newLogger opens the warn-level session log. Logging goes to a file so the
// console stays free for the progress bar; if the file cannot be opened we
// degrade to stderr rather than abort.
func newLogger(path string, sess cracker.Session) zerolog.Logger {
	zerolog.TimeFieldFormat = "2006-01-02 15:04:05"
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l := zerolog.New(os.Stderr).Level(zerolog.WarnLevel).With().Timestamp().Logger()
		l.Warn().Err(err).Str("file", path).Msg("cannot open log file, logging to stderr")
		return l
	}
	return zerolog.New(f).Level(zerolog.WarnLevel).With().
		Timestamp().
		Str("session", sess.ID.String()).
		Logger()
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	fmt.Printf("Elapsed time: %.2f seconds\n", time.Since(startTime).Seconds())
	if err != nil {
		os.Exit(1)
	}
}
