package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/listener-He/fast-blur/pkg/blurfile"
	"github.com/listener-He/fast-blur/pkg/fastblur"
)

var version = "dev"

func main() {
	var (
		helpFlag    bool
		versionFlag bool
		decryptFlag bool
		fileFlag    bool
		passphrase  string
		output      string
		keyHex      string
		segment     uint8
		fixedShift  uint
		strategy    string
	)
	flags := flag.NewFlagSet("fastblur", flag.ContinueOnError)
	flags.BoolVarP(&helpFlag, "help", "h", false, "Prints this usage information.")
	flags.BoolVar(&versionFlag, "version", false, "Prints the fastblur version.")
	flags.BoolVarP(&decryptFlag, "decrypt", "d", false, "Reverse the transform instead of applying it.")
	flags.BoolVarP(&fileFlag, "file", "f", false, "Treat INPUT as a file path and seal/unseal it with a passphrase.")
	flags.StringVarP(&passphrase, "passphrase", "p", "", "Passphrase used to derive key material in file mode.")
	flags.StringVarP(&output, "output", "o", "", "Output path in file mode. Defaults to INPUT plus or minus a .fblr suffix.")
	flags.StringVarP(&keyHex, "key", "k", "", "64-bit key as a hex string for text mode. Defaults to the built-in key.")
	flags.Uint8VarP(&segment, "segment", "g", 0, "Key segment byte overriding the one derived from the key.")
	flags.UintVar(&fixedShift, "fixed-shift", 0, "Use fixed-shift mode with the given rotation amount (masked to 0-7).")
	flags.StringVarP(&strategy, "strategy", "s", "adaptive", "Execution strategy: adaptive, direct, unrolled, lookup, or batched.")
	flags.Usage = func() {
		fmt.Printf(`
fastblur applies fast, reversible XOR + bit-rotation obfuscation to strings and files.

USAGE:  fastblur [FLAGS] INPUT

In text mode (the default), INPUT is a string. The transformed bytes are printed as Base64; with -d, INPUT is Base64 and the recovered string is printed.
In file mode (-f), INPUT is a path. The file is sealed into INPUT.fblr with key material derived from the passphrase; with -d the .fblr suffix is stripped instead.

FLAGS:
%s
SECURITY:
    This is not encryption, this is obfuscation, and they are very different things!
The transform is reversible by construction and carries no integrity information: transforming with the wrong key or passphrase silently produces wrong bytes.
Use it to keep casual eyes off test data, cache entries, or log payloads, and nothing more.
`, flags.FlagUsages())
	}
	if len(os.Args) == 1 {
		flags.Usage()
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		flags.Usage()
		fatal("Error parsing flags: %v", err)
	}
	if helpFlag {
		flags.Usage()
		return
	}
	if versionFlag {
		echo("fastblur %s", version)
		return
	}
	if flags.NArg() != 1 {
		fatal("Expected exactly one INPUT argument, got %d", flags.NArg())
	}
	input := flags.Arg(0)

	if fileFlag {
		runFileMode(input, output, passphrase, decryptFlag, fixedShift, flags.Changed("fixed-shift"))
		return
	}
	runTextMode(input, keyHex, segment, flags.Changed("segment"), strategy, decryptFlag, fixedShift, flags.Changed("fixed-shift"))
}

func runTextMode(input, keyHex string, segment uint8, segmentSet bool, strategy string, decrypt bool, fixedShift uint, fixedSet bool) {
	opts := []fastblur.Option{fastblur.WithParallel()}
	if keyHex != "" {
		key, err := strconv.ParseUint(strings.TrimPrefix(keyHex, "0x"), 16, 64)
		if err != nil {
			fatal("Failed to parse KEY, must be a hex string of at most 16 digits: %v", err)
		}
		opts = append(opts, fastblur.WithKey(key))
	}
	if segmentSet {
		opts = append(opts, fastblur.WithKeySegment(segment))
	}
	if fixedSet {
		opts = append(opts, fastblur.WithFixedShift(fixedShift))
	}
	strat, err := fastblur.ParseStrategy(strategy)
	if err != nil {
		fatal("%v", err)
	}
	opts = append(opts, fastblur.WithStrategy(strat))

	eng, err := fastblur.New(opts...)
	if err != nil {
		fatal("Failed to construct engine: %v", err)
	}
	if decrypt {
		plain, err := eng.DecryptText(input, nil)
		if err != nil {
			fatal("Failed to decode input: %v", err)
		}
		fmt.Println(plain)
		return
	}
	encoded, err := eng.EncryptText(input, nil)
	if err != nil {
		fatal("Failed to transform input: %v", err)
	}
	fmt.Println(encoded)
}

func runFileMode(path, output, passphrase string, decrypt bool, fixedShift uint, fixedSet bool) {
	if passphrase == "" {
		fatal("File mode requires a passphrase, see the -p flag")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		fatal("Failed to read %s: %v", path, err)
	}
	gen, err := blurfile.NewKeyGenerator()
	if err != nil {
		fatal("Failed to construct key generator: %v", err)
	}
	pass := blurfile.Passphrase(passphrase)

	var result []byte
	if decrypt {
		result, err = blurfile.Unseal(gen, pass, data)
		if err != nil {
			fatal("Failed to unseal %s: %v", path, err)
		}
		if output == "" {
			output = strings.TrimSuffix(path, ".fblr")
			if output == path {
				output = path + ".plain"
			}
		}
	} else {
		var opts []blurfile.SealOpt
		if fixedSet {
			opts = append(opts, blurfile.FixedShift(fixedShift))
		}
		result, err = blurfile.Seal(gen, pass, data, opts...)
		if err != nil {
			fatal("Failed to seal %s: %v", path, err)
		}
		if output == "" {
			output = path + ".fblr"
		}
	}
	if err := os.WriteFile(output, result, 0600); err != nil {
		fatal("Failed to write %s: %v", output, err)
	}
	echo("Wrote %s", output)
}

func fatal(msg string, args ...any) {
	echo(msg, args...)
	os.Exit(1)
}

func echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
