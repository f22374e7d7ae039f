// Package cli implements infogen's command-line subcommands.
package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
	"github.com/zarlcorp/infogen/internal/profile"
	"github.com/zarlcorp/infogen/internal/vcf"
)

// CmdNames generates random Chinese names and prints one per line.
func CmdNames(args []string) {
	fs := newFlagSet("names")
	count := fs.Int("count", 10, "number of names to generate")
	gender := fs.String("gender", "all", "gender pool: boy, girl or all")
	asJSON := fs.Bool("json", false, "print as a JSON array")
	out := fs.String("out", "", "write names to a file instead of stdout")
	fs.Parse(args)

	g := name.New()
	names := g.Names(*count, parseGender(*gender))

	if *out != "" {
		writeLines(*out, names)
		return
	}
	if *asJSON {
		printJSON(names)
		return
	}
	for _, n := range names {
		fmt.Println(n)
	}
}

// CmdPhones generates phone numbers and prints each with its carrier name.
func CmdPhones(args []string) {
	fs := newFlagSet("phones")
	count := fs.Int("count", 10, "number of phone numbers to generate")
	carrier := fs.String("carrier", "", "restrict to carrier: mobile, unicom, telecom or virtual")
	prefix := fs.String("prefix", "", "fix the number prefix, overrides -carrier")
	dup := fs.Bool("dup", false, "allow duplicate numbers in the batch")
	asJSON := fs.Bool("json", false, "print as a JSON array")
	out := fs.String("out", "", "write numbers to a file instead of stdout")
	fs.Parse(args)

	g := phone.New()
	numbers, err := g.Numbers(*count, *prefix, parseCarrier(*carrier), !*dup)
	if err != nil {
		fatal(err)
	}
	if !*dup && len(numbers) < *count {
		fmt.Fprintf(os.Stderr, "infogen: only %d unique numbers available for this pool\n", len(numbers))
	}

	if *out != "" {
		writeLines(*out, numbers)
		return
	}
	if *asJSON {
		printJSON(numbers)
		return
	}
	for _, n := range numbers {
		fmt.Printf("%s  %s\n", n, g.CarrierName(n))
	}
}

// CmdVCF generates a batch of vCard files with a progress bar on stderr.
func CmdVCF(args []string) {
	fs := newFlagSet("vcf")
	files := fs.Int("files", 1, "number of .vcf files to create")
	contacts := fs.Int("contacts", 100, "contacts per file")
	dir := fs.String("dir", "./contacts", "output directory")
	namePrefix := fs.String("name", "", "filename prefix (default 通讯录)")
	gender := fs.String("gender", "all", "gender pool: boy, girl or all")
	carrier := fs.String("carrier", "", "restrict phone carrier")
	dup := fs.Bool("dup", false, "allow duplicate phone numbers")
	numbered := fs.Bool("numbered", false, "name files by sequence number instead of timestamp")
	start := fs.Int("start", 1, "first sequence number, with -numbered")
	plain := fs.Bool("plain", false, "unpadded sequence numbers, with -numbered")
	profilePath := fs.String("profile", "", "YAML profile with batch defaults")
	asJSON := fs.Bool("json", false, "print the batch result as JSON")
	fs.Parse(args)

	opts := vcf.BatchOptions{
		FileCount:       *files,
		ContactsPerFile: *contacts,
		OutputDir:       *dir,
		FilenamePrefix:  *namePrefix,
		Gender:          parseGender(*gender),
		Carrier:         parseCarrier(*carrier),
		UniquePhones:    !*dup,
		NamingMode:      vcf.NamingTimestamp,
		StartNumber:     *start,
		PlainNumbers:    *plain,
	}
	if *numbered {
		opts.NamingMode = vcf.NamingCustomNumber
	}

	if *profilePath != "" {
		p, err := profile.LoadFile(*profilePath)
		if err != nil {
			fatal(err)
		}
		fromFlags := opts
		opts = vcf.BatchOptions{
			FileCount:       *files,
			ContactsPerFile: *contacts,
			OutputDir:       *dir,
			UniquePhones:    true,
			NamingMode:      vcf.NamingTimestamp,
			StartNumber:     1,
		}
		p.Apply(&opts)
		applyFlagOverrides(&opts, fromFlags, fs)
	}

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetDescription("writing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	g := vcf.New()
	result := g.WriteFiles(opts, func(percent int) {
		bar.Set(percent)
	})
	bar.Finish()

	if *asJSON {
		printJSON(result)
	} else {
		printResult(result)
	}
	if !result.Success {
		os.Exit(1)
	}
}

// CmdPreview prints a few vCard entries without writing any files.
func CmdPreview(args []string) {
	fs := newFlagSet("preview")
	count := fs.Int("count", 3, "number of entries to preview")
	gender := fs.String("gender", "all", "gender pool: boy, girl or all")
	carrier := fs.String("carrier", "", "restrict phone carrier")
	fs.Parse(args)

	g := vcf.New()
	text, err := g.Preview(*count, vcf.Options{
		Gender:  parseGender(*gender),
		Carrier: parseCarrier(*carrier),
	})
	if err != nil {
		fatal(err)
	}
	fmt.Print(text)
}

// CmdStats prints the size of the underlying name and prefix pools.
func CmdStats(args []string) {
	fs := newFlagSet("stats")
	asJSON := fs.Bool("json", false, "print as JSON")
	fs.Parse(args)

	ns := name.New().Stats()
	ps := phone.New().Stats()

	if *asJSON {
		printJSON(struct {
			Names  name.Stats  `json:"names"`
			Phones phone.Stats `json:"phones"`
		}{ns, ps})
		return
	}

	fmt.Printf("  surnames:          %d\n", ns.Surnames)
	fmt.Printf("  boy given names:   %d double, %d single\n", ns.BoyDouble, ns.BoySingle)
	fmt.Printf("  girl given names:  %d double, %d single\n", ns.GirlDouble, ns.GirlSingle)
	fmt.Printf("  boy combinations:  %d\n", ns.Combinations.Boy)
	fmt.Printf("  girl combinations: %d\n", ns.Combinations.Girl)
	fmt.Printf("  phone prefixes:    %d total\n", ps.Total)
	fmt.Printf("    mobile %d, unicom %d, telecom %d, virtual %d\n",
		ps.Mobile, ps.Unicom, ps.Telecom, ps.Virtual)
}

func newFlagSet(cmd string) *flag.FlagSet {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: infogen %s [flags]\n", cmd)
		fs.PrintDefaults()
	}
	return fs
}

func parseGender(s string) name.Gender {
	switch strings.ToLower(s) {
	case "boy", "male", "m":
		return name.Boy
	case "girl", "female", "f":
		return name.Girl
	case "", "all", "any":
		return name.All
	default:
		fatal(fmt.Errorf("unknown gender %q, want boy, girl or all", s))
		return name.All
	}
}

func parseCarrier(s string) phone.Carrier {
	switch strings.ToLower(s) {
	case "":
		return ""
	case "mobile", "cmcc":
		return phone.Mobile
	case "unicom", "cucc":
		return phone.Unicom
	case "telecom", "ctcc":
		return phone.Telecom
	case "virtual", "mvno":
		return phone.Virtual
	default:
		fatal(fmt.Errorf("unknown carrier %q, want mobile, unicom, telecom or virtual", s))
		return ""
	}
}

// applyFlagOverrides re-applies flags the user set explicitly so they win
// over profile values.
func applyFlagOverrides(opts *vcf.BatchOptions, fromFlags vcf.BatchOptions, fs *flag.FlagSet) {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["files"] {
		opts.FileCount = fromFlags.FileCount
	}
	if set["contacts"] {
		opts.ContactsPerFile = fromFlags.ContactsPerFile
	}
	if set["dir"] {
		opts.OutputDir = fromFlags.OutputDir
	}
	if set["name"] {
		opts.FilenamePrefix = fromFlags.FilenamePrefix
	}
	if set["gender"] {
		opts.Gender = fromFlags.Gender
	}
	if set["carrier"] {
		opts.Carrier = fromFlags.Carrier
	}
	if set["dup"] {
		opts.UniquePhones = fromFlags.UniquePhones
	}
	if set["numbered"] {
		opts.NamingMode = fromFlags.NamingMode
	}
	if set["start"] {
		opts.StartNumber = fromFlags.StartNumber
	}
	if set["plain"] {
		opts.PlainNumbers = fromFlags.PlainNumbers
	}
}

func printResult(r vcf.BatchResult) {
	if r.Error != "" {
		fmt.Fprintf(os.Stderr, "infogen: %s\n", r.Error)
	}
	fmt.Printf("  files created:  %d\n", r.FilesCreated)
	if r.FilesFailed > 0 {
		fmt.Printf("  files failed:   %d\n", r.FilesFailed)
		for _, f := range r.FailedFiles {
			fmt.Printf("    %s\n", f)
		}
	}
	fmt.Printf("  total contacts: %d\n", r.TotalContacts)
	fmt.Printf("  output dir:     %s\n", r.OutputDir)
}

func writeLines(path string, lines []string) {
	data := strings.Join(lines, "\n")
	if len(lines) > 0 {
		data += "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		fatal(fmt.Errorf("write %s: %w", path, err))
	}
	fmt.Fprintf(os.Stderr, "wrote %d lines to %s\n", len(lines), path)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(fmt.Errorf("encode json: %w", err))
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "infogen: %v\n", err)
	os.Exit(1)
}
