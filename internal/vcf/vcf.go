// Package vcf composes generated names and phone numbers into vCard 3.0
// contact files and writes them in batches.
//
// The N: field splits a full name after its first rune. The surname
// table contains two-rune compound surnames (司马, 欧阳, ...), which this
// rule splits wrongly; consumers depend on the exact entry bytes, so the
// split is kept as is.
package vcf

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
)

// defaultFilenamePrefix is used when BatchOptions leaves the prefix empty.
const defaultFilenamePrefix = "通讯录"

// Contact pairs a generated name with a generated phone number.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Options select how contacts are drawn.
type Options struct {
	Gender       name.Gender   // empty means All
	Carrier      phone.Carrier // empty means any carrier
	UniquePhones bool
}

// NamingMode picks the filename scheme for a batch.
type NamingMode string

const (
	// NamingTimestamp stamps every file in a batch with one shared
	// local-time timestamp plus a 1-based padded index.
	NamingTimestamp NamingMode = "timestamp"
	// NamingCustomNumber numbers files sequentially from StartNumber.
	NamingCustomNumber NamingMode = "custom_number"
)

// BatchOptions configure one multi-file generation run.
type BatchOptions struct {
	FileCount       int
	ContactsPerFile int
	OutputDir       string
	FilenamePrefix  string // defaults to 通讯录
	Gender          name.Gender
	Carrier         phone.Carrier
	UniquePhones    bool
	NamingMode      NamingMode // defaults to NamingTimestamp
	StartNumber     int        // custom_number mode only
	PlainNumbers    bool       // custom_number mode: %d instead of %03d
}

// BatchResult describes a completed run. Per-file write failures are
// recorded here rather than aborting the batch; Success is true only
// when nothing failed.
type BatchResult struct {
	Success       bool     `json:"success"`
	FilesCreated  int      `json:"files_created"`
	FilesFailed   int      `json:"files_failed"`
	CreatedFiles  []string `json:"created_files"`
	FailedFiles   []string `json:"failed_files"`
	OutputDir     string   `json:"output_directory"`
	TotalContacts int      `json:"total_contacts"`
	Error         string   `json:"error,omitempty"`
}

// Generator composes the name and phone generators into contact batches.
type Generator struct {
	names  *name.Generator
	phones *phone.Generator

	// openFS creates the output directory and returns a filesystem
	// rooted there; swapped for a MemFS factory in tests.
	openFS func(dir string) (zfilesystem.ReadWriteFileFS, error)
	now    func() time.Time
}

// New creates a generator writing through the OS filesystem.
func New() *Generator {
	return &Generator{
		names:  name.New(),
		phones: phone.New(),
		openFS: openOSDir,
		now:    time.Now,
	}
}

func openOSDir(dir string) (zfilesystem.ReadWriteFileFS, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return zfilesystem.NewOSFileSystem(dir), nil
}

// Contacts draws count names and count phone numbers independently and
// zips them positionally. When phone uniqueness truncates the number
// batch, the result is truncated to match. count <= 0 yields an empty
// slice.
func (g *Generator) Contacts(count int, opts Options) ([]Contact, error) {
	if count <= 0 {
		return nil, nil
	}

	gender := opts.Gender
	if gender == "" {
		gender = name.All
	}

	names := g.names.Names(count, gender)
	phones, err := g.phones.Numbers(count, "", opts.Carrier, opts.UniquePhones)
	if err != nil {
		return nil, fmt.Errorf("generate contacts: %w", err)
	}

	n := min(len(names), len(phones))
	contacts := make([]Contact, n)
	for i := range n {
		contacts[i] = Contact{Name: names[i], Phone: phones[i]}
	}

	return contacts, nil
}

// Entry renders one contact as a vCard 3.0 block ending in a newline.
// Pure function: identical inputs yield byte-identical output.
func Entry(fullName, phoneNumber string) string {
	formatted := phoneNumber
	if len(phoneNumber) == 11 {
		formatted = phoneNumber[:3] + " " + phoneNumber[3:7] + " " + phoneNumber[7:]
	}

	first, rest := splitName(fullName)

	return "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"FN:" + fullName + "\n" +
		"N:" + first + ";" + rest + ";;;\n" +
		"TEL;CELL:" + phoneNumber + "\n" +
		"TEL;CELL;TYPE=VOICE:" + formatted + "\n" +
		"END:VCARD\n"
}

// splitName cuts after the first rune. Wrong for compound surnames; see
// the package comment.
func splitName(s string) (first, rest string) {
	if s == "" {
		return "", ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return s[:size], s[size:]
}

// Preview renders count contacts as concatenated vCard entries, each
// followed by a blank line. No file I/O.
func (g *Generator) Preview(count int, opts Options) (string, error) {
	contacts, err := g.Contacts(count, opts)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, c := range contacts {
		b.WriteString(Entry(c.Name, c.Phone))
		b.WriteString("\n")
	}

	return b.String(), nil
}

// WriteFiles runs one batch: it creates the output directory, writes
// FileCount files of ContactsPerFile contacts each, and reports progress
// after every file as a 0-100 percentage. progress may be nil; when set
// it must be safe to call off the UI goroutine. Per-file failures are
// collected and do not stop the batch.
func (g *Generator) WriteFiles(opts BatchOptions, progress func(percent int)) BatchResult {
	result := BatchResult{OutputDir: opts.OutputDir}

	fsys, err := g.openFS(opts.OutputDir)
	if err != nil {
		result.Error = fmt.Sprintf("create output dir %s: %v", opts.OutputDir, err)
		return result
	}

	prefix := opts.FilenamePrefix
	if prefix == "" {
		prefix = defaultFilenamePrefix
	}

	// one timestamp for the whole batch so its files sort together
	stamp := g.now().Format("20060102_150405")

	for i := range opts.FileCount {
		contacts, err := g.Contacts(opts.ContactsPerFile, Options{
			Gender:       opts.Gender,
			Carrier:      opts.Carrier,
			UniquePhones: opts.UniquePhones,
		})

		filename := batchFilename(opts, prefix, stamp, i)
		path := filepath.Join(opts.OutputDir, filename)

		if err == nil {
			err = writeEntries(fsys, filename, contacts)
		}
		if err != nil {
			result.FailedFiles = append(result.FailedFiles, path)
		} else {
			result.CreatedFiles = append(result.CreatedFiles, path)
		}

		if progress != nil {
			progress(percent(i+1, opts.FileCount))
		}
	}

	result.FilesCreated = len(result.CreatedFiles)
	result.FilesFailed = len(result.FailedFiles)
	result.Success = result.FilesFailed == 0
	// counts contacts in files that were actually written
	result.TotalContacts = result.FilesCreated * opts.ContactsPerFile

	return result
}

func batchFilename(opts BatchOptions, prefix, stamp string, i int) string {
	if opts.NamingMode == NamingCustomNumber {
		n := opts.StartNumber + i
		if opts.PlainNumbers {
			return fmt.Sprintf("%s_%d.vcf", prefix, n)
		}
		return fmt.Sprintf("%s_%03d.vcf", prefix, n)
	}
	return fmt.Sprintf("%s_%s_%03d.vcf", prefix, stamp, i+1)
}

func writeEntries(fsys zfilesystem.ReadWriteFileFS, filename string, contacts []Contact) error {
	var b strings.Builder
	for _, c := range contacts {
		b.WriteString(Entry(c.Name, c.Phone))
		b.WriteString("\n")
	}

	if err := fsys.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func percent(done, total int) int {
	return int(math.Round(float64(done) / float64(total) * 100))
}

// Estimate approximates the footprint of a pending batch; a contact
// entry runs about 150 bytes.
type Estimate struct {
	TotalContacts int
	PerFileBytes  int64
	TotalBytes    int64
}

// EstimateBatch sizes a batch for display before it runs.
func EstimateBatch(fileCount, contactsPerFile int) Estimate {
	perFile := int64(contactsPerFile) * 150
	return Estimate{
		TotalContacts: fileCount * contactsPerFile,
		PerFileBytes:  perFile,
		TotalBytes:    int64(fileCount) * perFile,
	}
}
