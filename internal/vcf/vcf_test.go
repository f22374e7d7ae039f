package vcf

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/infogen/internal/name"
	"github.com/zarlcorp/infogen/internal/phone"
)

// memGenerator returns a generator writing to a MemFS, plus the fs.
func memGenerator(t *testing.T) (*Generator, *zfilesystem.MemFS) {
	t.Helper()
	mem := zfilesystem.NewMemFS()
	g := New()
	g.openFS = func(string) (zfilesystem.ReadWriteFileFS, error) { return mem, nil }
	g.now = func() time.Time { return time.Date(2026, 8, 26, 10, 30, 0, 0, time.Local) }
	return g, mem
}

// failingFS fails writes for chosen filenames.
type failingFS struct {
	zfilesystem.ReadWriteFileFS
	failOn map[string]bool
}

func (f *failingFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if f.failOn[path] {
		return errors.New("disk full")
	}
	return f.ReadWriteFileFS.WriteFile(path, data, perm)
}

func TestEntryTemplate(t *testing.T) {
	got := Entry("王伟", "13812345678")
	want := "BEGIN:VCARD\n" +
		"VERSION:3.0\n" +
		"FN:王伟\n" +
		"N:王;伟;;;\n" +
		"TEL;CELL:13812345678\n" +
		"TEL;CELL;TYPE=VOICE:138 1234 5678\n" +
		"END:VCARD\n"
	if got != want {
		t.Errorf("Entry mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

// Compound surnames split after the first rune, so 司马 ends up with 司
// as the family name. Pinned, not fixed.
func TestEntryCompoundSurname(t *testing.T) {
	got := Entry("司马相如", "13812345678")
	if !strings.Contains(got, "N:司;马相如;;;\n") {
		t.Errorf("compound surname should split after first rune, got:\n%s", got)
	}
}

func TestEntryShortPhoneUngrouped(t *testing.T) {
	got := Entry("李雷", "12345")
	if !strings.Contains(got, "TEL;CELL;TYPE=VOICE:12345\n") {
		t.Errorf("non-11-digit phone should stay raw in VOICE line, got:\n%s", got)
	}
}

func TestEntryPure(t *testing.T) {
	a := Entry("张三", "15012345678")
	b := Entry("张三", "15012345678")
	if a != b {
		t.Error("Entry is not deterministic for identical inputs")
	}
}

func TestContacts(t *testing.T) {
	g, _ := memGenerator(t)

	contacts, err := g.Contacts(20, Options{Gender: name.All, Carrier: phone.Mobile, UniquePhones: true})
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 20 {
		t.Fatalf("Contacts(20) returned %d", len(contacts))
	}

	re := regexp.MustCompile(`^\d{11}$`)
	for _, c := range contacts {
		if c.Name == "" {
			t.Error("contact with empty name")
		}
		if !re.MatchString(c.Phone) {
			t.Errorf("contact phone %q is not 11 digits", c.Phone)
		}
	}
}

func TestContactsZero(t *testing.T) {
	g, _ := memGenerator(t)
	contacts, err := g.Contacts(0, Options{})
	if err != nil {
		t.Fatalf("Contacts: %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("Contacts(0) returned %d contacts", len(contacts))
	}
}

func TestPreview(t *testing.T) {
	g, _ := memGenerator(t)

	out, err := g.Preview(3, Options{})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	if got := strings.Count(out, "BEGIN:VCARD"); got != 3 {
		t.Errorf("preview has %d vcard blocks, want 3", got)
	}
	if !strings.HasSuffix(out, "END:VCARD\n\n") {
		t.Error("preview entries should each end with a blank separator line")
	}
}

func TestWriteFilesCustomNumber(t *testing.T) {
	g, mem := memGenerator(t)

	res := g.WriteFiles(BatchOptions{
		FileCount:       3,
		ContactsPerFile: 10,
		OutputDir:       "out",
		FilenamePrefix:  "contacts",
		NamingMode:      NamingCustomNumber,
		StartNumber:     5,
		UniquePhones:    true,
	}, nil)

	if !res.Success {
		t.Fatalf("batch failed: %+v", res)
	}
	if res.FilesCreated != 3 || res.FilesFailed != 0 {
		t.Fatalf("created=%d failed=%d, want 3/0", res.FilesCreated, res.FilesFailed)
	}
	if res.TotalContacts != 30 {
		t.Errorf("TotalContacts = %d, want 30", res.TotalContacts)
	}

	for _, fn := range []string{"contacts_005.vcf", "contacts_006.vcf", "contacts_007.vcf"} {
		data, err := mem.ReadFile(fn)
		if err != nil {
			t.Fatalf("expected file %s: %v", fn, err)
		}
		if got := strings.Count(string(data), "BEGIN:VCARD"); got != 10 {
			t.Errorf("%s has %d vcard blocks, want 10", fn, got)
		}
	}
}

func TestWriteFilesPlainNumbers(t *testing.T) {
	g, mem := memGenerator(t)

	res := g.WriteFiles(BatchOptions{
		FileCount:       2,
		ContactsPerFile: 1,
		OutputDir:       "out",
		FilenamePrefix:  "c",
		NamingMode:      NamingCustomNumber,
		StartNumber:     9,
		PlainNumbers:    true,
	}, nil)

	if !res.Success {
		t.Fatalf("batch failed: %+v", res)
	}
	for _, fn := range []string{"c_9.vcf", "c_10.vcf"} {
		if _, err := mem.ReadFile(fn); err != nil {
			t.Errorf("expected file %s: %v", fn, err)
		}
	}
}

func TestWriteFilesTimestampNaming(t *testing.T) {
	g, mem := memGenerator(t)

	res := g.WriteFiles(BatchOptions{
		FileCount:       2,
		ContactsPerFile: 1,
		OutputDir:       "out",
		FilenamePrefix:  "batch",
	}, nil)

	if !res.Success {
		t.Fatalf("batch failed: %+v", res)
	}

	// the fake clock pins the shared stamp
	for _, fn := range []string{"batch_20260826_103000_001.vcf", "batch_20260826_103000_002.vcf"} {
		if _, err := mem.ReadFile(fn); err != nil {
			t.Errorf("expected file %s: %v", fn, err)
		}
	}
}

func TestWriteFilesProgress(t *testing.T) {
	g, _ := memGenerator(t)

	var got []int
	res := g.WriteFiles(BatchOptions{
		FileCount:       4,
		ContactsPerFile: 1,
		OutputDir:       "out",
	}, func(p int) { got = append(got, p) })

	if !res.Success {
		t.Fatalf("batch failed: %+v", res)
	}

	want := []int{25, 50, 75, 100}
	if len(got) != len(want) {
		t.Fatalf("progress calls = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("progress[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWriteFilesPartialFailure(t *testing.T) {
	g, mem := memGenerator(t)
	g.openFS = func(string) (zfilesystem.ReadWriteFileFS, error) {
		return &failingFS{
			ReadWriteFileFS: mem,
			failOn:          map[string]bool{"c_002.vcf": true},
		}, nil
	}

	res := g.WriteFiles(BatchOptions{
		FileCount:       3,
		ContactsPerFile: 2,
		OutputDir:       "out",
		FilenamePrefix:  "c",
		NamingMode:      NamingCustomNumber,
		StartNumber:     1,
	}, nil)

	if res.Success {
		t.Error("batch with a failed write should not be Success")
	}
	if res.FilesCreated != 2 || res.FilesFailed != 1 {
		t.Errorf("created=%d failed=%d, want 2/1", res.FilesCreated, res.FilesFailed)
	}
	if res.TotalContacts != 4 {
		t.Errorf("TotalContacts = %d, want 4 (successful files only)", res.TotalContacts)
	}
	if len(res.FailedFiles) != 1 || !strings.HasSuffix(res.FailedFiles[0], "c_002.vcf") {
		t.Errorf("FailedFiles = %v", res.FailedFiles)
	}
}

func TestWriteFilesDirFailure(t *testing.T) {
	g, _ := memGenerator(t)
	g.openFS = func(dir string) (zfilesystem.ReadWriteFileFS, error) {
		return nil, fmt.Errorf("mkdir %s: permission denied", dir)
	}

	res := g.WriteFiles(BatchOptions{FileCount: 3, ContactsPerFile: 5, OutputDir: "/nope"}, nil)

	if res.Success || res.FilesCreated != 0 {
		t.Errorf("dir failure should yield zero-file failed result, got %+v", res)
	}
	if res.Error == "" {
		t.Error("dir failure should carry an error message")
	}
}

func TestWriteFilesZeroFiles(t *testing.T) {
	g, _ := memGenerator(t)

	res := g.WriteFiles(BatchOptions{FileCount: 0, ContactsPerFile: 10, OutputDir: "out"}, nil)

	if !res.Success {
		t.Error("empty batch should succeed")
	}
	if res.FilesCreated != 0 || res.TotalContacts != 0 {
		t.Errorf("empty batch: created=%d contacts=%d", res.FilesCreated, res.TotalContacts)
	}
}

func TestEstimateBatch(t *testing.T) {
	e := EstimateBatch(5, 100)
	if e.TotalContacts != 500 {
		t.Errorf("TotalContacts = %d, want 500", e.TotalContacts)
	}
	if e.PerFileBytes != 15000 || e.TotalBytes != 75000 {
		t.Errorf("sizes = %d/%d, want 15000/75000", e.PerFileBytes, e.TotalBytes)
	}
}
